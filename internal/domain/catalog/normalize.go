package catalog

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Límites de columnas del esquema.
const (
	MaxUPCLen       = 20
	MaxNameLen      = 200
	MaxStockCodeLen = 64
	MaxSupplierLen  = 120
)

// MaxPrice mayor valor representable en NUMERIC(12,2).
var MaxPrice = decimal.RequireFromString("9999999999.99")

var (
	reNonDigit  = regexp.MustCompile(`\D`)
	reNumber    = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
	reThousands = regexp.MustCompile(`(\d),(\d{3})\b`)
	reNonPrice  = regexp.MustCompile(`[^0-9.\-]`)
)

// CleanUPC conserva solo dígitos del primer valor de la celda (las celdas multi-UPC separan por coma)
// y trunca a 20 caracteres. Se mantiene como texto para no perder ceros a la izquierda.
func CleanUPC(s string) string {
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}
	digits := reNonDigit.ReplaceAllString(s, "")
	if len(digits) > MaxUPCLen {
		digits = digits[:MaxUPCLen]
	}
	return digits
}

// BestUPC elige entre dos UPC ya limpios: gana el de más dígitos (se asume más completo);
// en empate se queda el primero. Es una heurística, no una reconciliación garantizada.
func BestUPC(primary, alternate string) string {
	if len(alternate) > len(primary) {
		return alternate
	}
	return primary
}

// ParseQuantity suma todos los números (con signo y decimales) de la celda, redondea al entero
// más cercano (mitad a par) y aplica el mínimo. "12 units (3 cases)" -> 15; vacío o sin números -> 0.
// Los separadores de miles ("1,200") se colapsan antes de extraer.
func ParseQuantity(s string, minimum int) int {
	for reThousands.MatchString(s) {
		s = reThousands.ReplaceAllString(s, "$1$2")
	}
	total := 0.0
	for _, m := range reNumber.FindAllString(s, -1) {
		f, err := parseFloat(m)
		if err != nil {
			continue
		}
		total += f
	}
	rounded := math.RoundToEven(total)
	if rounded > math.MaxInt32 {
		rounded = math.MaxInt32
	}
	if rounded < math.MinInt32 {
		rounded = math.MinInt32
	}
	v := int(rounded)
	if v < minimum {
		return minimum
	}
	return v
}

func parseFloat(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}

// ParsePrice elimina todo lo que no sea dígito, '.' o '-', interpreta como decimal y redondea a 2.
// Entrada inválida, negativa o mayor que MaxPrice (típicamente un UPC en la columna de precio) -> 0.00.
func ParsePrice(s string) decimal.Decimal {
	cleaned := reNonPrice.ReplaceAllString(s, "")
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	d = d.Round(2)
	if d.GreaterThan(MaxPrice) {
		return decimal.Zero
	}
	return d
}

// CollapseSpaces recorta y colapsa espacios internos.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Upper pasa a mayúsculas. cases.Caser no es seguro entre goroutines, se crea por llamada.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// CleanName normaliza el nombre de producto con el motor de marcas y lo limita al ancho de columna.
func CleanName(s string, engine *BrandEngine) string {
	return Truncate(engine.Normalize(s), MaxNameLen)
}

// CleanCategory solo recorta; el plegado de mayúsculas se hace al resolver la categoría.
func CleanCategory(s string) string {
	return strings.TrimSpace(s)
}

// CleanStockCode recorta y limita al ancho de columna.
func CleanStockCode(s string) string {
	return Truncate(strings.TrimSpace(s), MaxStockCodeLen)
}

// Truncate corta a n runas sin partir caracteres multibyte.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n]))
}
