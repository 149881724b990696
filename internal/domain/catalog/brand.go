package catalog

import (
	"regexp"
	"strings"
)

// Rule regla de canonicalización: función pura string -> string sobre el nombre en mayúsculas.
// Cada regla está anclada al inicio del nombre y apunta a un prefijo de marca distinto.
type Rule func(string) string

// Consolidation fragmento de marca de dos palabras que se escribe como una sola.
type Consolidation struct {
	From string // "GEEK BAR"
	To   string // "GEEKBAR"
}

// DefaultConsolidations marcas que los POS escriben con y sin espacio.
var DefaultConsolidations = []Consolidation{
	{From: "GEEK BAR", To: "GEEKBAR"},
	{From: "FUME PRO", To: "FUMEPRO"},
	{From: "LOST MARY", To: "LOSTMARY"},
	{From: "ELF BAR", To: "ELFBAR"},
	{From: "BREEZE PRO", To: "BREEZEPRO"},
	{From: "PUFF BAR", To: "PUFFBAR"},
	{From: "BANG KING", To: "BANGKING"},
}

// reSizeToken detecta un token de capacidad/concentración (25K, 5MG, 30ML, 20PK, 2%).
var reSizeToken = regexp.MustCompile(`\b\d+(?:\.\d+)?\s?(?:K|MG|ML|G|OZ|PK|CT|PCS?)\b|\d+(?:\.\d+)?%`)

// HasSizeToken indica si el nombre ya trae algún token de tamaño en cualquier posición.
func HasSizeToken(name string) bool {
	return reSizeToken.MatchString(name)
}

// BrandEngine aplica, en orden, la consolidación de espacios y las reglas de canonicalización.
// Es determinista e idempotente: Normalize(Normalize(x)) == Normalize(x).
type BrandEngine struct {
	consolidations []compiledConsolidation
	rules          []Rule
}

type compiledConsolidation struct {
	re *regexp.Regexp
	to string
}

// NewBrandEngine compila las consolidaciones (límite de palabra, sin distinguir mayúsculas).
func NewBrandEngine(consolidations []Consolidation, rules []Rule) *BrandEngine {
	compiled := make([]compiledConsolidation, 0, len(consolidations))
	for _, c := range consolidations {
		words := strings.Fields(c.From)
		if len(words) == 0 {
			continue
		}
		quoted := make([]string, len(words))
		for i, w := range words {
			quoted[i] = regexp.QuoteMeta(w)
		}
		re := regexp.MustCompile(`(?i)\b` + strings.Join(quoted, `\s+`) + `\b`)
		compiled = append(compiled, compiledConsolidation{re: re, to: Upper(c.To)})
	}
	return &BrandEngine{consolidations: compiled, rules: rules}
}

// DefaultBrandEngine motor con las consolidaciones y reglas de producción.
func DefaultBrandEngine() *BrandEngine {
	return NewBrandEngine(DefaultConsolidations, DefaultRules())
}

// maxPasses tope de pasadas de Normalize hasta alcanzar un punto fijo.
const maxPasses = 8

// Normalize colapsa espacios, pasa a mayúsculas y aplica las dos capas hasta que el nombre
// deja de cambiar: una regla que quita una palabra puede dejar un fragmento consolidable.
func (e *BrandEngine) Normalize(name string) string {
	s := Upper(CollapseSpaces(name))
	if s == "" {
		return s
	}
	for i := 0; i < maxPasses; i++ {
		next := e.pass(s)
		if next == s {
			break
		}
		s = next
	}
	return s
}

func (e *BrandEngine) pass(s string) string {
	s = e.Consolidate(s)
	for _, rule := range e.rules {
		s = CollapseSpaces(rule(s))
	}
	return s
}

// Consolidate aplica solo la capa de espaciado.
func (e *BrandEngine) Consolidate(s string) string {
	for _, c := range e.consolidations {
		s = c.re.ReplaceAllLiteralString(s, c.to)
	}
	return CollapseSpaces(s)
}

// DefaultRules reglas de canonicalización por marca, en orden fijo.
func DefaultRules() []Rule {
	return []Rule{
		ZeroNicRule,
		CuvieRule,
		GrabbaLeafRule,
		RazLTXRule,
		NexaRule,
	}
}

var (
	reZeroNic    = regexp.MustCompile(`\bZERO\s+NICOTINE\b`)
	reHQDCuvie   = regexp.MustCompile(`^HQD\s+CUVIE\b`)
	reGrabbaLeaf = regexp.MustCompile(`^GRABBA\s+LEAF\s+WHOLE(?:\s+LEAF)+\b`)
	reRazLTX     = regexp.MustCompile(`^RAZZ?\s+LTX\b`)
	reNexa       = regexp.MustCompile(`^NEXA(?:\b|\d)`)
	reNexaPix    = regexp.MustCompile(`\bPIX?A?\b`)
	reNexaHead   = regexp.MustCompile(`^NEXA\s*(?:35K?\b)?`)
	reNexa35K    = regexp.MustCompile(`^NEXA\s*35K\b`)
)

// ZeroNicRule "ZERO NICOTINE" -> "ZERO NIC" en cualquier posición.
func ZeroNicRule(s string) string {
	return reZeroNic.ReplaceAllLiteralString(s, "ZERO NIC")
}

// CuvieRule "HQD CUVIE PLUS ..." -> "CUVIE PLUS ...".
func CuvieRule(s string) string {
	return reHQDCuvie.ReplaceAllLiteralString(s, "CUVIE")
}

// GrabbaLeafRule "GRABBA LEAF WHOLE LEAF" -> "GRABBA LEAF WHOLE".
func GrabbaLeafRule(s string) string {
	return reGrabbaLeaf.ReplaceAllLiteralString(s, "GRABBA LEAF WHOLE")
}

// RazLTXRule corrige "RAZZ LTX" y agrega 25K si el nombre no trae tamaño.
func RazLTXRule(s string) string {
	if !reRazLTX.MatchString(s) {
		return s
	}
	s = reRazLTX.ReplaceAllLiteralString(s, "RAZ LTX")
	if HasSizeToken(s) {
		return s
	}
	return "RAZ LTX 25K" + strings.TrimPrefix(s, "RAZ LTX")
}

// NexaRule quita el sufijo de modelo PIXA y fija "NEXA 35K" como cabecera cuando falta el tamaño.
func NexaRule(s string) string {
	if !reNexa.MatchString(s) {
		return s
	}
	s = CollapseSpaces(reNexaPix.ReplaceAllLiteralString(s, ""))
	if HasSizeToken(s) {
		return reNexa35K.ReplaceAllLiteralString(s, "NEXA 35K")
	}
	return reNexaHead.ReplaceAllLiteralString(s, "NEXA 35K ")
}
