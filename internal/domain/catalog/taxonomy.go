package catalog

import "strings"

// Categorías padre fijas (todas con parent_id NULL).
const (
	NicotineVapes      = "NICOTINE VAPES"
	THCAProducts       = "THCA PRODUCTS"
	TobaccoProducts    = "TOBACCO PRODUCTS"
	Edibles            = "EDIBLES"
	Grinders           = "GRINDERS"
	RollingPapersCones = "ROLLING PAPERS AND CONES"
	VapeJuices         = "VAPE JUICES"
	DevicesBatteries   = "DEVICES: BATTERIES & MODS"
	HookahRelated      = "HOOKAH RELATED"
	MiscellaneousSmoke = "MISCELLANEOUS SMOKE SHOP"
	rollingPapersSlug  = "rolling-papers-cones"
)

// ParentCategory categoría de primer nivel con su slug fijo (vacío = derivado del nombre).
type ParentCategory struct {
	Name string
	Slug string
}

// SubcategoryRule asigna una subcategoría bajo Parent cuando TODOS los Tokens aparecen en el nombre.
type SubcategoryRule struct {
	Name   string
	Slug   string
	Parent string
	Tokens []string
}

// Matches compara sin distinguir mayúsculas, por subcadena.
func (r SubcategoryRule) Matches(productName, parentName string) bool {
	if !strings.EqualFold(strings.TrimSpace(parentName), r.Parent) || len(r.Tokens) == 0 {
		return false
	}
	name := Upper(productName)
	for _, tok := range r.Tokens {
		if !strings.Contains(name, Upper(tok)) {
			return false
		}
	}
	return true
}

// Taxonomy árbol de dos niveles: padres fijos, alias de etiquetas de proveedor y reglas de subcategoría.
type Taxonomy struct {
	Parents  []ParentCategory
	Aliases  map[string]string // etiqueta en mayúsculas -> padre
	Rules    []SubcategoryRule // orden = prioridad
	Fallback string            // destino de etiquetas vacías
}

// DefaultTaxonomy taxonomía de las tiendas.
func DefaultTaxonomy() *Taxonomy {
	return &Taxonomy{
		Parents: []ParentCategory{
			{Name: NicotineVapes},
			{Name: THCAProducts},
			{Name: TobaccoProducts},
			{Name: Edibles},
			{Name: Grinders},
			{Name: RollingPapersCones, Slug: rollingPapersSlug},
			{Name: VapeJuices},
			{Name: DevicesBatteries},
			{Name: HookahRelated},
			{Name: MiscellaneousSmoke},
		},
		Aliases: map[string]string{
			"NICOTINE VAPE":                       NicotineVapes,
			"NICOTINE VAPES":                      NicotineVapes,
			"VAPES":                               NicotineVapes,
			"VAPE":                                NicotineVapes,
			"DISPOSABLE VAPES":                    NicotineVapes,
			"DISPOSABLES":                         NicotineVapes,
			"THCA RELATED: FLOWER, CARTS & VAPES": THCAProducts,
			"THCA":                                THCAProducts,
			"TOBACCO":                             TobaccoProducts,
			"VAPE JUICE":                          VapeJuices,
			"E-LIQUID":                            VapeJuices,
			"DEVICES":                             DevicesBatteries,
			"HOOKAH":                              HookahRelated,
			"ROLLING PAPERS & CONES":              RollingPapersCones,
			"ROLLING PAPERS":                      RollingPapersCones,
			"ROLLING PAPER":                       RollingPapersCones,
			"ROLLING PAPER,CONES, TIPS AND WRAPS": RollingPapersCones,
			"ROLLING PAPER/CONES/WRAPS":           RollingPapersCones,
			"PAPERS":                              RollingPapersCones,
			"PAPERS/CONES":                        RollingPapersCones,
			"CONES":                               RollingPapersCones,
			"CONES TIPS AND WRAPS":                RollingPapersCones,
			"RAW":                                 RollingPapersCones,
		},
		Rules: []SubcategoryRule{
			{Name: "RAZ LTX 25K", Parent: NicotineVapes, Tokens: []string{"RAZ", "LTX", "25K"}},
			{Name: "RAZ 9K", Parent: NicotineVapes, Tokens: []string{"RAZ", "9K"}},
			{Name: "GEEKBAR X 25K", Parent: NicotineVapes, Tokens: []string{"GEEKBAR", "X", "25K"}},
			{Name: "GEEKBAR PULSE 15K", Parent: NicotineVapes, Tokens: []string{"GEEKBAR", "PULSE", "15K"}},
			{Name: "FUME EXTRA", Parent: NicotineVapes, Tokens: []string{"FUME", "EXTRA"}},
			{Name: "FUME ULTRA", Parent: NicotineVapes, Tokens: []string{"FUME", "ULTRA"}},
			{Name: "FUME INFINITY", Parent: NicotineVapes, Tokens: []string{"FUME", "INFINITY"}},
			{Name: "CUVIE PLUS", Parent: NicotineVapes, Tokens: []string{"CUVIE", "PLUS"}},
			{Name: "CUVIE MARS", Parent: NicotineVapes, Tokens: []string{"CUVIE", "MARS"}},
			{Name: "NEXA 35K", Parent: NicotineVapes, Tokens: []string{"NEXA", "35K"}},
			{Name: "LOSTMARY", Parent: NicotineVapes, Tokens: []string{"LOSTMARY"}},
			{Name: "ZYN", Parent: TobaccoProducts, Tokens: []string{"ZYN"}},
			{Name: "GRABBA LEAF", Parent: TobaccoProducts, Tokens: []string{"GRABBA", "LEAF"}},
			{Name: "RAW CONES", Parent: RollingPapersCones, Tokens: []string{"RAW", "CONE"}},
		},
		Fallback: MiscellaneousSmoke,
	}
}

// ParentFor mapea una etiqueta de proveedor a su padre. known=false si la etiqueta no es
// un padre ni un alias; en ese caso devuelve la etiqueta en mayúsculas para tratarla como raíz propia.
// Etiqueta vacía -> Fallback.
func (t *Taxonomy) ParentFor(label string) (parent string, known bool) {
	key := Upper(CollapseSpaces(label))
	if key == "" {
		return t.Fallback, true
	}
	if p, ok := t.Aliases[key]; ok {
		return p, true
	}
	for _, p := range t.Parents {
		if p.Name == key {
			return p.Name, true
		}
	}
	return key, false
}

// ParentSlug slug fijo del padre, "" si se deriva del nombre.
func (t *Taxonomy) ParentSlug(name string) string {
	for _, p := range t.Parents {
		if strings.EqualFold(p.Name, name) {
			return p.Slug
		}
	}
	return ""
}

// InferSubcategory primera regla que coincide; ok=false deja el producto en el padre.
func (t *Taxonomy) InferSubcategory(productName, parentName string) (SubcategoryRule, bool) {
	for _, r := range t.Rules {
		if r.Matches(productName, parentName) {
			return r, true
		}
	}
	return SubcategoryRule{}, false
}
