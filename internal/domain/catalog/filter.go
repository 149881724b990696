package catalog

import "strings"

// Motivos de descarte de filas.
const (
	SkipEmptyName          = "empty_name"
	SkipCategoryNotTracked = "category_not_tracked"
	SkipNotRequested       = "not_requested"
	SkipExcludedName       = "excluded_name"
	SkipDuplicateName      = "duplicate_name"
)

// RowFilter filtros opcionales por fila; listas vacías no filtran.
type RowFilter struct {
	AllowedCategories  []string // etiquetas de proveedor (sin distinguir mayúsculas)
	RequiredNameTokens []string // se conserva si el nombre contiene alguno
	ExcludedNameTokens []string // se descarta si el nombre contiene alguno
}

// Check devuelve "" si la fila pasa, o el motivo del descarte.
// name debe venir ya normalizado (mayúsculas).
func (f RowFilter) Check(name, category string) string {
	if name == "" {
		return SkipEmptyName
	}
	if len(f.AllowedCategories) > 0 && !containsFold(f.AllowedCategories, category) {
		return SkipCategoryNotTracked
	}
	if len(f.RequiredNameTokens) > 0 && !anyToken(name, f.RequiredNameTokens) {
		return SkipNotRequested
	}
	if anyToken(name, f.ExcludedNameTokens) {
		return SkipExcludedName
	}
	return ""
}

func containsFold(list []string, v string) bool {
	v = CollapseSpaces(v)
	for _, item := range list {
		if strings.EqualFold(CollapseSpaces(item), v) {
			return true
		}
	}
	return false
}

func anyToken(name string, tokens []string) bool {
	for _, tok := range tokens {
		t := Upper(CollapseSpaces(tok))
		if t != "" && strings.Contains(name, t) {
			return true
		}
	}
	return false
}
