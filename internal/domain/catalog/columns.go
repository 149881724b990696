// Package catalog contiene la lógica pura de normalización del catálogo: resolución de
// columnas de exportaciones de proveedor, limpieza de campos, reglas de marca y taxonomía.
// No depende de infraestructura; todas las funciones son totales (no fallan con entrada inválida).
package catalog

import (
	"regexp"
	"strings"
)

var reHeaderJunk = regexp.MustCompile(`[^a-z0-9]`)

// NormalizeHeader deja solo letras minúsculas y dígitos ("Qty On Hand" -> "qtyonhand").
func NormalizeHeader(s string) string {
	return reHeaderJunk.ReplaceAllString(strings.ToLower(s), "")
}

// ResolveColumn devuelve el índice de la cabecera que mejor coincide con los candidatos.
// Primera pasada: coincidencia exacta normalizada, en orden de prioridad de candidatos.
// Segunda pasada: el candidato normalizado es subcadena de la cabecera normalizada.
// Gana el primer acierto; sin coincidencia devuelve (-1, false).
func ResolveColumn(headers []string, candidates []string) (int, bool) {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeHeader(h)
	}
	for _, cand := range candidates {
		key := NormalizeHeader(cand)
		if key == "" {
			continue
		}
		for i, h := range normalized {
			if h == key {
				return i, true
			}
		}
	}
	for _, cand := range candidates {
		key := NormalizeHeader(cand)
		if key == "" {
			continue
		}
		for i, h := range normalized {
			if strings.Contains(h, key) {
				return i, true
			}
		}
	}
	return -1, false
}

// ColumnProfile listas de nombres candidatos por campo canónico, en orden de prioridad.
// Agregar un proveedor es cambiar configuración, no código.
type ColumnProfile struct {
	Name      []string
	StockCode []string
	UPC       []string
	UPCAlt    []string // puede resolver a la misma columna que UPC
	Quantity  []string
	Price     []string
	Category  []string
}

// DefaultColumnProfile candidatos conocidos de los POS de las tiendas.
// Quantity prefiere la existencia por tienda sobre el total.
func DefaultColumnProfile() ColumnProfile {
	return ColumnProfile{
		Name:      []string{"Name", "Item Name", "Product Name"},
		StockCode: []string{"Stock Code", "Stockcode", "SKU", "Item Code"},
		UPC:       []string{"UPC Full", "UPC", "UPC Code", "Barcode", "EAN", "GTIN"},
		UPCAlt:    []string{"UPC", "UPC Full", "Barcode", "EAN", "GTIN"},
		Quantity:  []string{"Qty On Hand", "Quantity on Hand", "QOH", "On Hand", "Quantity", "Qty", "Total Qty On Hand"},
		Price:     []string{"Unit Price", "Price", "Retail", "Selling Price", "Sell Price"},
		Category:  []string{"Category Name", "Category", "Main Category", "Category Group Name"},
	}
}

// Merge reemplaza los campos del perfil por los de override que no estén vacíos.
func (p ColumnProfile) Merge(override ColumnProfile) ColumnProfile {
	pick := func(base, o []string) []string {
		if len(o) > 0 {
			return o
		}
		return base
	}
	return ColumnProfile{
		Name:      pick(p.Name, override.Name),
		StockCode: pick(p.StockCode, override.StockCode),
		UPC:       pick(p.UPC, override.UPC),
		UPCAlt:    pick(p.UPCAlt, override.UPCAlt),
		Quantity:  pick(p.Quantity, override.Quantity),
		Price:     pick(p.Price, override.Price),
		Category:  pick(p.Category, override.Category),
	}
}

// ColumnMap índices de columna resueltos para un archivo; -1 = no resuelta (se trata como vacía).
type ColumnMap struct {
	Name      int
	StockCode int
	UPC       int
	UPCAlt    int
	Quantity  int
	Price     int
	Category  int
}

// Resolve aplica el perfil a las cabeceras de un archivo.
func (p ColumnProfile) Resolve(headers []string) ColumnMap {
	idx := func(cands []string) int {
		i, _ := ResolveColumn(headers, cands)
		return i
	}
	return ColumnMap{
		Name:      idx(p.Name),
		StockCode: idx(p.StockCode),
		UPC:       idx(p.UPC),
		UPCAlt:    idx(p.UPCAlt),
		Quantity:  idx(p.Quantity),
		Price:     idx(p.Price),
		Category:  idx(p.Category),
	}
}

// Unresolved nombres de los campos canónicos sin columna, para el reporte.
func (m ColumnMap) Unresolved() []string {
	var out []string
	fields := []struct {
		name string
		idx  int
	}{
		{"name", m.Name}, {"stock_code", m.StockCode}, {"upc", m.UPC}, {"upc_alt", m.UPCAlt},
		{"quantity_on_hand", m.Quantity}, {"unit_price", m.Price}, {"category", m.Category},
	}
	for _, f := range fields {
		if f.idx < 0 {
			out = append(out, f.name)
		}
	}
	return out
}

// Cell devuelve la celda del índice o "" si la columna no está resuelta o la fila es corta.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
