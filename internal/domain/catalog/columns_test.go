package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/catalog"
)

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "qtyonhand", catalog.NormalizeHeader(" Qty On-Hand "))
	assert.Equal(t, "upc2", catalog.NormalizeHeader("UPC #2"))
}

func TestResolveColumn_ExactBeatsSubstring(t *testing.T) {
	headers := []string{"Total Qty On Hand", "Qty On Hand"}
	idx, ok := catalog.ResolveColumn(headers, []string{"Qty On Hand"})
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestResolveColumn_SubstringFallback(t *testing.T) {
	headers := []string{"Description", "Total Qty On Hand (All)"}
	idx, ok := catalog.ResolveColumn(headers, []string{"Qty On Hand"})
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestResolveColumn_CandidatePriority(t *testing.T) {
	headers := []string{"UPC", "UPC Full"}
	idx, ok := catalog.ResolveColumn(headers, []string{"UPC Full", "UPC"})
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestResolveColumn_Unresolved(t *testing.T) {
	idx, ok := catalog.ResolveColumn([]string{"Foo", "Bar"}, []string{"Price"})
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

func TestColumnProfile_Resolve(t *testing.T) {
	headers := []string{"Item Name", "Stock Code", "UPC", "Qty On Hand", "Price", "Category Name"}
	m := catalog.DefaultColumnProfile().Resolve(headers)

	assert.Equal(t, 0, m.Name)
	assert.Equal(t, 1, m.StockCode)
	assert.Equal(t, 2, m.UPC)
	assert.Equal(t, 2, m.UPCAlt, "UPC y UPC alterno pueden caer en la misma columna")
	assert.Equal(t, 3, m.Quantity)
	assert.Equal(t, 4, m.Price)
	assert.Equal(t, 5, m.Category)
	assert.Empty(t, m.Unresolved())
}

func TestColumnProfile_MergeOverride(t *testing.T) {
	p := catalog.DefaultColumnProfile().Merge(catalog.ColumnProfile{Name: []string{"Descripcion"}})
	m := p.Resolve([]string{"Descripcion", "Name"})
	assert.Equal(t, 0, m.Name)
	assert.Contains(t, m.Unresolved(), "upc")
}

func TestCell(t *testing.T) {
	row := []string{"a", "b"}
	assert.Equal(t, "b", catalog.Cell(row, 1))
	assert.Equal(t, "", catalog.Cell(row, 5))
	assert.Equal(t, "", catalog.Cell(row, -1))
}
