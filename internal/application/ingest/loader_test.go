package ingest_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/ingest"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/catalog"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/infrastructure/csvsource"
)

func load(t *testing.T, csv string, opts ingest.LoadOptions) (*ingest.LoadResult, error) {
	t.Helper()
	return ingest.Load(csvsource.NewReader(strings.NewReader(csv)), opts)
}

func TestLoad_DuplicateNamesLastWins(t *testing.T) {
	csv := "Name,Qty,Price\ngeek bar pulse,1,10\nGEEK  BAR PULSE,4,12\nOTHER,1,1\n"
	res, err := load(t, csv, ingest.DefaultLoadOptions())
	require.NoError(t, err)

	require.Len(t, res.Records, 2)
	assert.Equal(t, "GEEKBAR PULSE", res.Records[0].Name)
	assert.Equal(t, 4, res.Records[0].QuantityOnHand)
	assert.Equal(t, 3, res.Records[0].Line)
	assert.Equal(t, 3, res.RowsRead)

	require.Len(t, res.Skipped, 1)
	assert.Equal(t, catalog.SkipDuplicateName, res.Skipped[0].Reason)
	assert.Equal(t, 2, res.Skipped[0].Line)
}

func TestLoad_FiltersRecordReasons(t *testing.T) {
	opts := ingest.DefaultLoadOptions()
	opts.Filter = catalog.RowFilter{
		AllowedCategories:  []string{"NICOTINE VAPES"},
		ExcludedNameTokens: []string{"RAZ 9K CACTUS JACK"},
	}
	csv := "Name,Category\nRAZ 9K CACTUS JACK,Nicotine Vapes\nBROWNIE,Edibles\n,Nicotine Vapes\nRAZ 9K BLUE,Nicotine Vapes\n"
	res, err := load(t, csv, opts)
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.Equal(t, "RAZ 9K BLUE", res.Records[0].Name)

	reasons := make([]string, 0, len(res.Skipped))
	for _, s := range res.Skipped {
		reasons = append(reasons, s.Reason)
	}
	assert.Equal(t, []string{catalog.SkipExcludedName, catalog.SkipCategoryNotTracked, catalog.SkipEmptyName}, reasons)
}

func TestLoad_QtyMinAndUnresolvedColumns(t *testing.T) {
	opts := ingest.DefaultLoadOptions()
	opts.QtyMin = 1
	res, err := load(t, "Product Name,Qty\nA,0\nB,\n", opts)
	require.NoError(t, err)

	require.Len(t, res.Records, 2)
	assert.Equal(t, 1, res.Records[0].QuantityOnHand)
	assert.Equal(t, 1, res.Records[1].QuantityOnHand)
	assert.True(t, res.Records[0].UnitPrice.IsZero())
	assert.Contains(t, res.Unresolved, "unit_price")
	assert.NotContains(t, res.Unresolved, "name")
}

func TestLoad_EmptyFile(t *testing.T) {
	res, err := load(t, "", ingest.DefaultLoadOptions())
	require.NoError(t, err)
	assert.Empty(t, res.Records)
	assert.Zero(t, res.RowsRead)
}

func TestLoad_MissingNameColumn(t *testing.T) {
	_, err := load(t, "SKU,Qty\n1,2\n", ingest.DefaultLoadOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingNameColumn))
}

func TestLoad_BestOfTwoUPC(t *testing.T) {
	res, err := load(t, "Name,UPC Full,UPC\nA,123,0012345\nB,99999,1\n", ingest.DefaultLoadOptions())
	require.NoError(t, err)

	require.Len(t, res.Records, 2)
	assert.Equal(t, "0012345", res.Records[0].UPC)
	assert.Equal(t, "99999", res.Records[1].UPC)
}
