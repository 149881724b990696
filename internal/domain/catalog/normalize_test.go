package catalog_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/catalog"
)

func TestCleanUPC(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"123-456,789", "123456"},
		{"", ""},
		{" 0012 3 ", "00123"},
		{"abc", ""},
		{strings.Repeat("9", 25), strings.Repeat("9", 20)},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, catalog.CleanUPC(c.in), "entrada %q", c.in)
	}
}

func TestBestUPC(t *testing.T) {
	assert.Equal(t, "12345", catalog.BestUPC("123", "12345"))
	assert.Equal(t, "12345", catalog.BestUPC("12345", "123"))
	assert.Equal(t, "111", catalog.BestUPC("111", "222"), "en empate gana el primario")
	assert.Equal(t, "222", catalog.BestUPC("", "222"))
}

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		in   string
		min  int
		want int
	}{
		{"12 units (3 cases)", 0, 15},
		{"", 0, 0},
		{"n/a", 0, 0},
		{"-5", 0, 0},
		{"-5", -10, -5},
		{"1,200", 0, 1200},
		{"2.5", 0, 2},
		{"3.5", 0, 4},
		{"10", 12, 12},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, catalog.ParseQuantity(c.in, c.min), "entrada %q min %d", c.in, c.min)
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"$1,234.567", "1234.57"},
		{"12", "12"},
		{"abc", "0"},
		{"", "0"},
		{"-3.00", "0"},
		{"1.2.3", "0"},
		{"USD 9.99", "9.99"},
		{"9999999999.99", "9999999999.99"},
		{"012345678905", "0"},
		{"9999999999.999", "0"},
	}
	for _, c := range cases {
		got := catalog.ParsePrice(c.in)
		assert.True(t, decimal.RequireFromString(c.want).Equal(got), "entrada %q: got %s", c.in, got)
	}
}

func TestTruncate_RuneSafe(t *testing.T) {
	assert.Equal(t, "ÑAN", catalog.Truncate("ÑANDU", 3))
	assert.Equal(t, "ABC", catalog.Truncate("ABC", 10))
	assert.Equal(t, "AB", catalog.Truncate("AB CD", 3))
}

func TestCleanName(t *testing.T) {
	engine := catalog.DefaultBrandEngine()

	assert.Equal(t, "GEEKBAR PULSE", catalog.CleanName("  geek   bar pulse  ", engine))
	assert.Equal(t, "", catalog.CleanName("   ", engine))
	assert.Len(t, []rune(catalog.CleanName(strings.Repeat("x", 300), engine)), catalog.MaxNameLen)
}

func TestCleanStockCode(t *testing.T) {
	assert.Equal(t, "SKU-1", catalog.CleanStockCode("  SKU-1 "))
	assert.Len(t, catalog.CleanStockCode(strings.Repeat("a", 80)), catalog.MaxStockCodeLen)
}
