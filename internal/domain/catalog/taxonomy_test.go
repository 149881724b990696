package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/catalog"
)

func TestTaxonomy_ParentFor(t *testing.T) {
	tx := catalog.DefaultTaxonomy()

	cases := []struct {
		label  string
		parent string
		known  bool
	}{
		{"nicotine vape", catalog.NicotineVapes, true},
		{"Disposable  Vapes", catalog.NicotineVapes, true},
		{"PAPERS/CONES", catalog.RollingPapersCones, true},
		{"ROLLING PAPERS & CONES", catalog.RollingPapersCones, true},
		{"Grinders", catalog.Grinders, true},
		{"", catalog.MiscellaneousSmoke, true},
		{"candles", "CANDLES", false},
	}
	for _, c := range cases {
		parent, known := tx.ParentFor(c.label)
		assert.Equal(t, c.parent, parent, "etiqueta %q", c.label)
		assert.Equal(t, c.known, known, "etiqueta %q", c.label)
	}
}

func TestTaxonomy_InferSubcategory(t *testing.T) {
	tx := catalog.DefaultTaxonomy()

	rule, ok := tx.InferSubcategory("RAZ LTX 25K BLUE RAZZ ICE", catalog.NicotineVapes)
	assert.True(t, ok)
	assert.Equal(t, "RAZ LTX 25K", rule.Name)

	rule, ok = tx.InferSubcategory("raw classic cone 1 1/4", catalog.RollingPapersCones)
	assert.True(t, ok)
	assert.Equal(t, "RAW CONES", rule.Name)

	_, ok = tx.InferSubcategory("RAZ LTX 25K BLUE", catalog.TobaccoProducts)
	assert.False(t, ok, "la regla exige su padre")

	_, ok = tx.InferSubcategory("GENERIC LIGHTER", catalog.MiscellaneousSmoke)
	assert.False(t, ok)
}

func TestTaxonomy_ParentSlug(t *testing.T) {
	tx := catalog.DefaultTaxonomy()
	assert.Equal(t, "rolling-papers-cones", tx.ParentSlug(catalog.RollingPapersCones))
	assert.Equal(t, "", tx.ParentSlug(catalog.Edibles))
}

func TestRowFilter_Check(t *testing.T) {
	f := catalog.RowFilter{
		AllowedCategories:  []string{"Nicotine Vapes", "Grinders"},
		RequiredNameTokens: []string{"raz", "geekbar"},
		ExcludedNameTokens: []string{"RAZ 9K CACTUS JACK"},
	}

	assert.Equal(t, catalog.SkipEmptyName, f.Check("", "Grinders"))
	assert.Equal(t, catalog.SkipCategoryNotTracked, f.Check("RAZ LTX 25K", "Edibles"))
	assert.Equal(t, catalog.SkipNotRequested, f.Check("ELFBAR BC5000", "nicotine vapes"))
	assert.Equal(t, catalog.SkipExcludedName, f.Check("RAZ 9K CACTUS JACK", "NICOTINE VAPES"))
	assert.Equal(t, "", f.Check("GEEKBAR PULSE", "NICOTINE VAPES"))

	assert.Equal(t, "", catalog.RowFilter{}.Check("ANYTHING", ""))
}
