package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noiratelier/internal/domain"
	"noiratelier/internal/seed"
)

func TestSearchServesCopiesFromCache(t *testing.T) {
	c := newCatalog(t)
	f := DefaultFilter()
	f.Categories = []domain.Category{domain.CategoryWomen}

	first := c.Search(f)
	require.Len(t, first, 5)
	first[0].Name = "mutated"

	second := c.Search(f)
	assert.NotEqual(t, "mutated", second[0].Name)
	assert.Equal(t, ids(first), ids(second))
}

func TestReturnedProductsDoNotAliasCatalog(t *testing.T) {
	c := newCatalog(t)
	f := DefaultFilter()
	f.Categories = []domain.Category{domain.CategoryWomen}

	// miss, then hit
	for range 2 {
		got := c.Search(f)
		require.NotEmpty(t, got)
		got[0].Sizes[0] = "mutated"
		got[0].Images[0] = "mutated"
		got[0].Colors[0].Name = "mutated"
	}
	again := c.Search(f)
	assert.NotEqual(t, "mutated", again[0].Sizes[0])
	assert.NotEqual(t, "mutated", again[0].Images[0])
	assert.NotEqual(t, "mutated", again[0].Colors[0].Name)

	p, ok := c.Product(again[0].ID)
	require.True(t, ok)
	p.Sizes[0] = "mutated"
	all := c.All()
	all[0].Images[0] = "mutated"

	p2, _ := c.Product(again[0].ID)
	assert.NotEqual(t, "mutated", p2.Sizes[0])
	assert.NotEqual(t, "mutated", c.All()[0].Images[0])
	assert.NotContains(t, c.Sizes(), "mutated")
}

func TestSearchWithoutCache(t *testing.T) {
	c, err := NewCatalogService(seed.Products(), 0)
	require.NoError(t, err)
	assert.Len(t, c.Search(DefaultFilter()), 12)
}

func TestCatalogRails(t *testing.T) {
	c := newCatalog(t)

	assert.Equal(t, []string{"2", "4", "7", "11"}, ids(c.NewArrivals(4)))
	assert.Equal(t, []string{"1", "10"}, ids(c.SaleItems(4)))
	best := c.BestSellers(4)
	require.Len(t, best, 4)
	assert.Equal(t, "7", best[0].ID)
	for i := 1; i < len(best); i++ {
		assert.GreaterOrEqual(t, best[i-1].RatingOrZero(), best[i].RatingOrZero())
	}
}

func TestRelatedExcludesSelf(t *testing.T) {
	c := newCatalog(t)
	p, ok := c.Product("6")
	require.True(t, ok)

	rel := c.Related(p, 4)
	assert.Equal(t, []string{"7", "10"}, ids(rel))

	_, ok = c.Product("nope")
	assert.False(t, ok)
}

func TestFacets(t *testing.T) {
	c := newCatalog(t)
	sizes := c.Sizes()
	assert.Contains(t, sizes, "One Size")
	assert.Contains(t, sizes, "XXL")
	assert.IsNonDecreasing(t, sizes)

	colors := c.Colors()
	require.NotEmpty(t, colors)
	assert.Equal(t, "Charcoal", colors[0].Name)
	seen := map[string]bool{}
	for _, col := range colors {
		assert.False(t, seen[col.Name], "duplicate color %s", col.Name)
		seen[col.Name] = true
	}
}
