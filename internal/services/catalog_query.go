package services

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"noiratelier/internal/domain"
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortPopular   SortKey = "popular"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortNewest, SortPriceLow, SortPriceHigh, SortPopular:
		return true
	}
	return false
}

var (
	DefaultMinPrice = decimal.Zero
	DefaultMaxPrice = decimal.NewFromInt(2000)
)

// Filter selects and orders catalog products. Empty sets place no restriction;
// sizes and colors match when a product offers any of the selected values.
type Filter struct {
	Categories []domain.Category
	MinPrice   decimal.Decimal
	MaxPrice   decimal.Decimal
	Sizes      []string
	Colors     []string
	SaleOnly   bool
	Sort       SortKey
}

func DefaultFilter() Filter {
	return Filter{MinPrice: DefaultMinPrice, MaxPrice: DefaultMaxPrice, Sort: SortNewest}
}

// Key is a canonical form of the filter: two filters selecting the same sets
// in a different order share a key.
func (f Filter) Key() string {
	cats := make([]string, 0, len(f.Categories))
	for _, c := range f.Categories {
		cats = append(cats, string(c))
	}
	return fmt.Sprintf("c=%s|p=%s-%s|s=%s|col=%s|sale=%t|sort=%s",
		canonical(cats), f.MinPrice.String(), f.MaxPrice.String(),
		canonical(f.Sizes), canonical(f.Colors), f.SaleOnly, f.Sort)
}

func canonical(vals []string) string {
	cp := slices.Clone(vals)
	slices.Sort(cp)
	return strings.Join(slices.Compact(cp), ",")
}

// QueryProducts filters and sorts a copy of products; the input is never
// reordered. The result is never nil, so "no matches" is an empty slice.
func QueryProducts(products []domain.Product, f Filter) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.Category) {
			continue
		}
		if p.Price.LessThan(f.MinPrice) || p.Price.GreaterThan(f.MaxPrice) {
			continue
		}
		if len(f.Sizes) > 0 && !slices.ContainsFunc(f.Sizes, p.OffersSize) {
			continue
		}
		if len(f.Colors) > 0 && !slices.ContainsFunc(f.Colors, p.OffersColor) {
			continue
		}
		if f.SaleOnly && !p.IsSale {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool { return out[i].RatingOrZero() > out[j].RatingOrZero() })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].IsNew && !out[j].IsNew })
	}
	return out
}
