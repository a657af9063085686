package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"noiratelier/internal/domain"
	"noiratelier/internal/services"
	"noiratelier/internal/validate"
)

var errBadFilter = errors.New("invalid filter")

// multi collects a repeatable query parameter; comma lists are split too,
// so ?size=S&size=M and ?size=S,M are the same.
func multi(c *fiber.Ctx, name string) []string {
	var out []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(name) {
		for _, v := range strings.Split(string(raw), ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// parseFilter maps shop query parameters onto a catalog filter:
// category, size, color (repeatable), min, max, sort and filter=new|sale.
func parseFilter(c *fiber.Ctx) (services.Filter, error) {
	f := services.DefaultFilter()

	for _, v := range multi(c, "category") {
		cat, ok := validate.Category(v)
		if !ok {
			return f, errBadFilter
		}
		f.Categories = append(f.Categories, cat)
	}
	for _, v := range multi(c, "size") {
		s, ok := validate.Option(v)
		if !ok {
			return f, errBadFilter
		}
		f.Sizes = append(f.Sizes, s)
	}
	for _, v := range multi(c, "color") {
		col, ok := validate.Option(v)
		if !ok {
			return f, errBadFilter
		}
		f.Colors = append(f.Colors, col)
	}
	if v := c.Query("min"); v != "" {
		d, ok := validate.Price(v)
		if !ok {
			return f, errBadFilter
		}
		f.MinPrice = d
	}
	if v := c.Query("max"); v != "" {
		d, ok := validate.Price(v)
		if !ok {
			return f, errBadFilter
		}
		f.MaxPrice = d
	}

	switch strings.ToLower(c.Query("filter")) {
	case "":
	case "sale":
		f.SaleOnly = true
	case "new":
		f.Sort = services.SortNewest
	default:
		return f, errBadFilter
	}
	if v := c.Query("sort"); v != "" {
		k := services.SortKey(strings.ToLower(v))
		if !k.Valid() {
			return f, errBadFilter
		}
		f.Sort = k
	}
	return f, nil
}

func categoryNames(cats []domain.Category) map[string]bool {
	out := make(map[string]bool, len(cats))
	for _, c := range cats {
		out[string(c)] = true
	}
	return out
}

func stringSet(vals []string) map[string]bool {
	out := make(map[string]bool, len(vals))
	for _, v := range vals {
		out[v] = true
	}
	return out
}
