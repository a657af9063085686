package services

import (
	"sort"

	lru "github.com/hashicorp/golang-lru"

	"noiratelier/internal/domain"
)

// CatalogService serves the read-only product list. The list is deep-copied in
// at construction and never reordered; every product handed out is a deep copy,
// so callers may modify what they get back.
type CatalogService struct {
	products []domain.Product
	byID     map[string]int
	cache    *lru.Cache // nil when caching is disabled
}

// NewCatalogService indexes products; cacheSize 0 disables the query cache.
func NewCatalogService(products []domain.Product, cacheSize int) (*CatalogService, error) {
	s := &CatalogService{
		products: domain.CloneProducts(products),
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range s.products {
		s.byID[p.ID] = i
	}
	if cacheSize > 0 {
		c, err := lru.New(cacheSize)
		if err != nil {
			return nil, err
		}
		s.cache = c
	}
	return s, nil
}

// All returns every product in seed order.
func (s *CatalogService) All() []domain.Product {
	return domain.CloneProducts(s.products)
}

// Search runs the filter over the catalog. The cache only ever stores what
// QueryProducts would return.
func (s *CatalogService) Search(f Filter) []domain.Product {
	if s.cache == nil {
		return domain.CloneProducts(QueryProducts(s.products, f))
	}
	key := f.Key()
	if v, ok := s.cache.Get(key); ok {
		return domain.CloneProducts(v.([]domain.Product))
	}
	res := QueryProducts(s.products, f)
	s.cache.Add(key, res)
	return domain.CloneProducts(res)
}

func (s *CatalogService) Product(id string) (domain.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return s.products[i].Clone(), true
}

// Related lists up to n other products from the same category, in seed order.
func (s *CatalogService) Related(p domain.Product, n int) []domain.Product {
	return s.take(n, func(o domain.Product) bool { return o.Category == p.Category && o.ID != p.ID })
}

func (s *CatalogService) NewArrivals(n int) []domain.Product {
	return s.take(n, func(p domain.Product) bool { return p.IsNew })
}

func (s *CatalogService) SaleItems(n int) []domain.Product {
	return s.take(n, func(p domain.Product) bool { return p.IsSale })
}

// BestSellers ranks by rating, highest first; equal ratings keep seed order.
func (s *CatalogService) BestSellers(n int) []domain.Product {
	ranked := domain.CloneProducts(s.products)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].RatingOrZero() > ranked[j].RatingOrZero() })
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func (s *CatalogService) take(n int, keep func(domain.Product) bool) []domain.Product {
	out := []domain.Product{}
	for _, p := range s.products {
		if n >= 0 && len(out) == n {
			break
		}
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Sizes lists every size offered anywhere in the catalog, sorted.
func (s *CatalogService) Sizes() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range s.products {
		for _, sz := range p.Sizes {
			if !seen[sz] {
				seen[sz] = true
				out = append(out, sz)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Colors lists each color name once, in the order it first appears.
func (s *CatalogService) Colors() []domain.ColorVariant {
	idx := map[string]int{}
	out := []domain.ColorVariant{}
	for _, p := range s.products {
		for _, c := range p.Colors {
			if i, ok := idx[c.Name]; ok {
				out[i].Hex = c.Hex
				continue
			}
			idx[c.Name] = len(out)
			out = append(out, c)
		}
	}
	return out
}
