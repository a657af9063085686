package services

import (
	"errors"
	"sort"

	"noiratelier/internal/domain"
	"noiratelier/internal/repos"
)

var ErrUnknownProduct = errors.New("unknown product")

type WishlistService struct {
	Repo    *repos.WishlistRepo
	Catalog ProductLookup
}

func NewWishlistService(r *repos.WishlistRepo, catalog ProductLookup) *WishlistService {
	return &WishlistService{Repo: r, Catalog: catalog}
}

func (s *WishlistService) Save(sessionID, productID string) error {
	if _, ok := s.Catalog.Product(productID); !ok {
		return ErrUnknownProduct
	}
	id, err := s.Repo.Ensure(sessionID)
	if err != nil {
		return err
	}
	return s.Repo.Add(id, productID)
}

func (s *WishlistService) Unsave(sessionID, productID string) error {
	id, err := s.Repo.Ensure(sessionID)
	if err != nil {
		return err
	}
	return s.Repo.Remove(id, productID)
}

// List resolves saved ids against the catalog, sorted by product name.
// Ids no longer in the catalog are left out.
func (s *WishlistService) List(sessionID string) ([]domain.Product, error) {
	id, err := s.Repo.Ensure(sessionID)
	if err != nil {
		return nil, err
	}
	ids, err := s.Repo.ProductIDs(id)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(ids))
	for _, pid := range ids {
		if p, ok := s.Catalog.Product(pid); ok {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
