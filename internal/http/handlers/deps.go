package handlers

import (
	"github.com/jmoiron/sqlx"

	"noiratelier/internal/config"
	"noiratelier/internal/repos"
	"noiratelier/internal/seed"
	"noiratelier/internal/services"
)

type Deps struct {
	Carts           *services.CartService
	ShopHandler     *ShopHandler
	CartHandler     *CartHandler
	BlogHandler     *BlogHandler
	WishlistHandler *WishlistHandler
	ContactHandler  *ContactHandler
	PageHandler     *PageHandler
	APIHandler      *APIHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, catalog *services.CatalogService, blog *services.BlogService) *Deps {
	slotRepo := repos.NewSlotRepo(db)
	wishRepo := repos.NewWishlistRepo(db)
	contactRepo := repos.NewContactRepo(db)

	cartSvc := services.NewCartService(slotRepo, catalog)
	wishSvc := services.NewWishlistService(wishRepo, catalog)
	contactSvc := services.NewContactService(contactRepo)
	faqSvc := services.NewFAQService(seed.FAQ())

	return &Deps{
		Carts:           cartSvc,
		ShopHandler:     &ShopHandler{Catalog: catalog, Blog: blog, Carts: cartSvc},
		CartHandler:     &CartHandler{Cart: cartSvc, Catalog: catalog, TaxRate: cfg.TaxRate},
		BlogHandler:     &BlogHandler{Blog: blog},
		WishlistHandler: &WishlistHandler{Wish: wishSvc},
		ContactHandler:  &ContactHandler{Contact: contactSvc},
		PageHandler:     &PageHandler{FAQ: faqSvc},
		APIHandler:      &APIHandler{Catalog: catalog, Blog: blog, FAQ: faqSvc, Cart: cartSvc, TaxRate: cfg.TaxRate},
	}
}
