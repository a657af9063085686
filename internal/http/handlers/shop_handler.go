package handlers

import (
	"github.com/gofiber/fiber/v2"

	"noiratelier/internal/domain"
	applog "noiratelier/internal/log"
	"noiratelier/internal/services"
	"noiratelier/internal/validate"
)

// homeRail is how many products each home page section shows.
const homeRail = 4

type ShopHandler struct {
	Catalog *services.CatalogService
	Blog    *services.BlogService
	Carts   *services.CartService
}

// GET /
func (h *ShopHandler) Home(c *fiber.Ctx) error {
	return render(c, "home", fiber.Map{
		"NewArrivals": h.Catalog.NewArrivals(homeRail),
		"BestSellers": h.Catalog.BestSellers(homeRail),
		"SaleItems":   h.Catalog.SaleItems(homeRail),
		"Posts":       h.Blog.List(),
	})
}

// GET /shop
func (h *ShopHandler) Shop(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "filter", "query": string(c.Request().URI().QueryString())})
		c.Status(fiber.StatusBadRequest)
		return render(c, "shop", fiber.Map{
			"Products": []domain.Product{}, "Count": 0, "Err": "Invalid filter",
			"Filter": services.DefaultFilter(), "Selected": map[string]bool{},
			"SizeSet": map[string]bool{}, "ColorSet": map[string]bool{},
			"Categories": domain.Categories, "Sizes": h.Catalog.Sizes(), "Colors": h.Catalog.Colors(),
		})
	}
	products := h.Catalog.Search(f)
	return render(c, "shop", fiber.Map{
		"Products":   products,
		"Count":      len(products),
		"Filter":     f,
		"Selected":   categoryNames(f.Categories),
		"SizeSet":    stringSet(f.Sizes),
		"ColorSet":   stringSet(f.Colors),
		"Categories": domain.Categories,
		"Sizes":      h.Catalog.Sizes(),
		"Colors":     h.Catalog.Colors(),
	})
}

// GET /product/:id
func (h *ShopHandler) Product(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return notFound(c, "The product you're looking for doesn't exist.")
	}
	p, found := h.Catalog.Product(id)
	if !found {
		return notFound(c, "The product you're looking for doesn't exist.")
	}
	data := fiber.Map{"P": p, "Related": h.Catalog.Related(p, homeRail), "MaxQty": validate.MaxQty}
	if cart, err := h.Carts.View(sessionID(c)); err == nil && cart.IsOpen() {
		data["Drawer"] = cartView(cart)
	}
	return render(c, "product", data)
}
