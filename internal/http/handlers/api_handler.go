package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"noiratelier/internal/domain"
	applog "noiratelier/internal/log"
	"noiratelier/internal/services"
	"noiratelier/internal/validate"
)

// APIHandler serves /api/v1 as JSON for script clients.
type APIHandler struct {
	Catalog *services.CatalogService
	Blog    *services.BlogService
	FAQ     *services.FAQService
	Cart    *services.CartService
	TaxRate decimal.Decimal
}

func apiError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// GET /api/v1/products
func (h *APIHandler) Products(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "filter"})
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	products := h.Catalog.Search(f)
	return c.JSON(fiber.Map{"count": len(products), "products": products})
}

// GET /api/v1/products/:id
func (h *APIHandler) Product(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return apiError(c, fiber.StatusNotFound, "product not found")
	}
	p, found := h.Catalog.Product(id)
	if !found {
		return apiError(c, fiber.StatusNotFound, "product not found")
	}
	return c.JSON(fiber.Map{"product": p, "related": h.Catalog.Related(p, homeRail)})
}

// GET /api/v1/facets
func (h *APIHandler) Facets(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories": domain.Categories,
		"sizes":      h.Catalog.Sizes(),
		"colors":     h.Catalog.Colors(),
		"priceRange": fiber.Map{"min": services.DefaultMinPrice, "max": services.DefaultMaxPrice},
		"sorts":      []services.SortKey{services.SortNewest, services.SortPriceLow, services.SortPriceHigh, services.SortPopular},
	})
}

func (h *APIHandler) cartJSON(c *fiber.Ctx, cart *services.Cart) error {
	return c.JSON(fiber.Map{
		"cart":     cartView(cart),
		"checkout": services.Checkout(cart.Totals(), h.TaxRate),
	})
}

// GET /api/v1/cart
func (h *APIHandler) GetCart(c *fiber.Ctx) error {
	cart, err := h.Cart.View(sessionID(c))
	if err != nil {
		applog.Error(c, "cart.load", err, nil)
		return apiError(c, fiber.StatusInternalServerError, "could not load cart")
	}
	return h.cartJSON(c, cart)
}

// update runs fn on the session cart and answers with the new state.
func (h *APIHandler) update(c *fiber.Ctx, action string, fn func(*services.Cart)) error {
	var after *services.Cart
	err := h.Cart.Update(sessionID(c), func(cart *services.Cart) {
		fn(cart)
		after = cart
	})
	if err != nil {
		applog.Error(c, action+".fail", err, nil)
		return apiError(c, fiber.StatusInternalServerError, "could not update cart")
	}
	return h.cartJSON(c, after)
}

// POST /api/v1/cart/items
func (h *APIHandler) AddItem(c *fiber.Ctx) error {
	var req addRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid body")
	}
	qty := 1
	if req.Quantity != nil {
		qty = min(*req.Quantity, validate.MaxQty)
	}
	p, size, color, err := resolveAdd(h.Catalog, req)
	switch {
	case errors.Is(err, errNoProduct):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case err != nil:
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if qty < 1 {
		applog.Warn(c, "cart.add.skip", nil, map[string]any{"product": p.ID, "qty": qty})
		return h.GetCart(c)
	}
	applog.Info(c, "cart.add", map[string]any{"product": p.ID, "size": size, "color": color, "qty": qty})
	return h.update(c, "cart.add", func(cart *services.Cart) {
		cart.AddItem(p, qty, size, color)
		cart.SetOpen(true)
	})
}

type setQtyRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// PATCH /api/v1/cart/items
func (h *APIHandler) SetQuantity(c *fiber.Ctx) error {
	var req setQtyRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid body")
	}
	if req.Quantity > validate.MaxQty {
		req.Quantity = validate.MaxQty
	}
	return h.update(c, "cart.update", func(cart *services.Cart) {
		cart.SetQuantity(req.ProductID, req.Size, req.Color, req.Quantity)
	})
}

// DELETE /api/v1/cart/items?productId=&size=&color=
func (h *APIHandler) RemoveItem(c *fiber.Ctx) error {
	pid, size, color := c.Query("productId"), c.Query("size"), c.Query("color")
	return h.update(c, "cart.remove", func(cart *services.Cart) {
		cart.RemoveItem(pid, size, color)
	})
}

// DELETE /api/v1/cart
func (h *APIHandler) ClearCart(c *fiber.Ctx) error {
	return h.update(c, "cart.clear", func(cart *services.Cart) { cart.Clear() })
}

// PUT /api/v1/cart/drawer
func (h *APIHandler) SetDrawer(c *fiber.Ctx) error {
	var req struct {
		Open bool `json:"open"`
	}
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid body")
	}
	return h.update(c, "cart.drawer", func(cart *services.Cart) { cart.SetOpen(req.Open) })
}

// GET /api/v1/posts
func (h *APIHandler) Posts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"posts": h.Blog.List()})
}

// GET /api/v1/posts/:id
func (h *APIHandler) Post(c *fiber.Ctx) error {
	post, found := h.Blog.Get(c.Params("id"))
	if !found {
		return apiError(c, fiber.StatusNotFound, "post not found")
	}
	return c.JSON(fiber.Map{"post": post, "related": h.Blog.Related(post, 2)})
}

// GET /api/v1/faq
func (h *APIHandler) FAQGroups(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"groups": h.FAQ.Groups()})
}
