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

type CartHandler struct {
	Cart    *services.CartService
	Catalog *services.CatalogService
	TaxRate decimal.Decimal
}

type lineView struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type cartPayload struct {
	Items []lineView `json:"items"`
	services.CartTotals
	Open bool `json:"open"`
}

func cartView(c *services.Cart) cartPayload {
	items := c.Items()
	out := cartPayload{Items: make([]lineView, 0, len(items)), CartTotals: c.Totals(), Open: c.IsOpen()}
	for _, it := range items {
		out.Items = append(out.Items, lineView{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			Image:     it.Product.PrimaryImage(),
			Price:     it.Product.Price,
			Quantity:  it.Quantity,
			Size:      it.Size,
			Color:     it.Color,
			LineTotal: it.LineTotal(),
		})
	}
	return out
}

var (
	errSelectOptions = errors.New("select a size and color")
	errNoProduct     = errors.New("product not found")
)

// addRequest is shared by the form and JSON add endpoints. A nil Quantity
// means the client left it out.
type addRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// resolveAdd checks the product exists and offers the chosen size and color.
func resolveAdd(catalog *services.CatalogService, req addRequest) (domain.Product, string, string, error) {
	id, ok := validate.ID(req.ProductID)
	if !ok {
		return domain.Product{}, "", "", errNoProduct
	}
	p, found := catalog.Product(id)
	if !found {
		return domain.Product{}, "", "", errNoProduct
	}
	size, okSize := validate.Option(req.Size)
	color, okColor := validate.Option(req.Color)
	if !okSize || !okColor || !p.OffersSize(size) || !p.OffersColor(color) {
		return domain.Product{}, "", "", errSelectOptions
	}
	return p, size, color, nil
}

// POST /cart
func (h *CartHandler) Add(c *fiber.Ctx) error {
	req := addRequest{
		ProductID: c.FormValue("productId"),
		Size:      c.FormValue("size"),
		Color:     c.FormValue("color"),
	}
	qty, ok := validate.Qty(c.FormValue("qty"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "qty"})
		return c.Status(fiber.StatusBadRequest).SendString("invalid quantity")
	}

	p, size, color, err := resolveAdd(h.Catalog, req)
	if errors.Is(err, errNoProduct) {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	if err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "options", "product": req.ProductID})
		return c.Status(fiber.StatusBadRequest).SendString("Please select a size and color.")
	}
	if qty < 1 {
		// nothing to add; the bag is left as it was
		applog.Warn(c, "cart.add.skip", nil, map[string]any{"product": p.ID, "qty": qty})
		return c.Redirect("/product/" + p.ID)
	}

	if err := h.Cart.Update(sessionID(c), func(cart *services.Cart) {
		cart.AddItem(p, qty, size, color)
		cart.SetOpen(true)
	}); err != nil {
		applog.Error(c, "cart.add.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Could not update your bag")
	}
	applog.Info(c, "cart.add", map[string]any{"product": p.ID, "size": size, "color": color, "qty": qty})
	return c.Redirect("/product/" + p.ID)
}

// POST /cart/update
func (h *CartHandler) Update(c *fiber.Ctx) error {
	qty, ok := validate.SetQty(c.FormValue("qty"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid quantity")
	}
	pid, size, color := c.FormValue("productId"), c.FormValue("size"), c.FormValue("color")
	if err := h.Cart.Update(sessionID(c), func(cart *services.Cart) {
		cart.SetQuantity(pid, size, color, qty)
	}); err != nil {
		applog.Error(c, "cart.update.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Could not update your bag")
	}
	return c.Redirect("/cart")
}

// POST /cart/remove
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	pid, size, color := c.FormValue("productId"), c.FormValue("size"), c.FormValue("color")
	if err := h.Cart.Update(sessionID(c), func(cart *services.Cart) {
		cart.RemoveItem(pid, size, color)
	}); err != nil {
		applog.Error(c, "cart.remove.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Could not update your bag")
	}
	return c.Redirect("/cart")
}

// POST /cart/clear
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.Cart.Update(sessionID(c), func(cart *services.Cart) { cart.Clear() }); err != nil {
		applog.Error(c, "cart.clear.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Could not update your bag")
	}
	applog.Info(c, "cart.clear", nil)
	return c.Redirect("/cart")
}

// POST /cart/drawer closes (or opens) the mini cart.
func (h *CartHandler) Drawer(c *fiber.Ctx) error {
	open := c.FormValue("open") == "true"
	if err := h.Cart.Update(sessionID(c), func(cart *services.Cart) { cart.SetOpen(open) }); err != nil {
		applog.Error(c, "cart.drawer.fail", err, nil)
	}
	back := c.Get("Referer")
	if back == "" {
		back = "/shop"
	}
	return c.Redirect(back)
}

// GET /cart
func (h *CartHandler) View(c *fiber.Ctx) error {
	cart, err := h.Cart.View(sessionID(c))
	if err != nil {
		applog.Error(c, "cart.load", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load your bag"})
	}
	return render(c, "cart", fiber.Map{
		"Cart":    cartView(cart),
		"Summary": services.Checkout(cart.Totals(), h.TaxRate),
		"MaxQty":  validate.MaxQty,
	})
}

// GET /checkout renders the summary only; orders are not taken online.
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	cart, err := h.Cart.View(sessionID(c))
	if err != nil {
		applog.Error(c, "checkout.load", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load your bag"})
	}
	if cart.IsEmpty() {
		return c.Redirect("/cart")
	}
	return render(c, "checkout", fiber.Map{
		"Cart":    cartView(cart),
		"Summary": services.Checkout(cart.Totals(), h.TaxRate),
	})
}
