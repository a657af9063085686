package handlers

import (
	"github.com/gofiber/fiber/v2"

	"noiratelier/internal/services"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Pick up the token the CSRF middleware put into Locals
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		tok = c.Cookies("csrf_")
	}
	if tok != "" {
		data["CSRFToken"] = tok
	}
	if n, ok := c.Locals("cartCount").(int); ok {
		data["CartCount"] = n
	}
	return c.Render(tmpl, data)
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": msg})
}

// CartBadge exposes the session's item count to page templates.
func CartBadge(carts *services.CartService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cart, err := carts.View(sessionID(c)); err == nil {
			c.Locals("cartCount", cart.TotalItems())
		}
		return c.Next()
	}
}
