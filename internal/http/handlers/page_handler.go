package handlers

import (
	"github.com/gofiber/fiber/v2"

	"noiratelier/internal/services"
)

// PageHandler serves the brand pages that carry no visitor state.
type PageHandler struct {
	FAQ *services.FAQService
}

// GET /about
func (h *PageHandler) About(c *fiber.Ctx) error {
	return render(c, "about", nil)
}

// GET /faq
func (h *PageHandler) FAQList(c *fiber.Ctx) error {
	return render(c, "faq", fiber.Map{"Groups": h.FAQ.Groups()})
}
