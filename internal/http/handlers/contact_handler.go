package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "noiratelier/internal/log"
	"noiratelier/internal/services"
)

type ContactHandler struct {
	Contact *services.ContactService
}

// GET /contact
func (h *ContactHandler) Form(c *fiber.Ctx) error {
	return render(c, "contact", fiber.Map{"Form": services.ContactForm{}, "Errors": services.FieldErrors{}})
}

// POST /contact
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	form := services.ContactForm{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Subject: c.FormValue("subject"),
		Message: c.FormValue("message"),
	}
	id, err := h.Contact.Submit(form)
	var fieldErrs services.FieldErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for f := range fieldErrs {
			fields = append(fields, f)
		}
		applog.Security(c, "validation.fail", map[string]any{"form": "contact", "fields": fields})
		c.Status(fiber.StatusBadRequest)
		return render(c, "contact", fiber.Map{"Form": form, "Errors": fieldErrs})
	}
	if err != nil {
		applog.Error(c, "contact.submit.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Something went wrong. Please try again."})
	}
	applog.Audit(c, "contact.submit", map[string]any{"message_id": id})
	return render(c, "contact", fiber.Map{"Sent": true, "Form": services.ContactForm{}, "Errors": services.FieldErrors{}})
}

// POST /subscribe
func (h *ContactHandler) Subscribe(c *fiber.Ctx) error {
	created, err := h.Contact.Subscribe(c.FormValue("email"))
	if errors.Is(err, services.ErrInvalidContact) {
		applog.Security(c, "validation.fail", map[string]any{"field": "email", "form": "newsletter"})
		return c.Status(fiber.StatusBadRequest).SendString("Please enter a valid email")
	}
	if err != nil {
		applog.Error(c, "newsletter.subscribe.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Could not subscribe right now")
	}
	applog.Audit(c, "newsletter.subscribe", map[string]any{"new": created})
	back := c.Get("Referer")
	if back == "" {
		back = "/"
	}
	return c.Redirect(back)
}
