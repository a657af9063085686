package handlers

import (
	"html/template"

	"github.com/gofiber/fiber/v2"

	"noiratelier/internal/services"
	"noiratelier/internal/validate"
)

type BlogHandler struct {
	Blog *services.BlogService
}

// GET /blog
func (h *BlogHandler) List(c *fiber.Ctx) error {
	featured, ok := h.Blog.Featured()
	data := fiber.Map{"Posts": h.Blog.Others()}
	if ok {
		data["Featured"] = featured
	}
	return render(c, "blog", data)
}

// GET /blog/:id
func (h *BlogHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, "Article not found")
	}
	post, found := h.Blog.Get(id)
	if !found {
		return notFound(c, "Article not found")
	}
	return render(c, "post", fiber.Map{
		"Post": post,
		// post bodies are seeded markup, not visitor input
		"Body":    template.HTML(post.Content),
		"Related": h.Blog.Related(post, 2),
	})
}
