package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"noiratelier/internal/config"
	applog "noiratelier/internal/log"
	"noiratelier/internal/services"
	"noiratelier/web"
)

// AppOptions tunes the middleware stack; the zero value is production.
type AppOptions struct {
	// RequestsPerMinute caps page and API traffic per client IP (default 60).
	RequestsPerMinute int
	// AccessLog enables fiber's request logger.
	AccessLog bool
}

// NewApp assembles the storefront: views, middleware and every route.
func NewApp(db *sqlx.DB, cfg config.Config, catalog *services.CatalogService, blog *services.BlogService, opts AppOptions) *fiber.App {
	engine := html.NewFileSystem(http.FS(web.Templates()), ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			if code >= fiber.StatusInternalServerError {
				applog.Error(c, "server.error", err, nil)
			}
			msg := "Something went wrong. Please try again."
			if code == fiber.StatusNotFound {
				msg = "Page not found"
			}
			if strings.HasPrefix(c.Path(), "/api/") {
				return c.Status(code).JSON(fiber.Map{"error": msg})
			}
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(code).Render("notfound", fiber.Map{"Message": msg}); rerr != nil {
				return c.Status(code).SendString(msg)
			}
			return nil
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	perMinute := opts.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = 60
	}

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/healthz"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.limit.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).SendString("Too many requests. Please slow down.")
		},
	}))
	app.Use(Session())
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		Next: func(c *fiber.Ctx) bool {
			// JSON clients carry no form token
			return strings.HasPrefix(c.Path(), "/api/")
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"path": c.Path()})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok, ok := c.Locals("csrf").(string); ok {
			c.Locals("CSRFToken", tok)
		}
		return c.Next()
	})

	deps := NewDeps(db, cfg, catalog, blog)
	app.Use(CartBadge(deps.Carts))

	// Pages
	app.Get("/", deps.ShopHandler.Home)
	app.Get("/shop", deps.ShopHandler.Shop)
	app.Get("/product/:id", deps.ShopHandler.Product)
	app.Get("/blog", deps.BlogHandler.List)
	app.Get("/blog/:id", deps.BlogHandler.Detail)
	app.Get("/about", deps.PageHandler.About)
	app.Get("/faq", deps.PageHandler.FAQList)

	// Cart
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/update", deps.CartHandler.Update)
	app.Post("/cart/remove", deps.CartHandler.Remove)
	app.Post("/cart/clear", deps.CartHandler.Clear)
	app.Post("/cart/drawer", deps.CartHandler.Drawer)
	app.Get("/checkout", deps.CartHandler.Checkout)

	// Wishlist
	app.Get("/wishlist", deps.WishlistHandler.List)
	app.Post("/wishlist", deps.WishlistHandler.Save)
	app.Post("/wishlist/delete", deps.WishlistHandler.Unsave)

	// Contact & newsletter (throttled harder)
	formLimiter := limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.form.hit", map[string]any{"path": c.Path()})
			return c.Status(fiber.StatusTooManyRequests).SendString("Too many submissions. Please try again later.")
		},
	})
	app.Get("/contact", deps.ContactHandler.Form)
	app.Post("/contact", formLimiter, deps.ContactHandler.Submit)
	app.Post("/subscribe", formLimiter, deps.ContactHandler.Subscribe)

	// API
	api := app.Group("/api/v1")
	api.Get("/products", deps.APIHandler.Products)
	api.Get("/products/:id", deps.APIHandler.Product)
	api.Get("/facets", deps.APIHandler.Facets)
	api.Get("/cart", deps.APIHandler.GetCart)
	api.Delete("/cart", deps.APIHandler.ClearCart)
	api.Post("/cart/items", deps.APIHandler.AddItem)
	api.Patch("/cart/items", deps.APIHandler.SetQuantity)
	api.Delete("/cart/items", deps.APIHandler.RemoveItem)
	api.Put("/cart/drawer", deps.APIHandler.SetDrawer)
	api.Get("/posts", deps.APIHandler.Posts)
	api.Get("/posts/:id", deps.APIHandler.Post)
	api.Get("/faq", deps.APIHandler.FAQGroups)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
		}
		return notFound(c, "Page not found")
	})

	return app
}
