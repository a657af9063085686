package handlers

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"noiratelier/internal/services"
)

// Without the Session middleware there is no sid, so every cart update fails.
func TestDrawerLogsUpdateFailure(t *testing.T) {
	h := &CartHandler{Cart: services.NewCartService(nil, nil)}
	app := fiber.New()
	app.Post("/cart/drawer", h.Drawer)

	var buf bytes.Buffer
	oldW, oldFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	defer func() {
		log.SetOutput(oldW)
		log.SetFlags(oldFlags)
	}()

	req := httptest.NewRequest("POST", "/cart/drawer", strings.NewReader("open=false"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", "/product/4")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/product/4" {
		t.Fatalf("expected redirect back, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	out := buf.String()
	if !strings.Contains(out, `"action":"cart.drawer.fail"`) || !strings.Contains(out, services.ErrNoSession.Error()) {
		t.Fatalf("expected cart.drawer.fail with the cause, got %s", out)
	}
}
