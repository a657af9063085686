package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"noiratelier/internal/http/handlers"
)

func TestCartActionsAreLoggedWithSession(t *testing.T) {
	app, _ := newTestApp(t, handlers.AppOptions{})
	v := newVisitor(t, app)

	entries := captureLogs(t, func() {
		v.postForm("/cart", url.Values{"productId": {"3"}, "size": {"S"}, "color": {"Black"}, "qty": {"2"}})
		v.postForm("/cart/clear", url.Values{})
	})
	var add *logEntry
	for i := range entries {
		if entries[i].Action == "cart.add" {
			add = &entries[i]
		}
	}
	if add == nil {
		t.Fatalf("expected cart.add log")
	}
	if add.SID != v.sid || add.Fields["product"] != "3" {
		t.Fatalf("cart.add entry missing session or product: %+v", add)
	}
	if !hasAction(entries, "cart.clear") {
		t.Fatalf("expected cart.clear log")
	}
}

func TestSecurityEventsAreLogged(t *testing.T) {
	app, _ := newTestApp(t, handlers.AppOptions{})

	entries := captureLogs(t, func() {
		form := url.Values{"productId": {"4"}}
		req := httptest.NewRequest("POST", "/cart", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		_, _ = app.Test(req)
	})
	if !hasAction(entries, "csrf.fail") {
		t.Fatalf("expected csrf.fail log")
	}

	entries = captureLogs(t, func() {
		_, _ = app.Test(httptest.NewRequest("GET", "/shop?sort=bogus", nil))
	})
	if !hasAction(entries, "validation.fail") {
		t.Fatalf("expected validation.fail log")
	}
}

func TestStoreFailureIsFriendlyAndLogged(t *testing.T) {
	app, db := newTestApp(t, handlers.AppOptions{})
	v := newVisitor(t, app)
	db.Close()

	var resp *http.Response
	entries := captureLogs(t, func() {
		resp = v.get("/wishlist")
	})
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	body := readBody(t, resp)
	if strings.Contains(body, "sql") || strings.Contains(body, "closed") {
		t.Fatalf("internal details leaked to user; body=%s", body)
	}
	if !hasAction(entries, "wishlist.list.fail") {
		t.Fatalf("expected wishlist.list.fail log")
	}
}
