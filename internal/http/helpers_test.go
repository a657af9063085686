package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"noiratelier/internal/config"
	"noiratelier/internal/http/handlers"
	"noiratelier/internal/repos"
	"noiratelier/internal/seed"
	"noiratelier/internal/services"
)

type logEntry struct {
	Level  string                 `json:"level"`
	Action string                 `json:"action"`
	SID    string                 `json:"sid"`
	Fields map[string]interface{} `json:"fields"`
}

type lockedBuf struct {
	b  *bytes.Buffer
	mu *sync.Mutex
}

func (l *lockedBuf) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func captureLogs(t *testing.T, fn func()) []logEntry {
	t.Helper()
	var buf bytes.Buffer
	var mu sync.Mutex
	oldW := log.Writer()
	oldFlags := log.Flags()
	log.SetOutput(&lockedBuf{b: &buf, mu: &mu})
	log.SetFlags(0)
	defer func() {
		log.SetOutput(oldW)
		log.SetFlags(oldFlags)
	}()

	fn()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var e logEntry
		if err := json.Unmarshal([]byte(line), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

func hasAction(entries []logEntry, action string) bool {
	for _, e := range entries {
		if e.Action == action {
			return true
		}
	}
	return false
}

func newTestApp(t *testing.T, opts handlers.AppOptions) (*fiber.App, *sqlx.DB) {
	t.Helper()
	cfg := config.Config{DBDSN: ":memory:", TaxRate: services.DefaultTaxRate, QueryCacheSize: 16}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	catalog, err := services.NewCatalogService(seed.Products(), cfg.QueryCacheSize)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	blog := services.NewBlogService(seed.Posts())
	return handlers.NewApp(db, cfg, catalog, blog, opts), db
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// visitor carries the sid and csrf cookies a browser would keep.
type visitor struct {
	t    *testing.T
	app  *fiber.App
	sid  string
	csrf string
}

// newVisitor opens the home page once to pick up the session and csrf cookies.
func newVisitor(t *testing.T, app *fiber.App) *visitor {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	v := &visitor{t: t, app: app, sid: extractCookie(resp, "sid"), csrf: extractCookie(resp, "csrf_")}
	if v.sid == "" || v.csrf == "" {
		t.Fatalf("expected sid and csrf cookies, got sid=%q csrf=%q", v.sid, v.csrf)
	}
	return v
}

func (v *visitor) do(req *http.Request) *http.Response {
	v.t.Helper()
	req.AddCookie(&http.Cookie{Name: "sid", Value: v.sid})
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: v.csrf})
	resp, err := v.app.Test(req)
	if err != nil {
		v.t.Fatal(err)
	}
	return resp
}

func (v *visitor) get(path string) *http.Response {
	return v.do(httptest.NewRequest("GET", path, nil))
}

// postForm submits a form with the visitor's csrf token.
func (v *visitor) postForm(path string, form url.Values) *http.Response {
	form.Set("csrf", v.csrf)
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return v.do(req)
}

func (v *visitor) sendJSON(method, path string, body any) *http.Response {
	v.t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			v.t.Fatal(err)
		}
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	return v.do(req)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}
