package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"noiratelier/internal/domain"
)

// MaxQty caps a single add-to-cart request.
const MaxQty = 10

var (
	reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	// sizes ("One Size", "XL") and color names ("Light Blue")
	reOption = regexp.MustCompile(`^[A-Za-z0-9 ]{1,32}$`)
)

// Email trims s and checks its shape; the trimmed value is returned either way.
func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 254 {
		return s, false
	}
	return s, reEmail.MatchString(s)
}

// Required trims s and accepts it when non-empty and at most max runes long.
func Required(s string, max int) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > max {
		return s, false
	}
	return s, true
}

// Qty parses a requested add quantity. An empty value means 1; an explicit
// zero or negative is passed through so the add is a no-op. ok is false only
// for garbage.
func Qty(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	if n > MaxQty {
		n = MaxQty
	}
	return n, true
}

// SetQty parses a quantity for an existing line. Zero and negatives are valid
// (they remove the line); ok is false only for garbage.
func SetQty(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	if n > MaxQty {
		n = MaxQty
	}
	return n, true
}

// ID validates a simple resource identifier (product/post ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Option validates a size or color name.
func Option(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reOption.MatchString(s)
}

func Category(s string) (domain.Category, bool) {
	c := domain.Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Valid()
}

// Price parses a non-negative amount.
func Price(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}
