package services

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"noiratelier/internal/domain"
	applog "noiratelier/internal/log"
	"noiratelier/internal/seed"
)

var (
	// FreeShippingThreshold must be strictly exceeded to waive shipping.
	FreeShippingThreshold = decimal.NewFromInt(500)
	ShippingFee           = decimal.NewFromInt(25)
)

// CartStore persists serialized carts in named slots.
type CartStore interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, value []byte) error
}

// ProductLookup resolves persisted product ids back to catalog products.
type ProductLookup interface {
	Product(id string) (domain.Product, bool)
}

// storedLine is the persisted shape of a line item.
type storedLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"colorName"`
}

// Cart owns the line items of one shopper. Mutations are written back to the
// store after the in-memory change; reads never touch the store.
type Cart struct {
	store    CartStore
	products ProductLookup
	key      string
	items    []domain.LineItem
	open     bool
}

// LoadCart is the only way to obtain a Cart: the slot is read before any write
// can happen, so an empty pre-load state never overwrites a saved cart.
// Missing or unreadable data yields an empty cart.
func LoadCart(store CartStore, products ProductLookup, key string) *Cart {
	c := &Cart{store: store, products: products, key: key, items: []domain.LineItem{}}

	raw, ok, err := store.Load(key)
	if err != nil {
		applog.Warn(nil, "cart.load.fail", err, map[string]any{"key": key})
		return c
	}
	if !ok {
		return c
	}
	var lines []storedLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		applog.Warn(nil, "cart.load.corrupt", err, map[string]any{"key": key})
		return c
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			applog.Warn(nil, "cart.load.skip", nil, map[string]any{"key": key, "product": l.ProductID, "reason": "quantity"})
			continue
		}
		p, found := products.Product(l.ProductID)
		if !found {
			applog.Warn(nil, "cart.load.skip", nil, map[string]any{"key": key, "product": l.ProductID, "reason": "unknown_product"})
			continue
		}
		c.merge(p, l.Quantity, l.Size, l.Color)
	}
	return c
}

func (c *Cart) Key() string { return c.key }

func (c *Cart) indexOf(k domain.ItemKey) int {
	for i, it := range c.items {
		if it.Key() == k {
			return i
		}
	}
	return -1
}

func (c *Cart) merge(p domain.Product, qty int, size, color string) {
	if i := c.indexOf(domain.ItemKey{ProductID: p.ID, Size: size, Color: color}); i >= 0 {
		c.items[i].Quantity += qty
		return
	}
	c.items = append(c.items, domain.LineItem{Product: p, Quantity: qty, Size: size, Color: color})
}

// AddItem merges into an existing line with the same (product, size, color)
// or appends a new one. Non-positive quantities are ignored and nothing is saved.
func (c *Cart) AddItem(p domain.Product, qty int, size, color string) {
	if qty <= 0 {
		return
	}
	c.merge(p, qty, size, color)
	c.persist()
}

// RemoveItem deletes the matching line; a missing line is not an error.
func (c *Cart) RemoveItem(productID, size, color string) {
	i := c.indexOf(domain.ItemKey{ProductID: productID, Size: size, Color: color})
	if i < 0 {
		return
	}
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	c.persist()
}

// SetQuantity overwrites the quantity of an existing line; qty <= 0 removes it.
func (c *Cart) SetQuantity(productID, size, color string, qty int) {
	if qty <= 0 {
		c.RemoveItem(productID, size, color)
		return
	}
	i := c.indexOf(domain.ItemKey{ProductID: productID, Size: size, Color: color})
	if i < 0 {
		return
	}
	c.items[i].Quantity = qty
	c.persist()
}

func (c *Cart) Clear() {
	c.items = []domain.LineItem{}
	c.persist()
}

// Items returns a copy in insertion order.
func (c *Cart) Items() []domain.LineItem {
	out := make([]domain.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

func (c *Cart) IsOpen() bool { return c.open }

// SetOpen toggles the cart drawer. The flag is never persisted.
func (c *Cart) SetOpen(open bool) { c.open = open }

func (c *Cart) TotalItems() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

// Shipping is waived above the threshold and for an empty cart.
func (c *Cart) Shipping() decimal.Decimal {
	return shippingFor(len(c.items), c.Subtotal())
}

func (c *Cart) Total() decimal.Decimal {
	return c.Totals().Total
}

func shippingFor(lines int, subtotal decimal.Decimal) decimal.Decimal {
	if lines == 0 || subtotal.GreaterThan(FreeShippingThreshold) {
		return decimal.Zero
	}
	return ShippingFee
}

// CartTotals is a snapshot of the derived aggregates.
type CartTotals struct {
	Items    int             `json:"totalItems"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

func (c *Cart) Totals() CartTotals {
	sub := c.Subtotal()
	ship := shippingFor(len(c.items), sub)
	return CartTotals{Items: c.TotalItems(), Subtotal: sub, Shipping: ship, Total: sub.Add(ship)}
}

func (c *Cart) persist() {
	lines := make([]storedLine, 0, len(c.items))
	for _, it := range c.items {
		lines = append(lines, storedLine{ProductID: it.Product.ID, Quantity: it.Quantity, Size: it.Size, Color: it.Color})
	}
	b, err := json.Marshal(lines)
	if err != nil {
		applog.Error(nil, "cart.save.encode", err, map[string]any{"key": c.key})
		return
	}
	if err := c.store.Save(c.key, b); err != nil {
		applog.Error(nil, "cart.save.fail", err, map[string]any{"key": c.key})
	}
}

var ErrNoSession = errors.New("missing session id")

// CartService hands out per-session carts. Each visitor owns one storage slot
// named after the session. Read-modify-write cycles are serialized so two
// concurrent requests of one visitor cannot lose an update.
type CartService struct {
	Store    CartStore
	Products ProductLookup

	mu     sync.Mutex
	drawer map[string]bool
}

func NewCartService(store CartStore, products ProductLookup) *CartService {
	return &CartService{Store: store, Products: products, drawer: map[string]bool{}}
}

func SessionCartKey(sessionID string) string {
	return seed.CartStorageKey + ":" + sessionID
}

// View loads the session cart for reading.
func (s *CartService) View(sessionID string) (*Cart, error) {
	var out *Cart
	err := s.Update(sessionID, func(c *Cart) { out = c })
	return out, err
}

// Update loads the session cart and runs fn against it while holding the lock.
func (s *CartService) Update(sessionID string, fn func(*Cart)) error {
	if sessionID == "" {
		return ErrNoSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := LoadCart(s.Store, s.Products, SessionCartKey(sessionID))
	c.open = s.drawer[sessionID]
	fn(c)
	if c.open {
		s.drawer[sessionID] = true
	} else {
		delete(s.drawer, sessionID)
	}
	return nil
}
