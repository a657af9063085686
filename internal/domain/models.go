package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryMen         Category = "men"
	CategoryWomen       Category = "women"
	CategoryAccessories Category = "accessories"
)

// Categories lists the shop departments in navigation order.
var Categories = []Category{CategoryMen, CategoryWomen, CategoryAccessories}

func (c Category) Valid() bool {
	switch c {
	case CategoryMen, CategoryWomen, CategoryAccessories:
		return true
	}
	return false
}

type ColorVariant struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"` // set only for sale items
	Images        []string         `json:"images"`
	Category      Category         `json:"category"`
	Subcategory   string           `json:"subcategory,omitempty"`
	Sizes         []string         `json:"sizes"`
	Colors        []ColorVariant   `json:"colors"`
	IsNew         bool             `json:"isNew,omitempty"`
	IsSale        bool             `json:"isSale,omitempty"`
	Rating        *float64         `json:"rating,omitempty"`
	ReviewCount   *int             `json:"reviewCount,omitempty"`
	SKU           string           `json:"sku"`
	InStock       bool             `json:"inStock"`
}

// Clone returns p with its own copies of every slice and pointer field.
func (p Product) Clone() Product {
	p.Images = slices.Clone(p.Images)
	p.Sizes = slices.Clone(p.Sizes)
	p.Colors = slices.Clone(p.Colors)
	if p.OriginalPrice != nil {
		op := *p.OriginalPrice
		p.OriginalPrice = &op
	}
	if p.Rating != nil {
		r := *p.Rating
		p.Rating = &r
	}
	if p.ReviewCount != nil {
		n := *p.ReviewCount
		p.ReviewCount = &n
	}
	return p
}

// CloneProducts deep-copies ps; the result is never nil.
func CloneProducts(ps []Product) []Product {
	out := make([]Product, len(ps))
	for i, p := range ps {
		out[i] = p.Clone()
	}
	return out
}

func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// HasDiscount reports whether a strike-through original price should be shown.
func (p Product) HasDiscount() bool {
	return p.OriginalPrice != nil && p.OriginalPrice.GreaterThan(p.Price)
}

func (p Product) OffersSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

func (p Product) OffersColor(name string) bool {
	for _, c := range p.Colors {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (p Product) RatingOrZero() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

// LineItem is one (product, size, color) selection in a cart.
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size"`
	Color    string  `json:"color"`
}

func (li LineItem) Key() ItemKey {
	return ItemKey{ProductID: li.Product.ID, Size: li.Size, Color: li.Color}
}

func (li LineItem) LineTotal() decimal.Decimal {
	return li.Product.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// ItemKey is the identity of a line item; two additions with the same key merge.
type ItemKey struct {
	ProductID string
	Size      string
	Color     string
}

type BlogPost struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Date     string `json:"date"` // YYYY-MM-DD
	Category string `json:"category"`
	Image    string `json:"image"`
	ReadTime string `json:"readTime"`
}

type FAQEntry struct {
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
