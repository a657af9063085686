package seed

import (
	"github.com/shopspring/decimal"

	"noiratelier/internal/domain"
)

// CartStorageKey names the storage slot holding a persisted cart.
const CartStorageKey = "noir_atelier_cart"

// Products returns a fresh copy of the launch catalog in display order.
func Products() []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

func money(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func rating(v float64) *float64 { return &v }

func reviews(n int) *int { return &n }

var products = []domain.Product{
	{
		ID:            "1",
		Name:          "Wool Cashmere Overcoat",
		Description:   "Crafted from the finest Italian wool and cashmere blend, this overcoat embodies timeless sophistication. Features a relaxed silhouette with dropped shoulders, concealed button closure, and full satin lining.",
		Price:         decimal.NewFromInt(1290),
		OriginalPrice: money(1590),
		Images: []string{
			"https://images.unsplash.com/photo-1544022613-e87ca75a784a?w=800&q=80",
			"https://images.unsplash.com/photo-1591047139829-d91aecb6caea?w=800&q=80",
			"https://images.unsplash.com/photo-1594938298603-c8148c4dae35?w=800&q=80",
		},
		Category:    domain.CategoryMen,
		Subcategory: "outerwear",
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Colors: []domain.ColorVariant{
			{Name: "Charcoal", Hex: "#36454F"},
			{Name: "Camel", Hex: "#C19A6B"},
			{Name: "Navy", Hex: "#1B3A5F"},
		},
		IsSale:      true,
		Rating:      rating(4.9),
		ReviewCount: reviews(124),
		SKU:         "NOIR-M-001",
		InStock:     true,
	},
	{
		ID:          "2",
		Name:        "Silk Blend Turtleneck",
		Description: "An elevated essential in luxurious silk-cashmere blend. The refined turtleneck silhouette offers understated elegance for any occasion.",
		Price:       decimal.NewFromInt(380),
		Images: []string{
			"https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=800&q=80",
			"https://images.unsplash.com/photo-1620799140408-edc6dcb6d633?w=800&q=80",
		},
		Category:    domain.CategoryWomen,
		Subcategory: "knitwear",
		Sizes:       []string{"XS", "S", "M", "L"},
		Colors: []domain.ColorVariant{
			{Name: "Ivory", Hex: "#FFFFF0"},
			{Name: "Black", Hex: "#141414"},
			{Name: "Mocha", Hex: "#967969"},
		},
		IsNew:       true,
		Rating:      rating(4.8),
		ReviewCount: reviews(89),
		SKU:         "NOIR-W-002",
		InStock:     true,
	},
	{
		ID:          "3",
		Name:        "Structured Wool Blazer",
		Description: "A modern interpretation of classic tailoring. This single-breasted blazer features sharp shoulders, nipped waist, and premium wool from renowned Italian mills.",
		Price:       decimal.NewFromInt(890),
		Images: []string{
			"https://images.unsplash.com/photo-1592878904946-b3cd8ae243d0?w=800&q=80",
			"https://images.unsplash.com/photo-1594938298603-c8148c4dae35?w=800&q=80",
			"https://images.unsplash.com/photo-1507679799987-c73779587ccf?w=800&q=80",
		},
		Category:    domain.CategoryWomen,
		Subcategory: "blazers",
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Colors: []domain.ColorVariant{
			{Name: "Charcoal", Hex: "#36454F"},
			{Name: "Black", Hex: "#141414"},
		},
		Rating:      rating(4.7),
		ReviewCount: reviews(156),
		SKU:         "NOIR-W-003",
		InStock:     true,
	},
	{
		ID:          "4",
		Name:        "Merino Crew Neck Sweater",
		Description: "The perfect foundation piece in ultra-fine merino wool. Lightweight yet warm, with exceptional softness and natural breathability.",
		Price:       decimal.NewFromInt(245),
		Images: []string{
			"https://images.unsplash.com/photo-1618354691373-d851c5c3a990?w=800&q=80",
			"https://images.unsplash.com/photo-1621072156002-e2fccdc0b176?w=800&q=80",
		},
		Category:    domain.CategoryMen,
		Subcategory: "knitwear",
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors: []domain.ColorVariant{
			{Name: "Navy", Hex: "#1B3A5F"},
			{Name: "Grey", Hex: "#808080"},
			{Name: "Burgundy", Hex: "#800020"},
		},
		IsNew:       true,
		Rating:      rating(4.6),
		ReviewCount: reviews(203),
		SKU:         "NOIR-M-004",
		InStock:     true,
	},
	{
		ID:          "5",
		Name:        "Wide Leg Tailored Trousers",
		Description: "Effortlessly elegant trousers with a fluid wide-leg silhouette. Cut from premium wool with a hint of stretch for all-day comfort.",
		Price:       decimal.NewFromInt(420),
		Images: []string{
			"https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=800&q=80",
			"https://images.unsplash.com/photo-1506629082955-511b1aa562c8?w=800&q=80",
		},
		Category:    domain.CategoryWomen,
		Subcategory: "trousers",
		Sizes:       []string{"XS", "S", "M", "L"},
		Colors: []domain.ColorVariant{
			{Name: "Black", Hex: "#141414"},
			{Name: "Cream", Hex: "#FFFDD0"},
		},
		Rating:      rating(4.8),
		ReviewCount: reviews(112),
		SKU:         "NOIR-W-005",
		InStock:     true,
	},
	{
		ID:          "6",
		Name:        "Italian Leather Belt",
		Description: "Handcrafted in Italy from full-grain vegetable-tanned leather. Features a minimalist brushed metal buckle for refined sophistication.",
		Price:       decimal.NewFromInt(165),
		Images: []string{
			"https://images.unsplash.com/photo-1624222247344-550fb60583dc?w=800&q=80",
			"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800&q=80",
		},
		Category:    domain.CategoryAccessories,
		Subcategory: "belts",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors: []domain.ColorVariant{
			{Name: "Tan", Hex: "#D2B48C"},
			{Name: "Black", Hex: "#141414"},
		},
		Rating:      rating(4.9),
		ReviewCount: reviews(78),
		SKU:         "NOIR-A-006",
		InStock:     true,
	},
	{
		ID:          "7",
		Name:        "Cashmere Scarf",
		Description: "Luxuriously soft cashmere scarf in a generous size. Perfect for wrapping or draping, finished with delicate fringe detailing.",
		Price:       decimal.NewFromInt(295),
		Images: []string{
			"https://images.unsplash.com/photo-1520903920243-00d872a2d1c9?w=800&q=80",
			"https://images.unsplash.com/photo-1601924994987-69e26d50dc26?w=800&q=80",
		},
		Category:    domain.CategoryAccessories,
		Subcategory: "scarves",
		Sizes:       []string{"One Size"},
		Colors: []domain.ColorVariant{
			{Name: "Camel", Hex: "#C19A6B"},
			{Name: "Grey", Hex: "#808080"},
			{Name: "Navy", Hex: "#1B3A5F"},
		},
		IsNew:       true,
		Rating:      rating(5.0),
		ReviewCount: reviews(67),
		SKU:         "NOIR-A-007",
		InStock:     true,
	},
	{
		ID:          "8",
		Name:        "Slim Fit Cotton Shirt",
		Description: "Impeccably crafted from premium Egyptian cotton. Features a modern slim fit, spread collar, and mother-of-pearl buttons.",
		Price:       decimal.NewFromInt(185),
		Images: []string{
			"https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=800&q=80",
			"https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=800&q=80",
		},
		Category:    domain.CategoryMen,
		Subcategory: "shirts",
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors: []domain.ColorVariant{
			{Name: "White", Hex: "#FFFFFF"},
			{Name: "Light Blue", Hex: "#ADD8E6"},
			{Name: "Pink", Hex: "#FFB6C1"},
		},
		Rating:      rating(4.7),
		ReviewCount: reviews(234),
		SKU:         "NOIR-M-008",
		InStock:     true,
	},
	{
		ID:          "9",
		Name:        "Pleated Midi Skirt",
		Description: "Elegant pleated skirt in fluid crepe fabric. The midi length and A-line silhouette create a timeless, feminine shape.",
		Price:       decimal.NewFromInt(340),
		Images: []string{
			"https://images.unsplash.com/photo-1583496661160-fb5886a0ujc0?w=800&q=80",
			"https://images.unsplash.com/photo-1582142839970-2b9e04b60f65?w=800&q=80",
		},
		Category:    domain.CategoryWomen,
		Subcategory: "skirts",
		Sizes:       []string{"XS", "S", "M", "L"},
		Colors: []domain.ColorVariant{
			{Name: "Black", Hex: "#141414"},
			{Name: "Burgundy", Hex: "#800020"},
		},
		Rating:      rating(4.5),
		ReviewCount: reviews(98),
		SKU:         "NOIR-W-009",
		InStock:     true,
	},
	{
		ID:            "10",
		Name:          "Leather Weekender Bag",
		Description:   "Handcrafted from premium full-grain leather. Spacious interior with thoughtful compartments for effortless travel.",
		Price:         decimal.NewFromInt(890),
		OriginalPrice: money(1190),
		Images: []string{
			"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800&q=80",
			"https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=800&q=80",
		},
		Category:    domain.CategoryAccessories,
		Subcategory: "bags",
		Sizes:       []string{"One Size"},
		Colors: []domain.ColorVariant{
			{Name: "Cognac", Hex: "#9A463D"},
			{Name: "Black", Hex: "#141414"},
		},
		IsSale:      true,
		Rating:      rating(4.9),
		ReviewCount: reviews(45),
		SKU:         "NOIR-A-010",
		InStock:     true,
	},
	{
		ID:          "11",
		Name:        "Double-Breasted Wool Coat",
		Description: "A statement piece in luxurious Italian wool. The double-breasted silhouette with peak lapels exudes confidence and refinement.",
		Price:       decimal.NewFromInt(1490),
		Images: []string{
			"https://images.unsplash.com/photo-1539533018447-63fcce2678e3?w=800&q=80",
			"https://images.unsplash.com/photo-1544022613-e87ca75a784a?w=800&q=80",
		},
		Category:    domain.CategoryMen,
		Subcategory: "outerwear",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors: []domain.ColorVariant{
			{Name: "Navy", Hex: "#1B3A5F"},
			{Name: "Charcoal", Hex: "#36454F"},
		},
		IsNew:       true,
		Rating:      rating(4.8),
		ReviewCount: reviews(87),
		SKU:         "NOIR-M-011",
		InStock:     true,
	},
	{
		ID:          "12",
		Name:        "Silk Midi Dress",
		Description: "Effortlessly elegant in fluid silk crepe. The bias-cut silhouette drapes beautifully, with delicate spaghetti straps.",
		Price:       decimal.NewFromInt(680),
		Images: []string{
			"https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=800&q=80",
			"https://images.unsplash.com/photo-1566174053879-31528523f8ae?w=800&q=80",
		},
		Category:    domain.CategoryWomen,
		Subcategory: "dresses",
		Sizes:       []string{"XS", "S", "M", "L"},
		Colors: []domain.ColorVariant{
			{Name: "Champagne", Hex: "#F7E7CE"},
			{Name: "Black", Hex: "#141414"},
			{Name: "Emerald", Hex: "#50C878"},
		},
		Rating:      rating(4.9),
		ReviewCount: reviews(134),
		SKU:         "NOIR-W-012",
		InStock:     true,
	},
}
