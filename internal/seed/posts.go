package seed

import "noiratelier/internal/domain"

// Posts returns the editorial posts, newest first.
func Posts() []domain.BlogPost {
	out := make([]domain.BlogPost, len(posts))
	copy(out, posts)
	return out
}

var posts = []domain.BlogPost{
	{
		ID:      "1",
		Title:   "The Art of Timeless Dressing",
		Excerpt: "Discover the philosophy behind building a wardrobe that transcends seasons and trends.",
		Content: `<p>In a world of fast fashion and ever-changing trends, the concept of timeless dressing has never been more relevant. At NOIR ATELIER, we believe in creating pieces that not only stand the test of time in terms of quality but also in style.</p>
<h3>The Foundation of a Timeless Wardrobe</h3>
<p>Building a timeless wardrobe starts with understanding your personal style and investing in quality pieces that reflect it. It's about choosing garments that make you feel confident and comfortable, regardless of the occasion.</p>
<h3>Quality Over Quantity</h3>
<p>The key to timeless dressing lies in the details - the weight of the fabric, the precision of the cut, the craftsmanship of the construction. These elements transform a simple garment into a cherished piece that you'll reach for year after year.</p>
<h3>The Color Palette</h3>
<p>Neutral tones form the backbone of any timeless wardrobe. Black, white, navy, camel, and grey provide a versatile foundation that can be mixed and matched effortlessly. These colors never go out of style and always look sophisticated.</p>
<h3>Invest in the Classics</h3>
<p>Certain pieces have earned their place in the pantheon of timeless fashion: the perfectly tailored blazer, the crisp white shirt, the well-cut trousers, the little black dress. These are the building blocks upon which you can create countless looks.</p>`,
		Author:   "Isabella Laurent",
		Date:     "2024-01-15",
		Category: "Style Guide",
		Image:    "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?w=800&q=80",
		ReadTime: "5 min read",
	},
	{
		ID:      "2",
		Title:   "Sustainable Luxury: Our Commitment",
		Excerpt: "How we are redefining luxury fashion through sustainable practices and ethical production.",
		Content: `<p>Luxury and sustainability are not mutually exclusive. In fact, true luxury should be sustainable by definition - created with care, designed to last, and produced with respect for both people and planet.</p>
<h3>Our Materials</h3>
<p>We source only the finest natural fibers from certified suppliers who share our commitment to environmental responsibility. From organic cotton to responsibly sourced wool, every material is chosen with intention.</p>
<h3>Ethical Production</h3>
<p>Our garments are crafted in family-owned ateliers where skilled artisans are paid fair wages and work in safe conditions. We believe that luxury should never come at the cost of human dignity.</p>
<h3>Made to Last</h3>
<p>In an age of disposable fashion, we create pieces designed to be worn for years, even decades. Quality construction and classic design ensure that our garments remain relevant and beautiful over time.</p>`,
		Author:   "Marcus Chen",
		Date:     "2024-01-10",
		Category: "Sustainability",
		Image:    "https://images.unsplash.com/photo-1445205170230-053b83016050?w=800&q=80",
		ReadTime: "4 min read",
	},
	{
		ID:      "3",
		Title:   "Behind the Seams: The Craft of Tailoring",
		Excerpt: "A journey into the meticulous world of bespoke tailoring and what makes it special.",
		Content: `<p>There is something almost magical about a perfectly tailored garment. It fits not just your body, but your personality, your lifestyle, your aspirations. This is the art of tailoring - a craft that has been refined over centuries.</p>
<h3>The Process</h3>
<p>Creating a bespoke garment begins with understanding. Our master tailors take the time to learn about how you move, how you live, and how you want to feel. Every measurement is taken with precision, every detail considered with care.</p>
<h3>The Handwork</h3>
<p>While modern technology has its place, there are certain techniques that can only be done by hand. The canvas construction of a jacket, the hand-stitched lapels, the perfectly rolled collar - these are the marks of true craftsmanship.</p>
<h3>The Fittings</h3>
<p>A bespoke garment is built through a series of fittings, each one bringing the piece closer to perfection. It's a collaborative process between tailor and client, resulting in a garment that is uniquely yours.</p>`,
		Author:   "Sophie Anderson",
		Date:     "2024-01-05",
		Category: "Craftsmanship",
		Image:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800&q=80",
		ReadTime: "6 min read",
	},
	{
		ID:      "4",
		Title:   "The Essential Winter Edit",
		Excerpt: "Curated pieces to elevate your cold-weather wardrobe with sophistication and warmth.",
		Content: `<p>Winter dressing presents a unique challenge: how to stay warm without sacrificing style. Our winter edit brings together pieces that offer both exceptional warmth and impeccable design.</p>
<h3>The Perfect Coat</h3>
<p>A great coat is the foundation of winter style. Look for natural fibers like wool and cashmere that provide warmth without bulk. Our overcoats are designed with clean lines and thoughtful details that elevate any outfit.</p>
<h3>Layering Essentials</h3>
<p>The key to winter dressing is layering. Fine-knit merino sweaters, silk turtlenecks, and cashmere cardigans create warmth through layers while maintaining a refined silhouette.</p>
<h3>Accessorize with Intention</h3>
<p>Winter accessories are both functional and decorative. A cashmere scarf, leather gloves, and a quality bag complete your look while providing essential protection from the elements.</p>`,
		Author:   "Isabella Laurent",
		Date:     "2023-12-20",
		Category: "Seasonal",
		Image:    "https://images.unsplash.com/photo-1483985988355-763728e1935b?w=800&q=80",
		ReadTime: "4 min read",
	},
}
