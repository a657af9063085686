package seed

import "noiratelier/internal/domain"

// FAQ returns the help center entries in display order.
func FAQ() []domain.FAQEntry {
	out := make([]domain.FAQEntry, len(faq))
	copy(out, faq)
	return out
}

var faq = []domain.FAQEntry{
	{
		Category: "Ordering & Shipping",
		Question: "How long will it take to receive my order?",
		Answer:   "Orders are processed within 1-2 business days. Standard shipping typically takes 3-5 business days within the US, while international shipping can take 7-14 business days depending on the destination.",
	},
	{
		Category: "Ordering & Shipping",
		Question: "Do you ship internationally?",
		Answer:   "Yes, we ship to over 50 countries worldwide. International shipping rates and delivery times vary by location and are calculated at checkout.",
	},
	{
		Category: "Returns & Exchanges",
		Question: "What is your return policy?",
		Answer:   "We offer a 30-day return policy for all unworn items in their original condition with tags attached. Returns are free for US customers. International customers are responsible for return shipping costs.",
	},
	{
		Category: "Returns & Exchanges",
		Question: "How do I initiate a return?",
		Answer:   "To initiate a return, please visit our Returns Center and enter your order number and email address. You will receive a prepaid shipping label via email.",
	},
	{
		Category: "Product & Sizing",
		Question: "How do I find my size?",
		Answer:   `We provide detailed size guides on each product page. If you create an account, you can also use our specialized "Find My Fit" tool to get personalized size recommendations based on your measurements.`,
	},
	{
		Category: "Product & Sizing",
		Question: "Where are your clothes made?",
		Answer:   "Our garments are ethically manufactured in Portugal and Italy, working with factories that prioritize fair labor practices and sustainable production methods.",
	},
}
