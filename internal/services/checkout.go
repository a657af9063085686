package services

import (
	"github.com/shopspring/decimal"

	"noiratelier/internal/config"
)

var DefaultTaxRate = config.DefaultTaxRate

// CheckoutSummary is what the checkout page shows: the cart aggregates plus tax.
// Tax stays out of the cart totals themselves.
type CheckoutSummary struct {
	CartTotals
	TaxRate               decimal.Decimal `json:"taxRate"`
	Tax                   decimal.Decimal `json:"tax"`
	GrandTotal            decimal.Decimal `json:"grandTotal"`
	FreeShippingRemaining decimal.Decimal `json:"freeShippingRemaining"`
}

func Checkout(t CartTotals, taxRate decimal.Decimal) CheckoutSummary {
	tax := t.Subtotal.Mul(taxRate).Round(2)
	remaining := decimal.Zero
	if t.Items > 0 && !t.Shipping.IsZero() && t.Subtotal.LessThan(FreeShippingThreshold) {
		remaining = FreeShippingThreshold.Sub(t.Subtotal)
	}
	return CheckoutSummary{
		CartTotals:            t,
		TaxRate:               taxRate,
		Tax:                   tax,
		GrandTotal:            t.Total.Add(tax),
		FreeShippingRemaining: remaining,
	}
}
