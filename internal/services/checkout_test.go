package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCheckoutAddsTaxOnSubtotal(t *testing.T) {
	s := Checkout(CartTotals{Items: 1, Subtotal: d("340"), Shipping: d("25"), Total: d("365")}, DefaultTaxRate)

	assert.True(t, s.Tax.Equal(d("27.2")), "tax %s", s.Tax)
	assert.True(t, s.GrandTotal.Equal(d("392.2")), "grand %s", s.GrandTotal)
	assert.True(t, s.FreeShippingRemaining.Equal(d("160")))
}

func TestCheckoutRoundsTax(t *testing.T) {
	s := Checkout(CartTotals{Items: 1, Subtotal: d("99.99"), Shipping: d("25"), Total: d("124.99")}, d("0.0825"))
	// 99.99 * 0.0825 = 8.249175
	assert.Equal(t, "8.25", s.Tax.StringFixed(2))
	assert.True(t, s.Tax.Equal(d("8.25")))
}

func TestCheckoutFreeShipping(t *testing.T) {
	s := Checkout(CartTotals{Items: 1, Subtotal: d("1290"), Shipping: decimal.Zero, Total: d("1290")}, DefaultTaxRate)
	assert.True(t, s.FreeShippingRemaining.IsZero())
	assert.True(t, s.GrandTotal.Equal(d("1393.2")))
}

func TestCheckoutEmptyCart(t *testing.T) {
	s := Checkout(CartTotals{}, DefaultTaxRate)
	assert.True(t, s.Tax.IsZero())
	assert.True(t, s.GrandTotal.IsZero())
	assert.True(t, s.FreeShippingRemaining.IsZero())
}
