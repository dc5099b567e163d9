// Package pricing derives checkout totals from cart contents. All
// amounts are whole Naira and every computation is exact integer
// arithmetic; nothing here touches floating point.
package pricing

import "github.com/vendoura/vendoura/internal/cart"

// Default checkout rates: flat 2000 Naira shipping and 7.5% VAT.
const (
	DefaultShippingFee = 2000
	DefaultTaxPermille = 75
)

// Rates parameterizes the total calculation. Tax is expressed in
// permille so the half-up rounding stays in integer arithmetic.
type Rates struct {
	ShippingFee int
	TaxPermille int
}

// DefaultRates returns the standard marketplace rates.
func DefaultRates() Rates {
	return Rates{ShippingFee: DefaultShippingFee, TaxPermille: DefaultTaxPermille}
}

// Totals is the full checkout breakdown.
type Totals struct {
	Subtotal int
	Shipping int
	Tax      int
	Total    int
}

// Compute recomputes the breakdown from scratch. Shipping applies only
// when the cart is non-empty; tax rounds half-up on the fractional
// remainder of subtotal*rate.
func Compute(lines []cart.Line, r Rates) Totals {
	subtotal := 0
	for _, l := range lines {
		subtotal += l.Total()
	}

	shipping := 0
	if subtotal > 0 {
		shipping = r.ShippingFee
	}

	tax := roundPermille(subtotal, r.TaxPermille)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// roundPermille computes amount*permille/1000 rounded half-up.
func roundPermille(amount, permille int) int {
	return (amount*permille + 500) / 1000
}
