package shared_models

import "math"

// TaxRate is the flat tax applied to every booking subtotal.
const TaxRate = 0.05

// RoundHalfUp rounds to the nearest integer with halves going up,
// matching the rounding the storefront applies to currency amounts.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Subtotal is the experience price times the requested quantity.
func Subtotal(price, quantity int) int {
	return price * quantity
}

// Taxes computes the tax line for a subtotal in whole rupees.
func Taxes(subtotal int) int {
	return RoundHalfUp(float64(subtotal) * TaxRate)
}

// Total combines the price lines. A discount larger than subtotal+taxes
// yields a negative total; callers decide what to do with that.
func Total(subtotal, taxes, discount int) int {
	return subtotal + taxes - discount
}
