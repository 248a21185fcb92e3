// Package pricing computes quotation totals. It is pure: no I/O, no
// clock, deterministic for any input.
package pricing

import (
	"errors"

	"studio_quotation/internal/domain/entities"
)

var (
	ErrNegativePrice    = errors.New("negative price")
	ErrNegativeDelivery = errors.New("negative delivery time")
)

// Subtotal is basePrice plus the sum of the selected add-on prices.
// Negative inputs are rejected, never clamped.
func Subtotal(basePrice float64, addOns []entities.AddOn) (float64, error) {
	if basePrice < 0 {
		return 0, ErrNegativePrice
	}
	total := basePrice
	for _, a := range addOns {
		if a.Price < 0 {
			return 0, ErrNegativePrice
		}
		total += a.Price
	}
	return total, nil
}

// AddOnsTotal sums the selected add-on prices.
func AddOnsTotal(addOns []entities.AddOn) (float64, error) {
	return Subtotal(0, addOns)
}

// FinalPrice applies a discount to a subtotal. The result is clamped at
// zero: no discount may produce a negative price.
func FinalPrice(subtotal, discount float64) float64 {
	final := subtotal - discount
	if final < 0 {
		return 0
	}
	return final
}

// DeliveryTime is baseDelivery (days) plus the add-ons' extra delivery
// time. Add-on impacts are additive and never reduce delivery time.
func DeliveryTime(baseDelivery int, addOns []entities.AddOn) (int, error) {
	if baseDelivery < 0 {
		return 0, ErrNegativeDelivery
	}
	total := baseDelivery
	for _, a := range addOns {
		if a.ExtraDeliveryTime < 0 {
			return 0, ErrNegativeDelivery
		}
		total += a.ExtraDeliveryTime
	}
	return total, nil
}
