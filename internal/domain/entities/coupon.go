package entities

import (
	"errors"
	"strings"
	"time"
)

// DiscountType tags how a coupon's discount value is interpreted.
//
// Each tag has exactly one evaluation function below; DiscountFor
// dispatches on the tag and rejects unknown values, so a new type cannot
// be introduced without also defining its arithmetic.

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

var ErrUnknownDiscountType = errors.New("unknown discount type")

// Coupon is a named discount rule.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (code-index): code
//
// Invariant: used_count <= usage_limit, enforced by a conditional
// increment at the storage boundary.
type Coupon struct {
	ID             string       `json:"id"`
	Code           string       `json:"code"`
	Description    string       `json:"description,omitempty"`
	Discount       float64      `json:"discount"`
	DiscountType   DiscountType `json:"discount_type"`
	MinOrderAmount float64      `json:"min_order_amount"`
	ValidUntil     time.Time    `json:"valid_until"`
	UsageLimit     int          `json:"usage_limit"`
	UsedCount      int          `json:"used_count"`
	Active         bool         `json:"active"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// NormalizeCouponCode canonicalizes a coupon code for lookup and storage.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DiscountFor evaluates the discount this coupon grants on amount.
// The result is kept in full precision; rounding happens at display time.
func (c Coupon) DiscountFor(amount float64) (float64, error) {
	switch c.DiscountType {
	case DiscountTypePercentage:
		return percentageDiscount(c.Discount, amount), nil
	case DiscountTypeFixed:
		return fixedDiscount(c.Discount, amount), nil
	default:
		return 0, ErrUnknownDiscountType
	}
}

func percentageDiscount(discount, amount float64) float64 {
	return amount * discount / 100
}

// fixedDiscount caps the discount at the amount so it can never drive a
// total negative.
func fixedDiscount(discount, amount float64) float64 {
	if discount > amount {
		return amount
	}
	return discount
}

// Expired reports whether the coupon's validity window has closed.
// The window is half-open: a coupon is expired once now >= valid_until.
func (c Coupon) Expired(now time.Time) bool {
	return !now.Before(c.ValidUntil)
}

// UsageExhausted reports whether the usage cap has been reached.
func (c Coupon) UsageExhausted() bool {
	return c.UsedCount >= c.UsageLimit
}
