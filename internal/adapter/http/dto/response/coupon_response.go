package response

import (
	"time"

	"studio_quotation/internal/domain/entities"
)

type CouponResponse struct {
	ID             string    `json:"id"`
	Code           string    `json:"code"`
	Description    string    `json:"description,omitempty"`
	Discount       float64   `json:"discount"`
	DiscountType   string    `json:"discount_type"`
	MinOrderAmount float64   `json:"min_order_amount"`
	ValidUntil     time.Time `json:"valid_until"`
	UsageLimit     int       `json:"usage_limit"`
	UsedCount      int       `json:"used_count"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromCoupon(c entities.Coupon) CouponResponse {
	return CouponResponse{
		ID:             c.ID,
		Code:           c.Code,
		Description:    c.Description,
		Discount:       c.Discount,
		DiscountType:   string(c.DiscountType),
		MinOrderAmount: c.MinOrderAmount,
		ValidUntil:     c.ValidUntil,
		UsageLimit:     c.UsageLimit,
		UsedCount:      c.UsedCount,
		Active:         c.Active,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// CouponValidationResponse echoes the discount a valid coupon would apply
// to the given order amount.
type CouponValidationResponse struct {
	Coupon         CouponResponse `json:"coupon"`
	OrderAmount    float64        `json:"order_amount"`
	DiscountAmount float64        `json:"discount_amount"`
}

func FromCouponValidation(c entities.Coupon, orderAmount, discount float64) CouponValidationResponse {
	return CouponValidationResponse{
		Coupon:         FromCoupon(c),
		OrderAmount:    RoundMoney(orderAmount),
		DiscountAmount: RoundMoney(discount),
	}
}
