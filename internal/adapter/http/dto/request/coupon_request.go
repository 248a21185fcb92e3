package request

import (
	"time"

	"studio_quotation/internal/domain/entities"
)

type CreateCouponRequest struct {
	Code           string    `json:"code" binding:"required"`
	Description    string    `json:"description"`
	Discount       float64   `json:"discount" binding:"required"`
	DiscountType   string    `json:"discount_type" binding:"required"`
	MinOrderAmount float64   `json:"min_order_amount"`
	ValidUntil     time.Time `json:"valid_until" binding:"required"`
	UsageLimit     int       `json:"usage_limit" binding:"required"`
	Active         *bool     `json:"active"`
}

// ToEntity builds the coupon the use case validates. Coupons are active
// unless the payload explicitly disables them.
func (r CreateCouponRequest) ToEntity() entities.Coupon {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return entities.Coupon{
		Code:           r.Code,
		Description:    r.Description,
		Discount:       r.Discount,
		DiscountType:   entities.DiscountType(r.DiscountType),
		MinOrderAmount: r.MinOrderAmount,
		ValidUntil:     r.ValidUntil,
		UsageLimit:     r.UsageLimit,
		Active:         active,
	}
}

type ValidateCouponRequest struct {
	Code        string  `json:"code" binding:"required"`
	OrderAmount float64 `json:"order_amount" binding:"required"`
}
