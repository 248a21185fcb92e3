package response

import (
	"time"

	"studio_quotation/internal/domain/entities"
)

type QuotationResponse struct {
	ID         string `json:"id"`
	ClientID   string `json:"client_id"`
	ClientCode string `json:"client_code"`
	ProjectID  string `json:"project_id"`

	SelectedAddOns []AddOnResponse `json:"selected_add_ons,omitempty"`
	AppliedCoupon  *CouponResponse `json:"applied_coupon,omitempty"`

	BasePrice      float64 `json:"base_price"`
	AddOnsTotal    float64 `json:"add_ons_total"`
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalPrice     float64 `json:"final_price"`

	BaseDeliveryTime   int `json:"base_delivery_time"`
	AddOnsDeliveryTime int `json:"add_ons_delivery_time"`
	FinalDeliveryTime  int `json:"final_delivery_time"`

	ClientConfirmed bool       `json:"client_confirmed"`
	ConfirmedAt     *time.Time `json:"confirmed_at,omitempty"`
	RejectedReason  string     `json:"rejected_reason,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	var coupon *CouponResponse
	if q.AppliedCoupon != nil {
		cr := FromCoupon(*q.AppliedCoupon)
		coupon = &cr
	}
	return QuotationResponse{
		ID:         q.ID,
		ClientID:   q.ClientID,
		ClientCode: q.ClientCode,
		ProjectID:  q.ProjectID,

		SelectedAddOns: fromAddOns(q.SelectedAddOns),
		AppliedCoupon:  coupon,

		BasePrice:      RoundMoney(q.BasePrice),
		AddOnsTotal:    RoundMoney(q.AddOnsTotal),
		Subtotal:       RoundMoney(q.Subtotal),
		DiscountAmount: RoundMoney(q.DiscountAmount),
		FinalPrice:     RoundMoney(q.FinalPrice),

		BaseDeliveryTime:   q.BaseDeliveryTime,
		AddOnsDeliveryTime: q.AddOnsDeliveryTime,
		FinalDeliveryTime:  q.FinalDeliveryTime,

		ClientConfirmed: q.ClientConfirmed,
		ConfirmedAt:     q.ConfirmedAt,
		RejectedReason:  q.RejectedReason,

		Status:    string(q.Status),
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func FromQuotations(qs []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuotation(q))
	}
	return out
}
