package entities

import "time"

// QuotationStatus represents the lifecycle of a quotation.
//
// Legal transitions:
//
//	draft -> pending_approval -> confirmed
//	pending_approval -> rejected
//
// confirmed and rejected are terminal. Transitions are applied with an
// expected-status conditional update so a simultaneous confirm and reject
// cannot both take effect.

type QuotationStatus string

const (
	QuotationStatusDraft           QuotationStatus = "draft"
	QuotationStatusPendingApproval QuotationStatus = "pending_approval"
	QuotationStatusConfirmed       QuotationStatus = "confirmed"
	QuotationStatusRejected        QuotationStatus = "rejected"
)

var quotationEdges = map[QuotationStatus][]QuotationStatus{
	QuotationStatusDraft:           {QuotationStatusPendingApproval},
	QuotationStatusPendingApproval: {QuotationStatusConfirmed, QuotationStatusRejected},
}

// CanTransitionTo reports whether the edge from -> to is legal.
func (from QuotationStatus) CanTransitionTo(to QuotationStatus) bool {
	for _, next := range quotationEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Quotation is a priced, dated offer composed by the client.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// client_code and project_id are denormalized for lookup without joins.
// A quotation is never mutated after reaching confirmed; its figures are
// copied verbatim into the RunningProject at confirmation time.
type Quotation struct {
	ID         string `json:"id"`
	ClientID   string `json:"client_id"`
	ClientCode string `json:"client_code"`
	ProjectID  string `json:"project_id"`

	SelectedAddOns []AddOn `json:"selected_add_ons,omitempty"`
	AppliedCoupon  *Coupon `json:"applied_coupon,omitempty"`

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

	Status    QuotationStatus `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
