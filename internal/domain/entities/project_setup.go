package entities

import "time"

// AddOn is a priced catalog entry attached to a project setup.
// Required add-ons are part of every quotation built from the setup.
type AddOn struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	Price             float64 `json:"price"`
	ExtraDeliveryTime int     `json:"extra_delivery_time"`
	Category          string  `json:"category,omitempty"`
	Required          bool    `json:"required"`
}

// ProjectSetup is the priced template a quotation is composed from.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// A setup becomes immutable once a quotation has been confirmed against
// it; later changes require a new setup.
type ProjectSetup struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"client_id"`
	ClientCode   string    `json:"client_code"`
	ProjectName  string    `json:"project_name"`
	Description  string    `json:"description,omitempty"`
	Features     []string  `json:"features,omitempty"`
	BasePrice    float64   `json:"base_price"`
	BaseDelivery int       `json:"base_delivery"`
	AddOns       []AddOn   `json:"add_ons,omitempty"`
	CouponCodes  []string  `json:"coupon_codes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AddOnByID looks up a catalog entry by id.
func (p ProjectSetup) AddOnByID(id string) (AddOn, bool) {
	for _, a := range p.AddOns {
		if a.ID == id {
			return a, true
		}
	}
	return AddOn{}, false
}
