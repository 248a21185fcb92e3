package response

import (
	"time"

	"studio_quotation/internal/domain/entities"
)

type AddOnResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	Price             float64 `json:"price"`
	ExtraDeliveryTime int     `json:"extra_delivery_time"`
	Category          string  `json:"category,omitempty"`
	Required          bool    `json:"required"`
}

func fromAddOns(addOns []entities.AddOn) []AddOnResponse {
	if len(addOns) == 0 {
		return nil
	}
	out := make([]AddOnResponse, 0, len(addOns))
	for _, a := range addOns {
		out = append(out, AddOnResponse{
			ID:                a.ID,
			Name:              a.Name,
			Description:       a.Description,
			Price:             RoundMoney(a.Price),
			ExtraDeliveryTime: a.ExtraDeliveryTime,
			Category:          a.Category,
			Required:          a.Required,
		})
	}
	return out
}

type ProjectSetupResponse struct {
	ID           string          `json:"id"`
	ClientID     string          `json:"client_id"`
	ClientCode   string          `json:"client_code"`
	ProjectName  string          `json:"project_name"`
	Description  string          `json:"description,omitempty"`
	Features     []string        `json:"features,omitempty"`
	BasePrice    float64         `json:"base_price"`
	BaseDelivery int             `json:"base_delivery"`
	AddOns       []AddOnResponse `json:"add_ons,omitempty"`
	CouponCodes  []string        `json:"coupon_codes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func FromProjectSetup(s entities.ProjectSetup) ProjectSetupResponse {
	return ProjectSetupResponse{
		ID:           s.ID,
		ClientID:     s.ClientID,
		ClientCode:   s.ClientCode,
		ProjectName:  s.ProjectName,
		Description:  s.Description,
		Features:     s.Features,
		BasePrice:    RoundMoney(s.BasePrice),
		BaseDelivery: s.BaseDelivery,
		AddOns:       fromAddOns(s.AddOns),
		CouponCodes:  s.CouponCodes,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
