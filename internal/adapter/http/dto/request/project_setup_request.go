package request

import (
	"studio_quotation/internal/domain/entities"
)

type AddOnRequest struct {
	ID                string  `json:"id"`
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description"`
	Price             float64 `json:"price"`
	ExtraDeliveryTime int     `json:"extra_delivery_time"`
	Category          string  `json:"category"`
	Required          bool    `json:"required"`
}

type CreateProjectSetupRequest struct {
	ClientID     string         `json:"client_id" binding:"required"`
	ProjectName  string         `json:"project_name" binding:"required"`
	Description  string         `json:"description"`
	Features     []string       `json:"features"`
	BasePrice    float64        `json:"base_price" binding:"required"`
	BaseDelivery int            `json:"base_delivery" binding:"required"`
	AddOns       []AddOnRequest `json:"add_ons"`
	CouponCodes  []string       `json:"coupon_codes"`
}

func (r CreateProjectSetupRequest) ToEntity() entities.ProjectSetup {
	addOns := make([]entities.AddOn, 0, len(r.AddOns))
	for _, a := range r.AddOns {
		addOns = append(addOns, entities.AddOn{
			ID:                a.ID,
			Name:              a.Name,
			Description:       a.Description,
			Price:             a.Price,
			ExtraDeliveryTime: a.ExtraDeliveryTime,
			Category:          a.Category,
			Required:          a.Required,
		})
	}
	return entities.ProjectSetup{
		ClientID:     r.ClientID,
		ProjectName:  r.ProjectName,
		Description:  r.Description,
		Features:     r.Features,
		BasePrice:    r.BasePrice,
		BaseDelivery: r.BaseDelivery,
		AddOns:       addOns,
		CouponCodes:  r.CouponCodes,
	}
}
