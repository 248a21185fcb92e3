package response

import (
	"time"

	"studio_quotation/internal/domain/entities"
)

type ClientResponse struct {
	ID         string    `json:"id"`
	ClientCode string    `json:"client_code"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	AccessCode string    `json:"access_code,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:         c.ID,
		ClientCode: c.ClientCode,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		AccessCode: c.AccessCode,
		Status:     string(c.Status),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
