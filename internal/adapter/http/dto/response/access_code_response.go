package response

import (
	"time"

	"studio_quotation/internal/domain/entities"
)

type AccessCodeResponse struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	Used      bool       `json:"used"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

func FromAccessCode(ac entities.AccessCode) AccessCodeResponse {
	return AccessCodeResponse{
		ID:        ac.ID,
		Code:      ac.Code,
		Email:     ac.Email,
		Name:      ac.Name,
		Role:      string(ac.Role),
		Used:      ac.Used,
		UsedAt:    ac.UsedAt,
		CreatedAt: ac.CreatedAt,
		ExpiresAt: ac.ExpiresAt,
	}
}

type CleanupResponse struct {
	Removed int `json:"removed"`
}
