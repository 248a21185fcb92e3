package request

import (
	"strings"

	"studio_quotation/internal/domain/entities"
)

type IssueAccessCodeRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role"`
}

// ResolveRole defaults to the user role when the payload omits it; unknown
// values pass through so the use case can reject them.
func (r IssueAccessCodeRequest) ResolveRole() entities.AccessCodeRole {
	role := strings.TrimSpace(strings.ToLower(r.Role))
	if role == "" {
		return entities.AccessCodeRoleUser
	}
	return entities.AccessCodeRole(role)
}

type ValidateAccessCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

type ConsumeAccessCodeRequest struct {
	CodeID string `json:"code_id" binding:"required"`
}
