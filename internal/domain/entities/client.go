package entities

import "time"

// ClientStatus tracks whether a client engagement is still open.
//
// Archived clients are read-only: no new setups, quotations or access
// codes may be created against them.

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusArchived ClientStatus = "archived"
)

// Client is the operator-owned identity record for a prospect.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_code-index): client_code
type Client struct {
	ID         string       `json:"id"`
	ClientCode string       `json:"client_code"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	AccessCode string       `json:"access_code,omitempty"`
	Status     ClientStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
