package entities

import "time"

// AccessCodeRole is the role granted to whoever logs in with the code.

type AccessCodeRole string

const (
	AccessCodeRoleUser  AccessCodeRole = "user"
	AccessCodeRoleAdmin AccessCodeRole = "admin"
)

// AccessCodeTTL is the fixed validity window of a freshly issued code.
const AccessCodeTTL = 7 * 24 * time.Hour

// AccessCode is a single-use, time-limited login credential.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (code-index): code
//
// Invariant: once Used is true the code is never accepted again; the
// consume path flips the flag with a conditional update so two racing
// consumers cannot both win.
type AccessCode struct {
	ID        string         `json:"id"`
	Code      string         `json:"code"`
	Email     string         `json:"email"`
	Name      string         `json:"name"`
	Role      AccessCodeRole `json:"role"`
	Used      bool           `json:"used"`
	UsedAt    *time.Time     `json:"used_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// Expired reports whether the code is past its validity window.
func (a AccessCode) Expired(now time.Time) bool {
	return !now.Before(a.ExpiresAt)
}
