package interfaces

import (
	"context"

	"studio_quotation/internal/domain/entities"
)

// InvitationDetails is the payload handed to the notification layer when
// a client is invited. The engine never formats or sends email itself.
type InvitationDetails struct {
	ClientID    string `json:"client_id"`
	ClientCode  string `json:"client_code"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	AccessCode  string `json:"access_code"`
	ExpiresAt   string `json:"expires_at"`
}

// INotifier abstracts the outbound notification layer. Implementations
// must tolerate being called after the triggering mutation has already
// been persisted; a notification failure never rolls the mutation back.

type INotifier interface {
	NotifyInvitation(ctx context.Context, inv InvitationDetails) error
	NotifyQuotationDecision(ctx context.Context, q entities.Quotation) error
}
