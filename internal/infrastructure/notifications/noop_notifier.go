package notifications

import (
	"context"

	"studio_quotation/internal/domain/entities"
	"studio_quotation/internal/usecase/interfaces"
)

// NoopNotifier discards notifications when NOTIFICATION_WEBHOOK_URL is
// not set.
type NoopNotifier struct{}

var _ interfaces.INotifier = (*NoopNotifier)(nil)

func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

func (n *NoopNotifier) NotifyInvitation(ctx context.Context, inv interfaces.InvitationDetails) error {
	return nil
}

func (n *NoopNotifier) NotifyQuotationDecision(ctx context.Context, q entities.Quotation) error {
	return nil
}
