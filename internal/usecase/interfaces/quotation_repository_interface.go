package interfaces

import (
	"context"
	"time"

	"studio_quotation/internal/domain/entities"
)

// IQuotationRepository abstracts persistence for Quotation.
//
// UpdateStatus is an expected-state compare-and-swap: the write only
// applies when the stored status still equals from, so simultaneous
// confirm and reject calls cannot both take effect. The loser gets
// ErrConditionFailed.

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Quotation, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.QuotationStatus, update QuotationStatusUpdate) (entities.Quotation, error)
}

// QuotationStatusUpdate carries the extra fields written alongside a
// status transition.
type QuotationStatusUpdate struct {
	ClientConfirmed bool
	ConfirmedAt     *time.Time
	RejectedReason  string
}
