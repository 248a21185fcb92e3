package interfaces

import (
	"context"

	"studio_quotation/internal/domain/entities"
)

// IAccessCodeRepository abstracts persistence for AccessCode.
//
// Consume must be a conditional update on the used flag, not a blind
// overwrite: of two racing consumers exactly one succeeds and the loser
// gets ErrConditionFailed.

type IAccessCodeRepository interface {
	Create(ctx context.Context, a entities.AccessCode) (entities.AccessCode, error)
	GetByID(ctx context.Context, id string) (entities.AccessCode, error)
	GetByCode(ctx context.Context, code string) (entities.AccessCode, error)
	Consume(ctx context.Context, id string) (entities.AccessCode, error)
	List(ctx context.Context) ([]entities.AccessCode, error)
	Delete(ctx context.Context, id string) error
}
