package interfaces

import (
	"context"

	"studio_quotation/internal/domain/entities"
)

// ICouponRepository abstracts persistence for Coupon.
//
// Create must be conditional on the code not being taken yet; a caller
// that loses the race for a code gets ErrConditionFailed. IncrementUsage
// must be a conditional increment guarded by used_count < usage_limit; a
// caller that loses the race against the cap gets ErrConditionFailed,
// never a count above the limit.

type ICouponRepository interface {
	Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error)
	GetByID(ctx context.Context, id string) (entities.Coupon, error)
	GetByCode(ctx context.Context, code string) (entities.Coupon, error)
	IncrementUsage(ctx context.Context, id string) (entities.Coupon, error)
}
