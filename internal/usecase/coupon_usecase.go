package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"studio_quotation/internal/domain/entities"
	"studio_quotation/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCouponCode  = errors.New("invalid coupon code")
	ErrInvalidCouponValue = errors.New("invalid coupon value")
	ErrCouponExists       = errors.New("coupon code already exists")
	ErrCouponNotFound     = errors.New("coupon not found")
	ErrCouponInactive     = errors.New("coupon inactive")
	ErrCouponExpired      = errors.New("coupon expired")
	ErrCouponBelowMinimum = errors.New("order amount below coupon minimum")
	ErrCouponLimitReached = errors.New("coupon usage limit reached")
)

// ICouponUseCase validates coupons against an order amount and records
// usage with a conditional increment.
//
// Validate applies its checks in a fixed priority order and reports only
// the first failure: not found, inactive, expired, below minimum order,
// usage limit reached.

type ICouponUseCase interface {
	Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error)
	GetByCode(ctx context.Context, code string) (entities.Coupon, error)
	Validate(ctx context.Context, code string, orderAmount float64, now time.Time) (entities.Coupon, error)
	RecordUsage(ctx context.Context, couponID string) (entities.Coupon, error)
}

type CouponUseCase struct {
	repo interfaces.ICouponRepository
}

var _ ICouponUseCase = (*CouponUseCase)(nil)

func NewCouponUseCase(repo interfaces.ICouponRepository) *CouponUseCase {
	return &CouponUseCase{repo: repo}
}

func (u *CouponUseCase) Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error) {
	c.Code = entities.NormalizeCouponCode(c.Code)
	if c.Code == "" {
		return entities.Coupon{}, ErrInvalidCouponCode
	}
	if c.Discount <= 0 || c.MinOrderAmount < 0 || c.UsageLimit <= 0 {
		return entities.Coupon{}, ErrInvalidCouponValue
	}
	if c.DiscountType != entities.DiscountTypePercentage && c.DiscountType != entities.DiscountTypeFixed {
		return entities.Coupon{}, entities.ErrUnknownDiscountType
	}
	if c.DiscountType == entities.DiscountTypePercentage && c.Discount > 100 {
		return entities.Coupon{}, ErrInvalidCouponValue
	}

	if existing, err := u.repo.GetByCode(ctx, c.Code); err != nil {
		return entities.Coupon{}, err
	} else if existing.ID != "" {
		return entities.Coupon{}, ErrCouponExists
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.UsedCount = 0
	c.CreatedAt = now
	c.UpdatedAt = now

	// The storage write is conditional on the code being unused, so two
	// concurrent creates that both pass the read above cannot both land.
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Coupon{}, ErrCouponExists
		}
		return entities.Coupon{}, err
	}
	return created, nil
}

func (u *CouponUseCase) GetByCode(ctx context.Context, code string) (entities.Coupon, error) {
	code = entities.NormalizeCouponCode(code)
	if code == "" {
		return entities.Coupon{}, ErrInvalidCouponCode
	}

	c, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.Coupon{}, err
	}
	if c.ID == "" {
		return entities.Coupon{}, ErrCouponNotFound
	}
	return c, nil
}

func (u *CouponUseCase) Validate(ctx context.Context, code string, orderAmount float64, now time.Time) (entities.Coupon, error) {
	c, err := u.GetByCode(ctx, code)
	if err != nil {
		return entities.Coupon{}, err
	}
	if !c.Active {
		return entities.Coupon{}, ErrCouponInactive
	}
	if c.Expired(now) {
		return entities.Coupon{}, ErrCouponExpired
	}
	if orderAmount < c.MinOrderAmount {
		return entities.Coupon{}, ErrCouponBelowMinimum
	}
	if c.UsageExhausted() {
		return entities.Coupon{}, ErrCouponLimitReached
	}
	return c, nil
}

// RecordUsage increments the coupon's used count. The increment is
// conditional on used_count < usage_limit at the storage boundary, which
// defends against two validations passing before either records usage:
// the second increment fails with ErrCouponLimitReached.
func (u *CouponUseCase) RecordUsage(ctx context.Context, couponID string) (entities.Coupon, error) {
	couponID = strings.TrimSpace(couponID)
	if couponID == "" {
		return entities.Coupon{}, ErrInvalidCouponCode
	}

	c, err := u.repo.IncrementUsage(ctx, couponID)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Coupon{}, ErrCouponLimitReached
		}
		return entities.Coupon{}, err
	}
	return c, nil
}
