package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"studio_quotation/internal/domain/entities"
	"studio_quotation/internal/usecase/interfaces"
	mock_interfaces "studio_quotation/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validCoupon(now time.Time) entities.Coupon {
	return entities.Coupon{
		ID:             "cp-1",
		Code:           "WELCOME10",
		Discount:       10,
		DiscountType:   entities.DiscountTypePercentage,
		MinOrderAmount: 100,
		ValidUntil:     now.Add(30 * 24 * time.Hour),
		UsageLimit:     100,
		UsedCount:      0,
		Active:         true,
	}
}

func TestCouponUseCase_Create(t *testing.T) {
	t.Run("empty code", func(t *testing.T) {
		uc := NewCouponUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Coupon{Code: "  "})
		if !errors.Is(err, ErrInvalidCouponCode) {
			t.Fatalf("expected ErrInvalidCouponCode, got %v", err)
		}
	})

	t.Run("percentage above 100", func(t *testing.T) {
		uc := NewCouponUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Coupon{
			Code: "BIG", Discount: 150, DiscountType: entities.DiscountTypePercentage, UsageLimit: 1,
		})
		if !errors.Is(err, ErrInvalidCouponValue) {
			t.Fatalf("expected ErrInvalidCouponValue, got %v", err)
		}
	})

	t.Run("unknown discount type", func(t *testing.T) {
		uc := NewCouponUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Coupon{
			Code: "ODD", Discount: 5, DiscountType: "store_credit", UsageLimit: 1,
		})
		if !errors.Is(err, entities.ErrUnknownDiscountType) {
			t.Fatalf("expected ErrUnknownDiscountType, got %v", err)
		}
	})

	t.Run("duplicate code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICouponRepository(ctrl)
		uc := NewCouponUseCase(repo)

		repo.EXPECT().GetByCode(gomock.Any(), "WELCOME10").Return(entities.Coupon{ID: "existing"}, nil)

		_, err := uc.Create(context.Background(), entities.Coupon{
			Code: "welcome10", Discount: 10, DiscountType: entities.DiscountTypePercentage, UsageLimit: 100,
		})
		if !errors.Is(err, ErrCouponExists) {
			t.Fatalf("expected ErrCouponExists, got %v", err)
		}
	})

	t.Run("losing the create race reports coupon exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICouponRepository(ctrl)
		uc := NewCouponUseCase(repo)

		// Both racers pass the read; the storage condition rejects the loser.
		repo.EXPECT().GetByCode(gomock.Any(), "WELCOME10").Return(entities.Coupon{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Coupon{}, interfaces.ErrConditionFailed)

		_, err := uc.Create(context.Background(), entities.Coupon{
			Code: "WELCOME10", Discount: 10, DiscountType: entities.DiscountTypePercentage, UsageLimit: 100,
		})
		if !errors.Is(err, ErrCouponExists) {
			t.Fatalf("expected ErrCouponExists, got %v", err)
		}
	})

	t.Run("create success normalizes the code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICouponRepository(ctrl)
		uc := NewCouponUseCase(repo)

		repo.EXPECT().GetByCode(gomock.Any(), "WELCOME10").Return(entities.Coupon{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Coupon) (entities.Coupon, error) {
				if c.Code != "WELCOME10" {
					t.Fatalf("expected normalized code, got %q", c.Code)
				}
				if c.ID == "" {
					t.Fatal("expected generated id")
				}
				return c, nil
			})

		_, err := uc.Create(context.Background(), entities.Coupon{
			Code: " welcome10 ", Discount: 10, DiscountType: entities.DiscountTypePercentage, UsageLimit: 100, Active: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCouponUseCase_Validate(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	run := func(t *testing.T, c entities.Coupon, orderAmount float64, wantErr error) {
		t.Helper()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICouponRepository(ctrl)
		uc := NewCouponUseCase(repo)

		repo.EXPECT().GetByCode(gomock.Any(), "WELCOME10").Return(c, nil)

		_, err := uc.Validate(context.Background(), "WELCOME10", orderAmount, now)
		if wantErr == nil {
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			return
		}
		if !errors.Is(err, wantErr) {
			t.Fatalf("expected %v, got %v", wantErr, err)
		}
	}

	t.Run("not found", func(t *testing.T) {
		run(t, entities.Coupon{}, 500, ErrCouponNotFound)
	})

	t.Run("inactive beats expired", func(t *testing.T) {
		c := validCoupon(now)
		c.Active = false
		c.ValidUntil = now.Add(-time.Hour)
		run(t, c, 500, ErrCouponInactive)
	})

	t.Run("expired beats below minimum", func(t *testing.T) {
		c := validCoupon(now)
		c.ValidUntil = now.Add(-time.Hour)
		run(t, c, 10, ErrCouponExpired)
	})

	t.Run("below minimum beats limit", func(t *testing.T) {
		c := validCoupon(now)
		c.UsedCount = c.UsageLimit
		run(t, c, 10, ErrCouponBelowMinimum)
	})

	t.Run("limit reached", func(t *testing.T) {
		c := validCoupon(now)
		c.UsedCount = c.UsageLimit
		run(t, c, 500, ErrCouponLimitReached)
	})

	t.Run("valid", func(t *testing.T) {
		run(t, validCoupon(now), 500, nil)
	})
}

func TestCouponUseCase_RecordUsage(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICouponRepository(ctrl)
		uc := NewCouponUseCase(repo)

		repo.EXPECT().IncrementUsage(gomock.Any(), "cp-1").Return(entities.Coupon{ID: "cp-1", UsedCount: 1}, nil)

		got, err := uc.RecordUsage(context.Background(), "cp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.UsedCount != 1 {
			t.Fatalf("expected used count 1, got %d", got.UsedCount)
		}
	})

	t.Run("losing the cap race reports limit reached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICouponRepository(ctrl)
		uc := NewCouponUseCase(repo)

		repo.EXPECT().IncrementUsage(gomock.Any(), "cp-1").Return(entities.Coupon{}, interfaces.ErrConditionFailed)

		_, err := uc.RecordUsage(context.Background(), "cp-1")
		if !errors.Is(err, ErrCouponLimitReached) {
			t.Fatalf("expected ErrCouponLimitReached, got %v", err)
		}
	})
}
