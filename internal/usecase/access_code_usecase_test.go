package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"studio_quotation/internal/domain/entities"
	"studio_quotation/internal/usecase/interfaces"
	mock_interfaces "studio_quotation/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAccessCodeUseCase_Issue(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc := NewAccessCodeUseCase(nil)
		_, err := uc.Issue(context.Background(), "not-an-email", "Alice", entities.AccessCodeRoleUser)
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		uc := NewAccessCodeUseCase(nil)
		_, err := uc.Issue(context.Background(), "alice@example.com", "Alice", "superuser")
		if !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("issues an 8 char uppercase alphanumeric code with 7 day expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccessCodeRepository(ctrl)
		uc := NewAccessCodeUseCase(repo)
		issuedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return issuedAt }

		var stored entities.AccessCode
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.AccessCode) (entities.AccessCode, error) {
				stored = a
				return a, nil
			})

		got, err := uc.Issue(context.Background(), "alice@example.com", "Alice", entities.AccessCodeRoleUser)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Code) != 8 {
			t.Fatalf("expected 8 char code, got %q", got.Code)
		}
		for _, r := range got.Code {
			if !strings.ContainsRune(codeAlphabet, r) {
				t.Fatalf("code %q contains %q outside the alphabet", got.Code, r)
			}
		}
		if got.Used {
			t.Fatal("new code must not be used")
		}
		if !stored.ExpiresAt.Equal(issuedAt.Add(7 * 24 * time.Hour)) {
			t.Fatalf("expected expiry 7 days after issue, got %v", stored.ExpiresAt)
		}
	})
}

func TestAccessCodeUseCase_Validate(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("empty code", func(t *testing.T) {
		uc := NewAccessCodeUseCase(nil)
		_, err := uc.Validate(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidAccessCode) {
			t.Fatalf("expected ErrInvalidAccessCode, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccessCodeRepository(ctrl)
		uc := NewAccessCodeUseCase(repo)

		repo.EXPECT().GetByCode(gomock.Any(), "NOPE1234").Return(entities.AccessCode{}, nil)

		_, err := uc.Validate(context.Background(), "nope1234")
		if !errors.Is(err, ErrCodeNotFound) {
			t.Fatalf("expected ErrCodeNotFound, got %v", err)
		}
	})

	t.Run("used wins over expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccessCodeRepository(ctrl)
		uc := NewAccessCodeUseCase(repo)
		uc.now = func() time.Time { return now }

		// Both used and past the window; already-used must be reported.
		repo.EXPECT().GetByCode(gomock.Any(), "ABCD1234").Return(entities.AccessCode{
			ID:        "ac-1",
			Code:      "ABCD1234",
			Used:      true,
			ExpiresAt: now.Add(-time.Hour),
		}, nil)

		_, err := uc.Validate(context.Background(), "ABCD1234")
		if !errors.Is(err, ErrCodeAlreadyUsed) {
			t.Fatalf("expected ErrCodeAlreadyUsed, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccessCodeRepository(ctrl)
		uc := NewAccessCodeUseCase(repo)
		uc.now = func() time.Time { return now }

		repo.EXPECT().GetByCode(gomock.Any(), "ABCD1234").Return(entities.AccessCode{
			ID:        "ac-1",
			Code:      "ABCD1234",
			ExpiresAt: now.Add(-time.Minute),
		}, nil)

		_, err := uc.Validate(context.Background(), "ABCD1234")
		if !errors.Is(err, ErrCodeExpired) {
			t.Fatalf("expected ErrCodeExpired, got %v", err)
		}
	})

	t.Run("valid code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccessCodeRepository(ctrl)
		uc := NewAccessCodeUseCase(repo)
		uc.now = func() time.Time { return now }

		repo.EXPECT().GetByCode(gomock.Any(), "ABCD1234").Return(entities.AccessCode{
			ID:        "ac-1",
			Code:      "ABCD1234",
			ExpiresAt: now.Add(24 * time.Hour),
		}, nil)

		got, err := uc.Validate(context.Background(), " abcd1234 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "ac-1" {
			t.Fatalf("expected ac-1, got %q", got.ID)
		}
	})
}

func TestAccessCodeUseCase_Consume(t *testing.T) {
	t.Run("winner gets the updated record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccessCodeRepository(ctrl)
		uc := NewAccessCodeUseCase(repo)

		repo.EXPECT().Consume(gomock.Any(), "ac-1").Return(entities.AccessCode{ID: "ac-1", Used: true}, nil)

		got, err := uc.Consume(context.Background(), "ac-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Used {
			t.Fatal("consumed code must be marked used")
		}
	})

	t.Run("second consume reports already used", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccessCodeRepository(ctrl)
		uc := NewAccessCodeUseCase(repo)

		repo.EXPECT().Consume(gomock.Any(), "ac-1").Return(entities.AccessCode{}, interfaces.ErrConditionFailed)
		repo.EXPECT().GetByID(gomock.Any(), "ac-1").Return(entities.AccessCode{ID: "ac-1", Used: true}, nil)

		_, err := uc.Consume(context.Background(), "ac-1")
		if !errors.Is(err, ErrCodeAlreadyUsed) {
			t.Fatalf("expected ErrCodeAlreadyUsed, got %v", err)
		}
	})

	t.Run("missing code reports not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccessCodeRepository(ctrl)
		uc := NewAccessCodeUseCase(repo)

		repo.EXPECT().Consume(gomock.Any(), "ghost").Return(entities.AccessCode{}, interfaces.ErrConditionFailed)
		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.AccessCode{}, nil)

		_, err := uc.Consume(context.Background(), "ghost")
		if !errors.Is(err, ErrCodeNotFound) {
			t.Fatalf("expected ErrCodeNotFound, got %v", err)
		}
	})
}

func TestAccessCodeUseCase_CleanupExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIAccessCodeRepository(ctrl)
	uc := NewAccessCodeUseCase(repo)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	repo.EXPECT().List(gomock.Any()).Return([]entities.AccessCode{
		{ID: "old", ExpiresAt: now.Add(-time.Hour)},
		{ID: "live", ExpiresAt: now.Add(time.Hour)},
		{ID: "used-live", Used: true, ExpiresAt: now.Add(time.Hour)},
	}, nil)
	repo.EXPECT().Delete(gomock.Any(), "old").Return(nil)

	removed, err := uc.CleanupExpired(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
}
