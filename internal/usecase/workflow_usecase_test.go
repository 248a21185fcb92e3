package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"studio_quotation/internal/domain/entities"
	mock_interfaces "studio_quotation/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWorkflowUseCase_GetStatus(t *testing.T) {
	t.Run("invalid client id", func(t *testing.T) {
		uc := NewWorkflowUseCase(nil)
		_, err := uc.GetStatus(context.Background(), " ")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkflowStatusRepository(ctrl)
		uc := NewWorkflowUseCase(repo)

		repo.EXPECT().GetByClientID(gomock.Any(), "ghost").Return(entities.WorkflowStatus{}, nil)

		_, err := uc.GetStatus(context.Background(), "ghost")
		if !errors.Is(err, ErrWorkflowNotFound) {
			t.Fatalf("expected ErrWorkflowNotFound, got %v", err)
		}
	})
}

func TestWorkflowUseCase_CompleteStep(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("invalid step", func(t *testing.T) {
		uc := NewWorkflowUseCase(nil)
		_, err := uc.CompleteStep(context.Background(), "client-1", entities.WorkflowStep(42))
		if !errors.Is(err, ErrInvalidWorkflowStep) {
			t.Fatalf("expected ErrInvalidWorkflowStep, got %v", err)
		}
	})

	t.Run("out of order step is not persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkflowStatusRepository(ctrl)
		uc := NewWorkflowUseCase(repo)

		repo.EXPECT().GetByClientID(gomock.Any(), "client-1").Return(entities.NewWorkflowStatus("client-1", now), nil)
		// No Put expectation: persisting a rejected step would fail the test.

		_, err := uc.CompleteStep(context.Background(), "client-1", entities.StepClientApproval)
		if !errors.Is(err, ErrWorkflowSequence) {
			t.Fatalf("expected ErrWorkflowSequence, got %v", err)
		}
	})

	t.Run("in-order step is persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkflowStatusRepository(ctrl)
		uc := NewWorkflowUseCase(repo)

		repo.EXPECT().GetByClientID(gomock.Any(), "client-1").Return(entities.NewWorkflowStatus("client-1", now), nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ws entities.WorkflowStatus) (entities.WorkflowStatus, error) {
				if !ws.StepCompleted(entities.StepProjectSetup) {
					t.Fatal("expected project_setup to be complete in the stored tracker")
				}
				return ws, nil
			})

		got, err := uc.CompleteStep(context.Background(), "client-1", entities.StepProjectSetup)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CurrentStep() != entities.StepProjectSetup {
			t.Fatalf("expected current step project_setup, got %s", got.CurrentStep())
		}
	})
}
