package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"studio_quotation/internal/domain/entities"
	"studio_quotation/internal/usecase/interfaces"
)

var (
	ErrInvalidClientID     = errors.New("invalid client id")
	ErrWorkflowNotFound    = errors.New("workflow status not found")
	ErrInvalidWorkflowStep = errors.New("invalid workflow step")

	// ErrWorkflowSequence is returned when a step would be completed
	// before its predecessors.
	ErrWorkflowSequence = entities.ErrStepOutOfOrder
)

// IWorkflowUseCase tracks per-client engagement progress. The tracker is
// for dashboard display; it is never consulted for authorization.

type IWorkflowUseCase interface {
	GetStatus(ctx context.Context, clientID string) (entities.WorkflowStatus, error)
	CompleteStep(ctx context.Context, clientID string, step entities.WorkflowStep) (entities.WorkflowStatus, error)
}

type WorkflowUseCase struct {
	repo interfaces.IWorkflowStatusRepository
	now  func() time.Time
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(repo interfaces.IWorkflowStatusRepository) *WorkflowUseCase {
	return &WorkflowUseCase{repo: repo, now: time.Now}
}

func (u *WorkflowUseCase) GetStatus(ctx context.Context, clientID string) (entities.WorkflowStatus, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.WorkflowStatus{}, ErrInvalidClientID
	}

	ws, err := u.repo.GetByClientID(ctx, clientID)
	if err != nil {
		return entities.WorkflowStatus{}, err
	}
	if ws.ClientID == "" {
		return entities.WorkflowStatus{}, ErrWorkflowNotFound
	}
	return ws, nil
}

func (u *WorkflowUseCase) CompleteStep(ctx context.Context, clientID string, step entities.WorkflowStep) (entities.WorkflowStatus, error) {
	if !step.Valid() {
		return entities.WorkflowStatus{}, ErrInvalidWorkflowStep
	}

	ws, err := u.GetStatus(ctx, clientID)
	if err != nil {
		return entities.WorkflowStatus{}, err
	}
	if err := ws.CompleteStep(step, u.now().UTC()); err != nil {
		return entities.WorkflowStatus{}, err
	}
	return u.repo.Put(ctx, ws)
}
