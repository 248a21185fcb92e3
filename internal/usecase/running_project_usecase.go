package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"studio_quotation/internal/domain/entities"
	"studio_quotation/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidProjectID = errors.New("invalid project id")
	ErrInvalidProgress  = errors.New("progress must be between 0 and 100")
	ErrProjectCompleted = errors.New("project already completed")
)

// defaultMilestoneTemplate spreads the standard delivery phases across
// the project window; percentage is the share of the window elapsed at
// the milestone's target date.
var defaultMilestoneTemplate = []struct {
	Title      string
	Percentage int
	Order      int
}{
	{Title: "Project Kickoff", Percentage: 10, Order: 1},
	{Title: "Design Phase", Percentage: 30, Order: 2},
	{Title: "Development Phase", Percentage: 60, Order: 3},
	{Title: "Testing Phase", Percentage: 85, Order: 4},
	{Title: "Project Delivery", Percentage: 100, Order: 5},
}

func defaultMilestones(start time.Time, totalDays int) []entities.Milestone {
	out := make([]entities.Milestone, 0, len(defaultMilestoneTemplate))
	for _, m := range defaultMilestoneTemplate {
		out = append(out, entities.Milestone{
			ID:          uuid.NewString(),
			Title:       m.Title,
			Description: m.Title + " completion",
			TargetDate:  start.AddDate(0, 0, totalDays*m.Percentage/100),
			Status:      entities.MilestoneStatusPending,
			Progress:    0,
			Order:       m.Order,
		})
	}
	return out
}

// IRunningProjectUseCase tracks execution of confirmed quotations. The
// frozen price and delivery figures are never recomputed here.

type IRunningProjectUseCase interface {
	GetByID(ctx context.Context, id string) (entities.RunningProject, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.RunningProject, error)
	UpdateProgress(ctx context.Context, id string, progress int, milestones []entities.Milestone) (entities.RunningProject, error)
	Complete(ctx context.Context, id string) (entities.RunningProject, error)
}

type RunningProjectUseCase struct {
	repo     interfaces.IRunningProjectRepository
	workflow IWorkflowUseCase
}

var _ IRunningProjectUseCase = (*RunningProjectUseCase)(nil)

func NewRunningProjectUseCase(repo interfaces.IRunningProjectRepository, workflow IWorkflowUseCase) *RunningProjectUseCase {
	return &RunningProjectUseCase{repo: repo, workflow: workflow}
}

func (u *RunningProjectUseCase) GetByID(ctx context.Context, id string) (entities.RunningProject, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RunningProject{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RunningProject{}, err
	}
	if p.ID == "" {
		return entities.RunningProject{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *RunningProjectUseCase) ListByClientID(ctx context.Context, clientID string) ([]entities.RunningProject, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClientID(ctx, clientID)
}

func (u *RunningProjectUseCase) UpdateProgress(ctx context.Context, id string, progress int, milestones []entities.Milestone) (entities.RunningProject, error) {
	if progress < 0 || progress > 100 {
		return entities.RunningProject{}, ErrInvalidProgress
	}

	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.RunningProject{}, err
	}
	if p.Status == entities.ProjectStatusCompleted {
		return entities.RunningProject{}, ErrProjectCompleted
	}

	if milestones == nil {
		milestones = p.Milestones
	}
	return u.repo.UpdateProgress(ctx, p.ID, progress, milestones)
}

// Complete closes the project and marks the projectCompleted step.
func (u *RunningProjectUseCase) Complete(ctx context.Context, id string) (entities.RunningProject, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.RunningProject{}, err
	}
	if p.Status == entities.ProjectStatusCompleted {
		return entities.RunningProject{}, ErrProjectCompleted
	}

	done, err := u.repo.Complete(ctx, p.ID)
	if err != nil {
		return entities.RunningProject{}, err
	}

	if _, err := u.workflow.CompleteStep(ctx, p.ClientID, entities.StepProjectCompleted); err != nil {
		log.Printf("[project][usecase] completed step failed client_id=%s err=%v", p.ClientID, err)
	}
	return done, nil
}
