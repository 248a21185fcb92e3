package interfaces

import (
	"context"

	"studio_quotation/internal/domain/entities"
)

// IRunningProjectRepository abstracts persistence for RunningProject.
//
// Create is conditional on the id not existing; together with the
// project id being the quotation id this makes project synthesis
// idempotent under retry.

type IRunningProjectRepository interface {
	Create(ctx context.Context, p entities.RunningProject) (entities.RunningProject, error)
	GetByID(ctx context.Context, id string) (entities.RunningProject, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.RunningProject, error)
	UpdateProgress(ctx context.Context, id string, progress int, milestones []entities.Milestone) (entities.RunningProject, error)
	Complete(ctx context.Context, id string) (entities.RunningProject, error)
}
