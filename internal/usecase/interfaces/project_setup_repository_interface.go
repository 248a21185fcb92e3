package interfaces

import (
	"context"

	"studio_quotation/internal/domain/entities"
)

// IProjectSetupRepository abstracts persistence for ProjectSetup.

type IProjectSetupRepository interface {
	Create(ctx context.Context, s entities.ProjectSetup) (entities.ProjectSetup, error)
	GetByID(ctx context.Context, id string) (entities.ProjectSetup, error)
	GetByClientID(ctx context.Context, clientID string) (entities.ProjectSetup, error)
}
