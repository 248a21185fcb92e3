package interfaces

import (
	"context"

	"studio_quotation/internal/domain/entities"
)

// IWorkflowStatusRepository abstracts persistence for WorkflowStatus.
// The tracker feeds dashboards only, so plain get/put is sufficient here.

type IWorkflowStatusRepository interface {
	Put(ctx context.Context, ws entities.WorkflowStatus) (entities.WorkflowStatus, error)
	GetByClientID(ctx context.Context, clientID string) (entities.WorkflowStatus, error)
}
