package response

import (
	"time"

	"studio_quotation/internal/domain/entities"
)

type WorkflowStepResponse struct {
	Step        string     `json:"step"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Order       int        `json:"order"`
}

type WorkflowStatusResponse struct {
	ClientID    string                 `json:"client_id"`
	CurrentStep string                 `json:"current_step"`
	Steps       []WorkflowStepResponse `json:"steps"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// FromWorkflowStatus lists the steps in their fixed workflow order so
// clients can render the tracker without sorting.
func FromWorkflowStatus(ws entities.WorkflowStatus) WorkflowStatusResponse {
	names := entities.StepNames()
	steps := make([]WorkflowStepResponse, 0, len(names))
	for i, name := range names {
		st := ws.Steps[entities.WorkflowStep(i)]
		steps = append(steps, WorkflowStepResponse{
			Step:        name,
			Completed:   st.Completed,
			CompletedAt: st.CompletedAt,
			Order:       i,
		})
	}
	return WorkflowStatusResponse{
		ClientID:    ws.ClientID,
		CurrentStep: ws.CurrentStep().String(),
		Steps:       steps,
		UpdatedAt:   ws.UpdatedAt,
	}
}
