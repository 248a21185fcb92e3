package request

import (
	"studio_quotation/internal/domain/entities"
)

type CompleteStepRequest struct {
	Step string `json:"step" binding:"required"`
}

func (r CompleteStepRequest) ResolveStep() (entities.WorkflowStep, bool) {
	return entities.ParseWorkflowStep(r.Step)
}
