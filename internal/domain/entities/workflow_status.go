package entities

import (
	"errors"
	"time"
)

// WorkflowStep is a fixed, ordered enumeration of the engagement
// lifecycle. The ordering is the data: a step can only be completed when
// every predecessor is already complete, which makes "completed out of
// order" unrepresentable instead of merely undetected.

type WorkflowStep int

const (
	StepClientCreated WorkflowStep = iota
	StepProjectSetup
	StepInvitationSent
	StepClientApproval
	StepProjectRunning
	StepProjectCompleted
	numWorkflowSteps
)

var workflowStepNames = [numWorkflowSteps]string{
	"client_created",
	"project_setup",
	"invitation_sent",
	"client_approval",
	"project_running",
	"project_completed",
}

func (s WorkflowStep) Valid() bool {
	return s >= StepClientCreated && s < numWorkflowSteps
}

func (s WorkflowStep) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return workflowStepNames[s]
}

// ParseWorkflowStep maps a wire name back to its step.
func ParseWorkflowStep(name string) (WorkflowStep, bool) {
	for i, n := range workflowStepNames {
		if n == name {
			return WorkflowStep(i), true
		}
	}
	return 0, false
}

var ErrStepOutOfOrder = errors.New("workflow step completed out of order")

// StepState records the completion of one workflow step.
type StepState struct {
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// WorkflowStatus is the per-client progress tracker. It drives dashboard
// display only, never authorization decisions.
//
// Storage model (DynamoDB):
//   - PK: client_id
type WorkflowStatus struct {
	ClientID  string                      `json:"client_id"`
	Steps     [numWorkflowSteps]StepState `json:"steps"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

// NewWorkflowStatus seeds a tracker with the first step complete.
func NewWorkflowStatus(clientID string, now time.Time) WorkflowStatus {
	ws := WorkflowStatus{ClientID: clientID, UpdatedAt: now}
	ws.Steps[StepClientCreated] = StepState{Completed: true, CompletedAt: &now}
	return ws
}

// CurrentStep is the furthest completed step, derived from the step
// states rather than stored.
func (w WorkflowStatus) CurrentStep() WorkflowStep {
	current := StepClientCreated
	for s := StepClientCreated; s < numWorkflowSteps; s++ {
		if w.Steps[s].Completed {
			current = s
		}
	}
	return current
}

// StepCompleted reports whether the given step has been completed.
func (w WorkflowStatus) StepCompleted(step WorkflowStep) bool {
	return step.Valid() && w.Steps[step].Completed
}

// CompleteStep marks step complete at now. All preceding steps must
// already be complete; otherwise ErrStepOutOfOrder is returned and the
// tracker is unchanged. Completing an already-completed step is a no-op.
func (w *WorkflowStatus) CompleteStep(step WorkflowStep, now time.Time) error {
	if !step.Valid() {
		return ErrStepOutOfOrder
	}
	for s := StepClientCreated; s < step; s++ {
		if !w.Steps[s].Completed {
			return ErrStepOutOfOrder
		}
	}
	if w.Steps[step].Completed {
		return nil
	}
	w.Steps[step] = StepState{Completed: true, CompletedAt: &now}
	w.UpdatedAt = now
	return nil
}

// StepNames lists the wire names of all steps in order.
func StepNames() []string {
	return workflowStepNames[:]
}
