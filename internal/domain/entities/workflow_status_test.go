package entities

import (
	"errors"
	"testing"
	"time"
)

func TestWorkflowStatusCompleteStep(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("new tracker starts at client_created", func(t *testing.T) {
		ws := NewWorkflowStatus("client-1", now)
		if !ws.StepCompleted(StepClientCreated) {
			t.Fatal("client_created should be seeded complete")
		}
		if ws.CurrentStep() != StepClientCreated {
			t.Fatalf("expected current step client_created, got %s", ws.CurrentStep())
		}
	})

	t.Run("steps advance in order", func(t *testing.T) {
		ws := NewWorkflowStatus("client-1", now)
		for _, step := range []WorkflowStep{StepProjectSetup, StepInvitationSent, StepClientApproval} {
			if err := ws.CompleteStep(step, now); err != nil {
				t.Fatalf("completing %s: %v", step, err)
			}
		}
		if ws.CurrentStep() != StepClientApproval {
			t.Fatalf("expected current step client_approval, got %s", ws.CurrentStep())
		}
	})

	t.Run("skipping a step is rejected", func(t *testing.T) {
		ws := NewWorkflowStatus("client-1", now)
		err := ws.CompleteStep(StepClientApproval, now)
		if !errors.Is(err, ErrStepOutOfOrder) {
			t.Fatalf("expected ErrStepOutOfOrder, got %v", err)
		}
		if ws.StepCompleted(StepClientApproval) {
			t.Fatal("rejected step must not be recorded")
		}
	})

	t.Run("re-completing a step is a no-op", func(t *testing.T) {
		ws := NewWorkflowStatus("client-1", now)
		if err := ws.CompleteStep(StepProjectSetup, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		first := ws.Steps[StepProjectSetup].CompletedAt
		later := now.Add(time.Hour)
		if err := ws.CompleteStep(StepProjectSetup, later); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ws.Steps[StepProjectSetup].CompletedAt.Equal(*first) {
			t.Fatal("re-completion must not overwrite the original timestamp")
		}
	})

	t.Run("invalid step is rejected", func(t *testing.T) {
		ws := NewWorkflowStatus("client-1", now)
		if err := ws.CompleteStep(WorkflowStep(99), now); !errors.Is(err, ErrStepOutOfOrder) {
			t.Fatalf("expected ErrStepOutOfOrder, got %v", err)
		}
	})
}

func TestParseWorkflowStep(t *testing.T) {
	for i, name := range StepNames() {
		step, ok := ParseWorkflowStep(name)
		if !ok || step != WorkflowStep(i) {
			t.Fatalf("round trip failed for %q", name)
		}
	}
	if _, ok := ParseWorkflowStep("shipping"); ok {
		t.Fatal("unknown name must not parse")
	}
}

func TestQuotationCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to QuotationStatus
		want     bool
	}{
		{QuotationStatusDraft, QuotationStatusPendingApproval, true},
		{QuotationStatusPendingApproval, QuotationStatusConfirmed, true},
		{QuotationStatusPendingApproval, QuotationStatusRejected, true},
		{QuotationStatusConfirmed, QuotationStatusRejected, false},
		{QuotationStatusRejected, QuotationStatusConfirmed, false},
		{QuotationStatusConfirmed, QuotationStatusPendingApproval, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}
