package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"studio_quotation/internal/domain/entities"
	"studio_quotation/internal/domain/pricing"
	"studio_quotation/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSetup       = errors.New("invalid project setup")
	ErrSetupNotFound      = errors.New("project setup not found")
	ErrInvalidSetupID     = errors.New("invalid project setup id")
	ErrSetupAlreadyExists = errors.New("project setup already exists for client")
)

// IProjectSetupUseCase manages the priced templates quotations are
// composed from.

type IProjectSetupUseCase interface {
	Create(ctx context.Context, s entities.ProjectSetup) (entities.ProjectSetup, error)
	GetByID(ctx context.Context, id string) (entities.ProjectSetup, error)
	GetByClientID(ctx context.Context, clientID string) (entities.ProjectSetup, error)
}

type ProjectSetupUseCase struct {
	repo       interfaces.IProjectSetupRepository
	clientRepo interfaces.IClientRepository
	workflow   IWorkflowUseCase
}

var _ IProjectSetupUseCase = (*ProjectSetupUseCase)(nil)

func NewProjectSetupUseCase(repo interfaces.IProjectSetupRepository, clientRepo interfaces.IClientRepository, workflow IWorkflowUseCase) *ProjectSetupUseCase {
	return &ProjectSetupUseCase{repo: repo, clientRepo: clientRepo, workflow: workflow}
}

// Create validates and stores a setup, then marks the projectSetup step.
// Monetary and delivery figures must be non-negative; violations are
// rejected, never clamped.
func (u *ProjectSetupUseCase) Create(ctx context.Context, s entities.ProjectSetup) (entities.ProjectSetup, error) {
	s.ClientID = strings.TrimSpace(s.ClientID)
	s.ProjectName = strings.TrimSpace(s.ProjectName)
	if s.ClientID == "" {
		return entities.ProjectSetup{}, ErrInvalidClientID
	}
	if s.ProjectName == "" {
		return entities.ProjectSetup{}, ErrInvalidSetup
	}
	if s.BasePrice < 0 {
		return entities.ProjectSetup{}, pricing.ErrNegativePrice
	}
	if s.BaseDelivery < 0 {
		return entities.ProjectSetup{}, pricing.ErrNegativeDelivery
	}
	seen := make(map[string]bool, len(s.AddOns))
	for i := range s.AddOns {
		a := &s.AddOns[i]
		a.Name = strings.TrimSpace(a.Name)
		if a.Name == "" {
			return entities.ProjectSetup{}, ErrInvalidSetup
		}
		if a.Price < 0 {
			return entities.ProjectSetup{}, pricing.ErrNegativePrice
		}
		if a.ExtraDeliveryTime < 0 {
			return entities.ProjectSetup{}, pricing.ErrNegativeDelivery
		}
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		if seen[a.ID] {
			return entities.ProjectSetup{}, ErrInvalidSetup
		}
		seen[a.ID] = true
	}
	for i, code := range s.CouponCodes {
		s.CouponCodes[i] = entities.NormalizeCouponCode(code)
	}

	client, err := u.clientRepo.GetByID(ctx, s.ClientID)
	if err != nil {
		return entities.ProjectSetup{}, err
	}
	if client.ID == "" {
		return entities.ProjectSetup{}, ErrClientNotFound
	}
	if client.Status == entities.ClientStatusArchived {
		return entities.ProjectSetup{}, ErrClientArchived
	}

	// One setup per client engagement; pricing changes need a new setup
	// only after the previous quotation chain is closed.
	if existing, err := u.repo.GetByClientID(ctx, s.ClientID); err != nil {
		return entities.ProjectSetup{}, err
	} else if existing.ID != "" {
		return entities.ProjectSetup{}, ErrSetupAlreadyExists
	}

	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.ClientCode = client.ClientCode
	s.CreatedAt = now
	s.UpdatedAt = now

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.ProjectSetup{}, err
	}

	if _, err := u.workflow.CompleteStep(ctx, s.ClientID, entities.StepProjectSetup); err != nil {
		log.Printf("[setup][usecase] workflow step failed client_id=%s err=%v", s.ClientID, err)
	}
	return created, nil
}

func (u *ProjectSetupUseCase) GetByID(ctx context.Context, id string) (entities.ProjectSetup, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProjectSetup{}, ErrInvalidSetupID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ProjectSetup{}, err
	}
	if s.ID == "" {
		return entities.ProjectSetup{}, ErrSetupNotFound
	}
	return s, nil
}

func (u *ProjectSetupUseCase) GetByClientID(ctx context.Context, clientID string) (entities.ProjectSetup, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.ProjectSetup{}, ErrInvalidClientID
	}

	s, err := u.repo.GetByClientID(ctx, clientID)
	if err != nil {
		return entities.ProjectSetup{}, err
	}
	if s.ID == "" {
		return entities.ProjectSetup{}, ErrSetupNotFound
	}
	return s, nil
}
