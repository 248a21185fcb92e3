package usecase

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"
	"time"

	"studio_quotation/internal/domain/entities"
	"studio_quotation/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidClientName = errors.New("invalid client name")
	ErrClientNotFound    = errors.New("client not found")
	ErrClientArchived    = errors.New("client archived")
)

const clientCodePrefix = "CLI"

// IClientUseCase manages operator-owned client records and the
// invitation flow that hands out access codes.

type IClientUseCase interface {
	Create(ctx context.Context, name, email, phone string) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	GetByClientCode(ctx context.Context, clientCode string) (entities.Client, error)
	Archive(ctx context.Context, id string) (entities.Client, error)
	Invite(ctx context.Context, id string) (entities.AccessCode, error)
}

type ClientUseCase struct {
	repo         interfaces.IClientRepository
	workflowRepo interfaces.IWorkflowStatusRepository
	accessCodes  IAccessCodeUseCase
	workflow     IWorkflowUseCase
	notifier     interfaces.INotifier
	now          func() time.Time
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(
	repo interfaces.IClientRepository,
	workflowRepo interfaces.IWorkflowStatusRepository,
	accessCodes IAccessCodeUseCase,
	workflow IWorkflowUseCase,
	notifier interfaces.INotifier,
) *ClientUseCase {
	return &ClientUseCase{
		repo:         repo,
		workflowRepo: workflowRepo,
		accessCodes:  accessCodes,
		workflow:     workflow,
		notifier:     notifier,
		now:          time.Now,
	}
}

// Create registers a client and seeds its workflow tracker with the
// clientCreated step complete.
func (u *ClientUseCase) Create(ctx context.Context, name, email, phone string) (entities.Client, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return entities.Client{}, ErrInvalidEmail
	}

	suffix, err := generateCode()
	if err != nil {
		return entities.Client{}, err
	}

	now := u.now().UTC()
	c := entities.Client{
		ID:         uuid.NewString(),
		ClientCode: clientCodePrefix + suffix[:5],
		Name:       name,
		Email:      email,
		Phone:      strings.TrimSpace(phone),
		Status:     entities.ClientStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}

	if _, err := u.workflowRepo.Put(ctx, entities.NewWorkflowStatus(created.ID, now)); err != nil {
		log.Printf("[client][usecase] workflow seed failed client_id=%s err=%v", created.ID, err)
	}
	return created, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) GetByClientCode(ctx context.Context, clientCode string) (entities.Client, error) {
	clientCode = strings.ToUpper(strings.TrimSpace(clientCode))
	if clientCode == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByClientCode(ctx, clientCode)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

// Archive closes the engagement. Archived clients are immutable.
func (u *ClientUseCase) Archive(ctx context.Context, id string) (entities.Client, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.Status == entities.ClientStatusArchived {
		return entities.Client{}, ErrClientArchived
	}
	return u.repo.UpdateStatus(ctx, c.ID, entities.ClientStatusArchived)
}

// Invite issues an access code for the client, marks the invitationSent
// step and hands the invitation to the notification layer. Sending is
// best-effort: a notifier failure does not undo the issued code.
func (u *ClientUseCase) Invite(ctx context.Context, id string) (entities.AccessCode, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.AccessCode{}, err
	}
	if c.Status == entities.ClientStatusArchived {
		return entities.AccessCode{}, ErrClientArchived
	}

	code, err := u.accessCodes.Issue(ctx, c.Email, c.Name, entities.AccessCodeRoleUser)
	if err != nil {
		return entities.AccessCode{}, err
	}
	if _, err := u.repo.SetAccessCode(ctx, c.ID, code.Code); err != nil {
		return entities.AccessCode{}, err
	}

	if _, err := u.workflow.CompleteStep(ctx, c.ID, entities.StepInvitationSent); err != nil {
		log.Printf("[client][usecase] invitation step failed client_id=%s err=%v", c.ID, err)
	}

	if u.notifier != nil {
		inv := interfaces.InvitationDetails{
			ClientID:    c.ID,
			ClientCode:  c.ClientCode,
			ClientName:  c.Name,
			ClientEmail: c.Email,
			AccessCode:  code.Code,
			ExpiresAt:   code.ExpiresAt.Format(time.RFC3339),
		}
		if err := u.notifier.NotifyInvitation(ctx, inv); err != nil {
			log.Printf("[client][usecase] invitation notify failed client_id=%s err=%v", c.ID, err)
		}
	}
	return code, nil
}
