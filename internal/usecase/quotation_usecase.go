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
	ErrInvalidQuotationID = errors.New("invalid quotation id")
	ErrQuotationNotFound  = errors.New("quotation not found")
	ErrUnknownAddOn       = errors.New("add-on not in project setup catalog")
	ErrIllegalTransition  = errors.New("illegal quotation transition")
	ErrProjectNotFound    = errors.New("running project not found")
)

// IQuotationUseCase is the façade external callers use: it composes the
// pricing calculator, the coupon validator and the quotation state
// machine against the persistence capabilities.

type IQuotationUseCase interface {
	CreateQuotation(ctx context.Context, clientID, projectSetupID string, selectedAddOnIDs []string, couponCode string) (entities.Quotation, error)
	ConfirmQuotation(ctx context.Context, quotationID string) (entities.RunningProject, error)
	RejectQuotation(ctx context.Context, quotationID, reason string) (entities.Quotation, error)
	GetByID(ctx context.Context, quotationID string) (entities.Quotation, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Quotation, error)
}

type QuotationUseCase struct {
	repo        interfaces.IQuotationRepository
	setupRepo   interfaces.IProjectSetupRepository
	projectRepo interfaces.IRunningProjectRepository
	coupons     ICouponUseCase
	workflow    IWorkflowUseCase
	notifier    interfaces.INotifier
	now         func() time.Time
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	repo interfaces.IQuotationRepository,
	setupRepo interfaces.IProjectSetupRepository,
	projectRepo interfaces.IRunningProjectRepository,
	coupons ICouponUseCase,
	workflow IWorkflowUseCase,
	notifier interfaces.INotifier,
) *QuotationUseCase {
	return &QuotationUseCase{
		repo:        repo,
		setupRepo:   setupRepo,
		projectRepo: projectRepo,
		coupons:     coupons,
		workflow:    workflow,
		notifier:    notifier,
		now:         time.Now,
	}
}

// CreateQuotation resolves the selection against the setup's catalog,
// prices it and persists the quotation as pending_approval. An id that is
// not in the catalog is a validation error, never silently ignored, and a
// missing setup never produces a zero-price quotation. Required catalog
// entries are part of every quotation whether or not they were selected.
func (u *QuotationUseCase) CreateQuotation(ctx context.Context, clientID, projectSetupID string, selectedAddOnIDs []string, couponCode string) (entities.Quotation, error) {
	clientID = strings.TrimSpace(clientID)
	projectSetupID = strings.TrimSpace(projectSetupID)
	if clientID == "" {
		return entities.Quotation{}, ErrInvalidClientID
	}
	if projectSetupID == "" {
		return entities.Quotation{}, ErrInvalidSetupID
	}

	setup, err := u.setupRepo.GetByID(ctx, projectSetupID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if setup.ID == "" {
		return entities.Quotation{}, ErrSetupNotFound
	}
	if setup.ClientID != clientID {
		return entities.Quotation{}, ErrSetupNotFound
	}

	selected, err := resolveAddOns(setup, selectedAddOnIDs)
	if err != nil {
		return entities.Quotation{}, err
	}

	addOnsTotal, err := pricing.AddOnsTotal(selected)
	if err != nil {
		return entities.Quotation{}, err
	}
	subtotal, err := pricing.Subtotal(setup.BasePrice, selected)
	if err != nil {
		return entities.Quotation{}, err
	}
	deliveryTime, err := pricing.DeliveryTime(setup.BaseDelivery, selected)
	if err != nil {
		return entities.Quotation{}, err
	}

	now := u.now().UTC()
	var applied *entities.Coupon
	discount := 0.0
	if code := strings.TrimSpace(couponCode); code != "" {
		coupon, err := u.coupons.Validate(ctx, code, subtotal, now)
		if err != nil {
			return entities.Quotation{}, err
		}
		discount, err = coupon.DiscountFor(subtotal)
		if err != nil {
			return entities.Quotation{}, err
		}
		applied = &coupon
	}

	q := entities.Quotation{
		ID:         uuid.NewString(),
		ClientID:   clientID,
		ClientCode: setup.ClientCode,
		ProjectID:  setup.ID,

		SelectedAddOns: selected,
		AppliedCoupon:  applied,

		BasePrice:      setup.BasePrice,
		AddOnsTotal:    addOnsTotal,
		Subtotal:       subtotal,
		DiscountAmount: discount,
		FinalPrice:     pricing.FinalPrice(subtotal, discount),

		BaseDeliveryTime:   setup.BaseDelivery,
		AddOnsDeliveryTime: deliveryTime - setup.BaseDelivery,
		FinalDeliveryTime:  deliveryTime,

		Status:    entities.QuotationStatusPendingApproval,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, q)
}

// ConfirmQuotation applies the pending_approval -> confirmed transition
// with an expected-state conditional update. Only the caller that wins
// that update records coupon usage, so it is counted exactly once. A
// caller that loses the update against an already confirmed quotation is
// a retry after a transient failure past the transition; it resumes the
// downstream work instead of failing, so a confirmed quotation can
// always be driven to a running project.
func (u *QuotationUseCase) ConfirmQuotation(ctx context.Context, quotationID string) (entities.RunningProject, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.RunningProject{}, ErrInvalidQuotationID
	}

	now := u.now().UTC()
	confirmedAt := now
	q, err := u.repo.UpdateStatus(ctx, quotationID,
		entities.QuotationStatusPendingApproval, entities.QuotationStatusConfirmed,
		interfaces.QuotationStatusUpdate{ClientConfirmed: true, ConfirmedAt: &confirmedAt})
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return u.resumeConfirmation(ctx, quotationID, now)
		}
		return entities.RunningProject{}, err
	}

	if q.AppliedCoupon != nil {
		if _, err := u.coupons.RecordUsage(ctx, q.AppliedCoupon.ID); err != nil {
			// The transition has already been applied; surface the loss so
			// the operator can intervene, but do not roll the quotation back.
			log.Printf("[quotation][usecase] coupon usage record failed quotation_id=%s coupon_id=%s err=%v", q.ID, q.AppliedCoupon.ID, err)
		}
	}

	return u.completeConfirmation(ctx, q, now)
}

// resumeConfirmation handles a confirm whose conditional update lost.
// When the quotation is already confirmed the downstream work is run
// again and the project returned; coupon usage is not recorded a second
// time, the winner already counted it. Any other state forbids the edge.
func (u *QuotationUseCase) resumeConfirmation(ctx context.Context, quotationID string, now time.Time) (entities.RunningProject, error) {
	q, err := u.repo.GetByID(ctx, quotationID)
	if err != nil {
		return entities.RunningProject{}, err
	}
	if q.ID == "" {
		return entities.RunningProject{}, ErrQuotationNotFound
	}
	if q.Status != entities.QuotationStatusConfirmed {
		return entities.RunningProject{}, ErrIllegalTransition
	}
	return u.completeConfirmation(ctx, q, now)
}

// completeConfirmation runs everything downstream of the status change.
// Each piece tolerates re-execution: the project write is keyed by the
// quotation id and step completion is a no-op on completed steps.
func (u *QuotationUseCase) completeConfirmation(ctx context.Context, q entities.Quotation, now time.Time) (entities.RunningProject, error) {
	project, err := u.synthesizeProject(ctx, q, now)
	if err != nil {
		return entities.RunningProject{}, err
	}

	if _, err := u.workflow.CompleteStep(ctx, q.ClientID, entities.StepClientApproval); err != nil {
		log.Printf("[quotation][usecase] approval step failed client_id=%s err=%v", q.ClientID, err)
	}
	if _, err := u.workflow.CompleteStep(ctx, q.ClientID, entities.StepProjectRunning); err != nil {
		log.Printf("[quotation][usecase] running step failed client_id=%s err=%v", q.ClientID, err)
	}

	if u.notifier != nil {
		if err := u.notifier.NotifyQuotationDecision(ctx, q); err != nil {
			log.Printf("[quotation][usecase] decision notify failed quotation_id=%s err=%v", q.ID, err)
		}
	}
	return project, nil
}

// RejectQuotation applies pending_approval -> rejected. Rejection has no
// side effects on coupon usage counts.
func (u *QuotationUseCase) RejectQuotation(ctx context.Context, quotationID, reason string) (entities.Quotation, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.UpdateStatus(ctx, quotationID,
		entities.QuotationStatusPendingApproval, entities.QuotationStatusRejected,
		interfaces.QuotationStatusUpdate{RejectedReason: strings.TrimSpace(reason)})
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Quotation{}, u.classifyTransitionFailure(ctx, quotationID)
		}
		return entities.Quotation{}, err
	}

	if u.notifier != nil {
		if err := u.notifier.NotifyQuotationDecision(ctx, q); err != nil {
			log.Printf("[quotation][usecase] decision notify failed quotation_id=%s err=%v", q.ID, err)
		}
	}
	return q, nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, quotationID string) (entities.Quotation, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, quotationID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) ListByClientID(ctx context.Context, clientID string) ([]entities.Quotation, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClientID(ctx, clientID)
}

// classifyTransitionFailure distinguishes a missing quotation from one
// whose current state forbids the edge. Both are reported after the CAS
// already failed, so the answer is advisory only.
func (u *QuotationUseCase) classifyTransitionFailure(ctx context.Context, quotationID string) error {
	q, err := u.repo.GetByID(ctx, quotationID)
	if err != nil {
		return err
	}
	if q.ID == "" {
		return ErrQuotationNotFound
	}
	return ErrIllegalTransition
}

func (u *QuotationUseCase) synthesizeProject(ctx context.Context, q entities.Quotation, now time.Time) (entities.RunningProject, error) {
	setup, err := u.setupRepo.GetByID(ctx, q.ProjectID)
	if err != nil {
		return entities.RunningProject{}, err
	}

	p := entities.RunningProject{
		ID:          q.ID,
		ClientID:    q.ClientID,
		ClientCode:  q.ClientCode,
		QuotationID: q.ID,
		ProjectName: setup.ProjectName,
		Description: setup.Description,

		StartDate:        now,
		EstimatedEndDate: now.AddDate(0, 0, q.FinalDeliveryTime),

		OverallProgress: 0,
		Milestones:      defaultMilestones(now, q.FinalDeliveryTime),

		PaymentStatus: entities.PaymentStatusPending,

		Features:          setup.Features,
		SelectedAddOns:    q.SelectedAddOns,
		FinalPrice:        q.FinalPrice,
		FinalDeliveryTime: q.FinalDeliveryTime,

		Status:    entities.ProjectStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.projectRepo.Create(ctx, p)
	if err == nil {
		return created, nil
	}
	if errors.Is(err, interfaces.ErrConditionFailed) {
		// A retry after a transient failure finds the project already
		// created; return the stored record instead of a duplicate.
		existing, getErr := u.projectRepo.GetByID(ctx, p.ID)
		if getErr != nil {
			return entities.RunningProject{}, getErr
		}
		if existing.ID != "" {
			return existing, nil
		}
	}
	return entities.RunningProject{}, err
}

func resolveAddOns(setup entities.ProjectSetup, selectedIDs []string) ([]entities.AddOn, error) {
	chosen := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		id = strings.TrimSpace(id)
		if _, ok := setup.AddOnByID(id); !ok {
			return nil, ErrUnknownAddOn
		}
		chosen[id] = true
	}
	for _, a := range setup.AddOns {
		if a.Required {
			chosen[a.ID] = true
		}
	}

	// Keep the setup's catalog order so two quotations over the same
	// selection compare equal.
	selected := make([]entities.AddOn, 0, len(chosen))
	for _, a := range setup.AddOns {
		if chosen[a.ID] {
			selected = append(selected, a)
		}
	}
	return selected, nil
}
