package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"studio_quotation/internal/domain/entities"
	"studio_quotation/internal/usecase/interfaces"
	mock_interfaces "studio_quotation/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type quotationFixture struct {
	uc           *QuotationUseCase
	repo         *mock_interfaces.MockIQuotationRepository
	setupRepo    *mock_interfaces.MockIProjectSetupRepository
	projectRepo  *mock_interfaces.MockIRunningProjectRepository
	couponRepo   *mock_interfaces.MockICouponRepository
	workflowRepo *mock_interfaces.MockIWorkflowStatusRepository
	notifier     *mock_interfaces.MockINotifier
	now          time.Time
}

func newQuotationFixture(t *testing.T, ctrl *gomock.Controller) *quotationFixture {
	t.Helper()
	f := &quotationFixture{
		repo:         mock_interfaces.NewMockIQuotationRepository(ctrl),
		setupRepo:    mock_interfaces.NewMockIProjectSetupRepository(ctrl),
		projectRepo:  mock_interfaces.NewMockIRunningProjectRepository(ctrl),
		couponRepo:   mock_interfaces.NewMockICouponRepository(ctrl),
		workflowRepo: mock_interfaces.NewMockIWorkflowStatusRepository(ctrl),
		notifier:     mock_interfaces.NewMockINotifier(ctrl),
		now:          time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	f.uc = NewQuotationUseCase(
		f.repo, f.setupRepo, f.projectRepo,
		NewCouponUseCase(f.couponRepo),
		NewWorkflowUseCase(f.workflowRepo),
		f.notifier,
	)
	f.uc.now = func() time.Time { return f.now }
	return f
}

func fixtureSetup() entities.ProjectSetup {
	return entities.ProjectSetup{
		ID:           "setup-1",
		ClientID:     "client-1",
		ClientCode:   "CLI4F2K9",
		ProjectName:  "Portfolio Site",
		BasePrice:    1200,
		BaseDelivery: 21,
		AddOns: []entities.AddOn{
			{ID: "seo", Name: "SEO Package", Price: 99, ExtraDeliveryTime: 0},
			{ID: "cms", Name: "CMS Integration", Price: 149, ExtraDeliveryTime: 3},
			{ID: "hosting", Name: "Hosting Setup", Price: 49, ExtraDeliveryTime: 1},
		},
	}
}

func TestQuotationUseCase_CreateQuotation(t *testing.T) {
	t.Run("unknown add-on id is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newQuotationFixture(t, ctrl)

		f.setupRepo.EXPECT().GetByID(gomock.Any(), "setup-1").Return(fixtureSetup(), nil)

		_, err := f.uc.CreateQuotation(context.Background(), "client-1", "setup-1", []string{"seo", "ghost"}, "")
		if !errors.Is(err, ErrUnknownAddOn) {
			t.Fatalf("expected ErrUnknownAddOn, got %v", err)
		}
	})

	t.Run("missing setup is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newQuotationFixture(t, ctrl)

		f.setupRepo.EXPECT().GetByID(gomock.Any(), "setup-1").Return(entities.ProjectSetup{}, nil)

		_, err := f.uc.CreateQuotation(context.Background(), "client-1", "setup-1", nil, "")
		if !errors.Is(err, ErrSetupNotFound) {
			t.Fatalf("expected ErrSetupNotFound, got %v", err)
		}
	})

	t.Run("setup owned by another client is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newQuotationFixture(t, ctrl)

		f.setupRepo.EXPECT().GetByID(gomock.Any(), "setup-1").Return(fixtureSetup(), nil)

		_, err := f.uc.CreateQuotation(context.Background(), "client-2", "setup-1", nil, "")
		if !errors.Is(err, ErrSetupNotFound) {
			t.Fatalf("expected ErrSetupNotFound, got %v", err)
		}
	})

	t.Run("prices the selection with a percentage coupon", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newQuotationFixture(t, ctrl)

		f.setupRepo.EXPECT().GetByID(gomock.Any(), "setup-1").Return(fixtureSetup(), nil)
		f.couponRepo.EXPECT().GetByCode(gomock.Any(), "WELCOME10").Return(entities.Coupon{
			ID:           "cp-1",
			Code:         "WELCOME10",
			Discount:     10,
			DiscountType: entities.DiscountTypePercentage,
			ValidUntil:   f.now.Add(24 * time.Hour),
			UsageLimit:   100,
			Active:       true,
		}, nil)

		var stored entities.Quotation
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				stored = q
				return q, nil
			})

		got, err := f.uc.CreateQuotation(context.Background(), "client-1", "setup-1", []string{"seo", "cms"}, "welcome10")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if math.Abs(got.Subtotal-1448) > 1e-9 {
			t.Fatalf("expected subtotal 1448, got %v", got.Subtotal)
		}
		if math.Abs(got.DiscountAmount-144.8) > 1e-9 {
			t.Fatalf("expected discount 144.8, got %v", got.DiscountAmount)
		}
		if math.Abs(got.FinalPrice-1303.2) > 1e-9 {
			t.Fatalf("expected final price 1303.2, got %v", got.FinalPrice)
		}
		if got.FinalDeliveryTime != 24 {
			t.Fatalf("expected delivery 24 days, got %d", got.FinalDeliveryTime)
		}
		if got.Status != entities.QuotationStatusPendingApproval {
			t.Fatalf("expected pending_approval, got %s", got.Status)
		}
		if stored.AppliedCoupon == nil || stored.AppliedCoupon.ID != "cp-1" {
			t.Fatal("expected the applied coupon to be persisted")
		}
		if len(stored.SelectedAddOns) != 2 {
			t.Fatalf("expected 2 add-ons, got %d", len(stored.SelectedAddOns))
		}
	})

	t.Run("required add-on is included without selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newQuotationFixture(t, ctrl)

		setup := fixtureSetup()
		setup.AddOns[2].Required = true
		f.setupRepo.EXPECT().GetByID(gomock.Any(), "setup-1").Return(setup, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				return q, nil
			})

		got, err := f.uc.CreateQuotation(context.Background(), "client-1", "setup-1", nil, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.SelectedAddOns) != 1 || got.SelectedAddOns[0].ID != "hosting" {
			t.Fatalf("expected hosting to be auto-included, got %+v", got.SelectedAddOns)
		}
		if math.Abs(got.FinalPrice-1249) > 1e-9 {
			t.Fatalf("expected final price 1249, got %v", got.FinalPrice)
		}
	})

	t.Run("coupon below minimum blocks creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newQuotationFixture(t, ctrl)

		f.setupRepo.EXPECT().GetByID(gomock.Any(), "setup-1").Return(fixtureSetup(), nil)
		f.couponRepo.EXPECT().GetByCode(gomock.Any(), "BIGSPEND").Return(entities.Coupon{
			ID:             "cp-2",
			Code:           "BIGSPEND",
			Discount:       100,
			DiscountType:   entities.DiscountTypeFixed,
			MinOrderAmount: 5000,
			ValidUntil:     f.now.Add(24 * time.Hour),
			UsageLimit:     10,
			Active:         true,
		}, nil)

		_, err := f.uc.CreateQuotation(context.Background(), "client-1", "setup-1", nil, "BIGSPEND")
		if !errors.Is(err, ErrCouponBelowMinimum) {
			t.Fatalf("expected ErrCouponBelowMinimum, got %v", err)
		}
	})
}

func TestQuotationUseCase_ConfirmQuotation(t *testing.T) {
	confirmedQuotation := func(now time.Time) entities.Quotation {
		return entities.Quotation{
			ID:                "q-1",
			ClientID:          "client-1",
			ClientCode:        "CLI4F2K9",
			ProjectID:         "setup-1",
			AppliedCoupon:     &entities.Coupon{ID: "cp-1", Code: "WELCOME10"},
			FinalPrice:        1303.2,
			FinalDeliveryTime: 24,
			Status:            entities.QuotationStatusConfirmed,
			ClientConfirmed:   true,
			ConfirmedAt:       &now,
		}
	}

	workflowReady := func(now time.Time) entities.WorkflowStatus {
		ws := entities.NewWorkflowStatus("client-1", now)
		_ = ws.CompleteStep(entities.StepProjectSetup, now)
		_ = ws.CompleteStep(entities.StepInvitationSent, now)
		return ws
	}

	t.Run("winner records coupon usage and synthesizes the project once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newQuotationFixture(t, ctrl)
		q := confirmedQuotation(f.now)

		f.repo.EXPECT().UpdateStatus(gomock.Any(), "q-1",
			entities.QuotationStatusPendingApproval, entities.QuotationStatusConfirmed, gomock.Any()).Return(q, nil)
		f.couponRepo.EXPECT().IncrementUsage(gomock.Any(), "cp-1").Return(entities.Coupon{ID: "cp-1", UsedCount: 1}, nil)
		f.setupRepo.EXPECT().GetByID(gomock.Any(), "setup-1").Return(fixtureSetup(), nil)

		var created entities.RunningProject
		f.projectRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.RunningProject) (entities.RunningProject, error) {
				created = p
				return p, nil
			})

		tracker := workflowReady(f.now)
		f.workflowRepo.EXPECT().GetByClientID(gomock.Any(), "client-1").DoAndReturn(
			func(_ context.Context, _ string) (entities.WorkflowStatus, error) {
				return tracker, nil
			}).Times(2)
		f.workflowRepo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ws entities.WorkflowStatus) (entities.WorkflowStatus, error) {
				tracker = ws
				return ws, nil
			}).Times(2)
		f.notifier.EXPECT().NotifyQuotationDecision(gomock.Any(), gomock.Any()).Return(nil)

		got, err := f.uc.ConfirmQuotation(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !tracker.StepCompleted(entities.StepProjectRunning) {
			t.Fatal("expected project_running to be marked complete")
		}
		if got.ID != "q-1" || got.QuotationID != "q-1" {
			t.Fatalf("project id must equal the quotation id, got %+v", got)
		}
		if math.Abs(created.FinalPrice-1303.2) > 1e-9 {
			t.Fatalf("expected frozen price 1303.2, got %v", created.FinalPrice)
		}
		if created.FinalDeliveryTime != 24 {
			t.Fatalf("expected frozen delivery 24, got %d", created.FinalDeliveryTime)
		}
		if created.Status != entities.ProjectStatusActive {
			t.Fatalf("expected active project, got %s", created.Status)
		}
		if created.PaymentStatus != entities.PaymentStatusPending {
			t.Fatalf("expected pending payment, got %s", created.PaymentStatus)
		}
	})

	t.Run("retry after a transient project write failure resumes the confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newQuotationFixture(t, ctrl)
		q := confirmedQuotation(f.now)

		f.repo.EXPECT().UpdateStatus(gomock.Any(), "q-1",
			entities.QuotationStatusPendingApproval, entities.QuotationStatusConfirmed, gomock.Any()).Return(q, nil)
		f.couponRepo.EXPECT().IncrementUsage(gomock.Any(), "cp-1").Return(entities.Coupon{ID: "cp-1", UsedCount: 1}, nil)
		f.setupRepo.EXPECT().GetByID(gomock.Any(), "setup-1").Return(fixtureSetup(), nil).Times(2)
		f.projectRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.RunningProject{}, interfaces.ErrStorageUnavailable)

		_, err := f.uc.ConfirmQuotation(context.Background(), "q-1")
		if !errors.Is(err, interfaces.ErrStorageUnavailable) {
			t.Fatalf("expected ErrStorageUnavailable, got %v", err)
		}

		// The retry loses the conditional update against the now confirmed
		// quotation but must still produce the running project. A second
		// IncrementUsage would fail the test.
		f.repo.EXPECT().UpdateStatus(gomock.Any(), "q-1",
			entities.QuotationStatusPendingApproval, entities.QuotationStatusConfirmed, gomock.Any()).
			Return(entities.Quotation{}, interfaces.ErrConditionFailed)
		f.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		f.projectRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.RunningProject) (entities.RunningProject, error) {
				return p, nil
			})

		tracker := workflowReady(f.now)
		f.workflowRepo.EXPECT().GetByClientID(gomock.Any(), "client-1").DoAndReturn(
			func(_ context.Context, _ string) (entities.WorkflowStatus, error) {
				return tracker, nil
			}).Times(2)
		f.workflowRepo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ws entities.WorkflowStatus) (entities.WorkflowStatus, error) {
				tracker = ws
				return ws, nil
			}).Times(2)
		f.notifier.EXPECT().NotifyQuotationDecision(gomock.Any(), gomock.Any()).Return(nil)

		got, err := f.uc.ConfirmQuotation(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error on retry: %v", err)
		}
		if got.ID != "q-1" || got.QuotationID != "q-1" {
			t.Fatalf("expected the resumed project, got %+v", got)
		}
		if math.Abs(got.FinalPrice-1303.2) > 1e-9 {
			t.Fatalf("expected frozen price 1303.2, got %v", got.FinalPrice)
		}
	})

	t.Run("losing the CAS against a rejected quotation reports illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newQuotationFixture(t, ctrl)

		f.repo.EXPECT().UpdateStatus(gomock.Any(), "q-1",
			entities.QuotationStatusPendingApproval, entities.QuotationStatusConfirmed, gomock.Any()).
			Return(entities.Quotation{}, interfaces.ErrConditionFailed)
		f.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{
			ID: "q-1", Status: entities.QuotationStatusRejected,
		}, nil)

		_, err := f.uc.ConfirmQuotation(context.Background(), "q-1")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("missing quotation reports not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newQuotationFixture(t, ctrl)

		f.repo.EXPECT().UpdateStatus(gomock.Any(), "ghost",
			entities.QuotationStatusPendingApproval, entities.QuotationStatusConfirmed, gomock.Any()).
			Return(entities.Quotation{}, interfaces.ErrConditionFailed)
		f.repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Quotation{}, nil)

		_, err := f.uc.ConfirmQuotation(context.Background(), "ghost")
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("retry finds the already created project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newQuotationFixture(t, ctrl)
		q := confirmedQuotation(f.now)

		f.repo.EXPECT().UpdateStatus(gomock.Any(), "q-1",
			entities.QuotationStatusPendingApproval, entities.QuotationStatusConfirmed, gomock.Any()).Return(q, nil)
		f.couponRepo.EXPECT().IncrementUsage(gomock.Any(), "cp-1").Return(entities.Coupon{ID: "cp-1"}, nil)
		f.setupRepo.EXPECT().GetByID(gomock.Any(), "setup-1").Return(fixtureSetup(), nil)
		f.projectRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.RunningProject{}, interfaces.ErrConditionFailed)
		f.projectRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.RunningProject{ID: "q-1", QuotationID: "q-1"}, nil)

		tracker := workflowReady(f.now)
		f.workflowRepo.EXPECT().GetByClientID(gomock.Any(), "client-1").DoAndReturn(
			func(_ context.Context, _ string) (entities.WorkflowStatus, error) {
				return tracker, nil
			}).Times(2)
		f.workflowRepo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ws entities.WorkflowStatus) (entities.WorkflowStatus, error) {
				tracker = ws
				return ws, nil
			}).Times(2)
		f.notifier.EXPECT().NotifyQuotationDecision(gomock.Any(), gomock.Any()).Return(nil)

		got, err := f.uc.ConfirmQuotation(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "q-1" {
			t.Fatalf("expected the stored project, got %+v", got)
		}
	})
}

func TestQuotationUseCase_RejectQuotation(t *testing.T) {
	t.Run("rejection has no coupon side effects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newQuotationFixture(t, ctrl)

		rejected := entities.Quotation{
			ID:             "q-1",
			ClientID:       "client-1",
			AppliedCoupon:  &entities.Coupon{ID: "cp-1"},
			Status:         entities.QuotationStatusRejected,
			RejectedReason: "too expensive",
		}
		f.repo.EXPECT().UpdateStatus(gomock.Any(), "q-1",
			entities.QuotationStatusPendingApproval, entities.QuotationStatusRejected,
			interfaces.QuotationStatusUpdate{RejectedReason: "too expensive"}).Return(rejected, nil)
		f.notifier.EXPECT().NotifyQuotationDecision(gomock.Any(), gomock.Any()).Return(nil)

		// No IncrementUsage expectation: recording usage here would fail the test.
		got, err := f.uc.RejectQuotation(context.Background(), "q-1", " too expensive ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.QuotationStatusRejected {
			t.Fatalf("expected rejected, got %s", got.Status)
		}
	})

	t.Run("confirming after rejection is illegal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newQuotationFixture(t, ctrl)

		f.repo.EXPECT().UpdateStatus(gomock.Any(), "q-1",
			entities.QuotationStatusPendingApproval, entities.QuotationStatusRejected, gomock.Any()).
			Return(entities.Quotation{}, interfaces.ErrConditionFailed)
		f.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{
			ID: "q-1", Status: entities.QuotationStatusConfirmed,
		}, nil)

		_, err := f.uc.RejectQuotation(context.Background(), "q-1", "")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})
}
