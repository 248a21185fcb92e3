package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studio_quotation/internal/adapter/http/handlers/mocks"
	"studio_quotation/internal/domain/entities"
	"studio_quotation/internal/usecase"
	"studio_quotation/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuotationHandler_CreateQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown add-on", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		uc.EXPECT().CreateQuotation(gomock.Any(), "client-1", "setup-1", []string{"ghost"}, "").
			Return(entities.Quotation{}, usecase.ErrUnknownAddOn)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(`{"client_id":"client-1","project_setup_id":"setup-1","selected_add_on_ids":["ghost"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success rounds money in the response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		now := time.Now().UTC()
		uc.EXPECT().CreateQuotation(gomock.Any(), "client-1", "setup-1", []string{"seo", "cms"}, "WELCOME10").
			Return(entities.Quotation{
				ID:             "q-1",
				ClientID:       "client-1",
				Subtotal:       1448,
				DiscountAmount: 144.80000000000001,
				FinalPrice:     1303.2000000000003,
				Status:         entities.QuotationStatusPendingApproval,
				CreatedAt:      now,
				UpdatedAt:      now,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(`{"client_id":"client-1","project_setup_id":"setup-1","selected_add_on_ids":["seo","cms"],"coupon_code":"WELCOME10"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "q-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["final_price"] != 1303.2 {
			t.Fatalf("expected final price 1303.2, got %v", body["final_price"])
		}
		if body["discount_amount"] != 144.8 {
			t.Fatalf("expected discount 144.8, got %v", body["discount_amount"])
		}
	})
}

func TestQuotationHandler_ConfirmQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns the running project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/confirm", h.ConfirmQuotation)

		uc.EXPECT().ConfirmQuotation(gomock.Any(), "q-1").
			Return(entities.RunningProject{ID: "q-1", ClientID: "client-1", Status: entities.ProjectStatusActive}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != string(entities.ProjectStatusActive) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/confirm", h.ConfirmQuotation)

		uc.EXPECT().ConfirmQuotation(gomock.Any(), "q-1").
			Return(entities.RunningProject{}, usecase.ErrIllegalTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_RejectQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("body is optional", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/reject", h.RejectQuotation)

		uc.EXPECT().RejectQuotation(gomock.Any(), "q-1", "").
			Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusRejected}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reason is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/reject", h.RejectQuotation)

		uc.EXPECT().RejectQuotation(gomock.Any(), "q-1", "too expensive").
			Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusRejected}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/reject", bytes.NewBufferString(`{"reason":"too expensive"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_GetQuotationByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.GET("/v1/quotations/:id", h.GetQuotationByID)

		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Quotation{}, usecase.ErrQuotationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapQuotationError(t *testing.T) {
	if got := mapQuotationError(usecase.ErrInvalidQuotationID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuotationError(entities.ErrUnknownDiscountType); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuotationError(usecase.ErrQuotationNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuotationError(usecase.ErrIllegalTransition); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapQuotationError(usecase.ErrCouponExpired); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapQuotationError(interfaces.ErrStorageUnavailable); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapQuotationError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
