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

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAccessCodeHandler_IssueAccessCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccessCodeUseCase(ctrl)
		h := NewAccessCodeHandler(uc)

		r := gin.New()
		r.POST("/v1/access-codes", h.IssueAccessCode)

		req := httptest.NewRequest(http.MethodPost, "/v1/access-codes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccessCodeUseCase(ctrl)
		h := NewAccessCodeHandler(uc)

		r := gin.New()
		r.POST("/v1/access-codes", h.IssueAccessCode)

		req := httptest.NewRequest(http.MethodPost, "/v1/access-codes", bytes.NewBufferString(`{"name":"Alice"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success defaults the role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccessCodeUseCase(ctrl)
		h := NewAccessCodeHandler(uc)

		r := gin.New()
		r.POST("/v1/access-codes", h.IssueAccessCode)

		now := time.Now().UTC()
		uc.EXPECT().Issue(gomock.Any(), "alice@example.com", "Alice", entities.AccessCodeRoleUser).
			Return(entities.AccessCode{
				ID:        "ac-1",
				Code:      "ABCD1234",
				Email:     "alice@example.com",
				Name:      "Alice",
				Role:      entities.AccessCodeRoleUser,
				ExpiresAt: now.Add(7 * 24 * time.Hour),
				CreatedAt: now,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/access-codes", bytes.NewBufferString(`{"email":"alice@example.com","name":"Alice"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "ABCD1234" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestAccessCodeHandler_ValidateAccessCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccessCodeUseCase(ctrl)
		h := NewAccessCodeHandler(uc)

		r := gin.New()
		r.POST("/v1/access-codes/validate", h.ValidateAccessCode)

		uc.EXPECT().Validate(gomock.Any(), "ABCD1234").Return(entities.AccessCode{}, usecase.ErrCodeExpired)

		req := httptest.NewRequest(http.MethodPost, "/v1/access-codes/validate", bytes.NewBufferString(`{"code":"ABCD1234"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccessCodeUseCase(ctrl)
		h := NewAccessCodeHandler(uc)

		r := gin.New()
		r.POST("/v1/access-codes/validate", h.ValidateAccessCode)

		uc.EXPECT().Validate(gomock.Any(), "ABCD1234").Return(entities.AccessCode{ID: "ac-1", Code: "ABCD1234"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/access-codes/validate", bytes.NewBufferString(`{"code":"ABCD1234"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAccessCodeHandler_ConsumeAccessCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already used", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccessCodeUseCase(ctrl)
		h := NewAccessCodeHandler(uc)

		r := gin.New()
		r.PATCH("/v1/access-codes/consume", h.ConsumeAccessCode)

		uc.EXPECT().Consume(gomock.Any(), "ac-1").Return(entities.AccessCode{}, usecase.ErrCodeAlreadyUsed)

		req := httptest.NewRequest(http.MethodPatch, "/v1/access-codes/consume", bytes.NewBufferString(`{"code_id":"ac-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestAccessCodeHandler_CleanupExpiredAccessCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAccessCodeUseCase(ctrl)
	h := NewAccessCodeHandler(uc)

	r := gin.New()
	r.DELETE("/v1/access-codes/expired", h.CleanupExpiredAccessCodes)

	uc.EXPECT().CleanupExpired(gomock.Any()).Return(3, nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/access-codes/expired", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["removed"] != float64(3) {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMapAccessCodeError(t *testing.T) {
	if got := mapAccessCodeError(usecase.ErrInvalidEmail); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAccessCodeError(usecase.ErrCodeNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapAccessCodeError(usecase.ErrCodeExpired); got.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401")
	}
	if got := mapAccessCodeError(usecase.ErrCodeAlreadyUsed); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapAccessCodeError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
