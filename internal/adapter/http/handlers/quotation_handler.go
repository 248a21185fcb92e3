package handlers

import (
	"errors"
	"net/http"

	request "studio_quotation/internal/adapter/http/dto/request"
	response "studio_quotation/internal/adapter/http/dto/response"
	"studio_quotation/internal/domain/entities"
	"studio_quotation/internal/usecase"
	"studio_quotation/internal/usecase/interfaces"
	"studio_quotation/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
)

// QuotationHandler handles HTTP requests for quotations, including the
// confirm/reject decisions that move them through the status machine.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// CreateQuotation prices the selected add-ons against the client's
// project setup and stores the result as pending approval.
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	quotation, err := h.usecase.CreateQuotation(c.Request.Context(), payload.ClientID, payload.ProjectSetupID, payload.SelectedAddOnIDs, payload.CouponCode)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotation(quotation))
}

// ConfirmQuotation accepts a pending quotation and returns the running
// project synthesized from it.
func (h *QuotationHandler) ConfirmQuotation(c *gin.Context) {
	project, err := h.usecase.ConfirmQuotation(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRunningProject(project))
}

func (h *QuotationHandler) RejectQuotation(c *gin.Context) {
	// The reason is optional; an empty or absent body is fine.
	var payload request.RejectQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		payload = request.RejectQuotationRequest{}
	}

	quotation, err := h.usecase.RejectQuotation(c.Request.Context(), c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

func (h *QuotationHandler) GetQuotationByID(c *gin.Context) {
	quotation, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

func (h *QuotationHandler) ListQuotationsByClientID(c *gin.Context) {
	quotations, err := h.usecase.ListByClientID(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotations(quotations))
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidSetupID), errors.Is(err, usecase.ErrUnknownAddOn),
		errors.Is(err, entities.ErrUnknownDiscountType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSetupNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_SETUP_NOT_FOUND", "Project setup not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Quotation is not pending approval", http.StatusConflict)
	case errors.Is(err, usecase.ErrCouponNotFound), errors.Is(err, usecase.ErrCouponInactive),
		errors.Is(err, usecase.ErrCouponExpired), errors.Is(err, usecase.ErrCouponBelowMinimum),
		errors.Is(err, usecase.ErrCouponLimitReached):
		return mapCouponError(err)
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
