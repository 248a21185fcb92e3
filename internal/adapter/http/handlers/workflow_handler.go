package handlers

import (
	"errors"
	"net/http"

	request "studio_quotation/internal/adapter/http/dto/request"
	response "studio_quotation/internal/adapter/http/dto/response"
	"studio_quotation/internal/usecase"
	"studio_quotation/internal/usecase/interfaces"
	"studio_quotation/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWorkflowPayload = pkg.NewDomainErrorSimple("INVALID_WORKFLOW_INPUT", "Invalid workflow payload", http.StatusBadRequest)
)

// WorkflowHandler handles HTTP requests for the per-client workflow
// progress tracker.

type WorkflowHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewWorkflowHandler(uc usecase.IWorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc}
}

func (h *WorkflowHandler) GetWorkflowStatus(c *gin.Context) {
	status, err := h.usecase.GetStatus(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkflowStatus(status))
}

// CompleteWorkflowStep marks a named step complete. Steps only advance
// in their fixed order; skipping ahead is a conflict.
func (h *WorkflowHandler) CompleteWorkflowStep(c *gin.Context) {
	var payload request.CompleteStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}

	step, ok := payload.ResolveStep()
	if !ok {
		appErr := mapWorkflowError(usecase.ErrInvalidWorkflowStep)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status, err := h.usecase.CompleteStep(c.Request.Context(), c.Param("client_id"), step)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkflowStatus(status))
}

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidWorkflowStep):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkflowNotFound):
		return pkg.NewDomainErrorSimple("WORKFLOW_NOT_FOUND", "Workflow status not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkflowSequence):
		return pkg.NewDomainErrorSimple("WORKFLOW_STEP_OUT_OF_ORDER", "Workflow steps must be completed in order", http.StatusConflict)
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
