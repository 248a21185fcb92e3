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
	errInvalidProgressPayload = pkg.NewDomainErrorSimple("INVALID_PROGRESS_INPUT", "Invalid progress payload", http.StatusBadRequest)
)

// RunningProjectHandler handles HTTP requests for projects created from
// confirmed quotations.

type RunningProjectHandler struct {
	usecase usecase.IRunningProjectUseCase
}

func NewRunningProjectHandler(uc usecase.IRunningProjectUseCase) *RunningProjectHandler {
	return &RunningProjectHandler{usecase: uc}
}

func (h *RunningProjectHandler) GetProjectByID(c *gin.Context) {
	project, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRunningProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRunningProject(project))
}

func (h *RunningProjectHandler) ListProjectsByClientID(c *gin.Context) {
	projects, err := h.usecase.ListByClientID(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		appErr := mapRunningProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRunningProjects(projects))
}

func (h *RunningProjectHandler) UpdateProjectProgress(c *gin.Context) {
	var payload request.UpdateProgressRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.OverallProgress == nil {
		c.JSON(errInvalidProgressPayload.HTTPStatus, errInvalidProgressPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.UpdateProgress(c.Request.Context(), c.Param("id"), *payload.OverallProgress, payload.ResolveMilestones())
	if err != nil {
		appErr := mapRunningProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRunningProject(project))
}

// CompleteProject marks the project finished and completes the final
// workflow step for the client.
func (h *RunningProjectHandler) CompleteProject(c *gin.Context) {
	project, err := h.usecase.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRunningProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRunningProject(project))
}

func mapRunningProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidProgress),
		errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectCompleted):
		return pkg.NewDomainErrorSimple("PROJECT_ALREADY_COMPLETED", "Project already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkflowSequence):
		return pkg.NewDomainErrorSimple("WORKFLOW_STEP_OUT_OF_ORDER", "Workflow steps must be completed in order", http.StatusConflict)
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
