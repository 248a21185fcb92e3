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
	errInvalidSetupPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_SETUP_INPUT", "Invalid project setup payload", http.StatusBadRequest)
)

// ProjectSetupHandler handles HTTP requests for the per-client project
// setup catalog (base price, add-ons, coupon codes).

type ProjectSetupHandler struct {
	usecase usecase.IProjectSetupUseCase
}

func NewProjectSetupHandler(uc usecase.IProjectSetupUseCase) *ProjectSetupHandler {
	return &ProjectSetupHandler{usecase: uc}
}

func (h *ProjectSetupHandler) CreateProjectSetup(c *gin.Context) {
	var payload request.CreateProjectSetupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSetupPayload.HTTPStatus, errInvalidSetupPayload.ToHTTPError())
		return
	}

	setup, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapProjectSetupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProjectSetup(setup))
}

func (h *ProjectSetupHandler) GetProjectSetupByID(c *gin.Context) {
	setup, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectSetupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjectSetup(setup))
}

func (h *ProjectSetupHandler) GetProjectSetupByClientID(c *gin.Context) {
	setup, err := h.usecase.GetByClientID(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		appErr := mapProjectSetupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjectSetup(setup))
}

func mapProjectSetupError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSetup), errors.Is(err, usecase.ErrInvalidSetupID),
		errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSetupNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_SETUP_NOT_FOUND", "Project setup not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSetupAlreadyExists):
		return pkg.NewDomainErrorSimple("PROJECT_SETUP_ALREADY_EXISTS", "Project setup already exists for this client", http.StatusConflict)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
