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
	errInvalidAccessCodePayload = pkg.NewDomainErrorSimple("INVALID_ACCESS_CODE_INPUT", "Invalid access code payload", http.StatusBadRequest)
)

// AccessCodeHandler handles HTTP requests for invitation access codes.

type AccessCodeHandler struct {
	usecase usecase.IAccessCodeUseCase
}

func NewAccessCodeHandler(uc usecase.IAccessCodeUseCase) *AccessCodeHandler {
	return &AccessCodeHandler{usecase: uc}
}

// IssueAccessCode creates a single-use code bound to a client email.
func (h *AccessCodeHandler) IssueAccessCode(c *gin.Context) {
	var payload request.IssueAccessCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAccessCodePayload.HTTPStatus, errInvalidAccessCodePayload.ToHTTPError())
		return
	}

	code, err := h.usecase.Issue(c.Request.Context(), payload.Email, payload.Name, payload.ResolveRole())
	if err != nil {
		appErr := mapAccessCodeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAccessCode(code))
}

// ValidateAccessCode checks a code without consuming it.
func (h *AccessCodeHandler) ValidateAccessCode(c *gin.Context) {
	var payload request.ValidateAccessCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAccessCodePayload.HTTPStatus, errInvalidAccessCodePayload.ToHTTPError())
		return
	}

	code, err := h.usecase.Validate(c.Request.Context(), payload.Code)
	if err != nil {
		appErr := mapAccessCodeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAccessCode(code))
}

// ConsumeAccessCode marks a code as used; only one caller can win.
func (h *AccessCodeHandler) ConsumeAccessCode(c *gin.Context) {
	var payload request.ConsumeAccessCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAccessCodePayload.HTTPStatus, errInvalidAccessCodePayload.ToHTTPError())
		return
	}

	code, err := h.usecase.Consume(c.Request.Context(), payload.CodeID)
	if err != nil {
		appErr := mapAccessCodeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAccessCode(code))
}

func (h *AccessCodeHandler) ListAccessCodes(c *gin.Context) {
	codes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapAccessCodeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.AccessCodeResponse, 0, len(codes))
	for _, code := range codes {
		out = append(out, response.FromAccessCode(code))
	}
	c.JSON(http.StatusOK, out)
}

func (h *AccessCodeHandler) CleanupExpiredAccessCodes(c *gin.Context) {
	removed, err := h.usecase.CleanupExpired(c.Request.Context())
	if err != nil {
		appErr := mapAccessCodeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.CleanupResponse{Removed: removed})
}

func mapAccessCodeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail), errors.Is(err, usecase.ErrInvalidRole),
		errors.Is(err, usecase.ErrInvalidAccessCode), errors.Is(err, usecase.ErrInvalidAccessCodeID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCodeNotFound):
		return pkg.NewDomainErrorSimple("ACCESS_CODE_NOT_FOUND", "Access code not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCodeExpired):
		return pkg.NewDomainErrorSimple("ACCESS_CODE_EXPIRED", "Access code expired", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrCodeAlreadyUsed):
		return pkg.NewDomainErrorSimple("ACCESS_CODE_ALREADY_USED", "Access code already used", http.StatusConflict)
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
