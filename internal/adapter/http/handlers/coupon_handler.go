package handlers

import (
	"errors"
	"net/http"
	"time"

	request "studio_quotation/internal/adapter/http/dto/request"
	response "studio_quotation/internal/adapter/http/dto/response"
	"studio_quotation/internal/usecase"
	"studio_quotation/internal/usecase/interfaces"
	"studio_quotation/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCouponPayload = pkg.NewDomainErrorSimple("INVALID_COUPON_INPUT", "Invalid coupon payload", http.StatusBadRequest)
)

// CouponHandler handles HTTP requests for discount coupons.

type CouponHandler struct {
	usecase usecase.ICouponUseCase
}

func NewCouponHandler(uc usecase.ICouponUseCase) *CouponHandler {
	return &CouponHandler{usecase: uc}
}

func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var payload request.CreateCouponRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCouponPayload.HTTPStatus, errInvalidCouponPayload.ToHTTPError())
		return
	}

	coupon, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCoupon(coupon))
}

func (h *CouponHandler) GetCouponByCode(c *gin.Context) {
	coupon, err := h.usecase.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCoupon(coupon))
}

// ValidateCoupon checks a coupon against an order amount and reports the
// discount it would apply. It does not consume usage.
func (h *CouponHandler) ValidateCoupon(c *gin.Context) {
	var payload request.ValidateCouponRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCouponPayload.HTTPStatus, errInvalidCouponPayload.ToHTTPError())
		return
	}

	coupon, err := h.usecase.Validate(c.Request.Context(), payload.Code, payload.OrderAmount, time.Now())
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	discount, err := coupon.DiscountFor(payload.OrderAmount)
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCouponValidation(coupon, payload.OrderAmount, discount))
}

func mapCouponError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCouponCode), errors.Is(err, usecase.ErrInvalidCouponValue):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCouponExists):
		return pkg.NewDomainErrorSimple("COUPON_ALREADY_EXISTS", "Coupon code already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrCouponNotFound):
		return pkg.NewDomainErrorSimple("COUPON_NOT_FOUND", "Coupon not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCouponInactive):
		return pkg.NewDomainErrorSimple("COUPON_INACTIVE", "Coupon is not active", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCouponExpired):
		return pkg.NewDomainErrorSimple("COUPON_EXPIRED", "Coupon expired", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCouponBelowMinimum):
		return pkg.NewDomainErrorSimple("COUPON_BELOW_MINIMUM", "Order amount below coupon minimum", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCouponLimitReached):
		return pkg.NewDomainErrorSimple("COUPON_LIMIT_REACHED", "Coupon usage limit reached", http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
