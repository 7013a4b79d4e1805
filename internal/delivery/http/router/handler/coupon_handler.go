package handler

import (
	"log/slog"
	"net/http"

	"vexor/internal/delivery/http/middleware"
	"vexor/internal/delivery/http/response"
	"vexor/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CouponHandlerParams holds dependencies for CouponHandler, injected by Fx.
type CouponHandlerParams struct {
	fx.In

	CouponUC  usecase.CouponUsecase
	PricingUC usecase.PricingUsecase
	CartUC    usecase.CartUsecase
	Logger    *slog.Logger
}

// CouponHandler holds dependencies for coupon-related handlers
type CouponHandler struct {
	couponUC  usecase.CouponUsecase
	pricingUC usecase.PricingUsecase
	cartUC    usecase.CartUsecase
	logger    *slog.Logger
}

// NewCouponHandler is the constructor for CouponHandler
func NewCouponHandler(params CouponHandlerParams) *CouponHandler {
	return &CouponHandler{
		couponUC:  params.CouponUC,
		pricingUC: params.PricingUC,
		cartUC:    params.CartUC,
		logger:    params.Logger,
	}
}

// ValidateCouponRequest represents the request body for quoting a coupon
type ValidateCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

// ValidateCoupon quotes a coupon against the customer's current cart without
// spending a use; redemption happens at checkout
func (h *CouponHandler) ValidateCoupon(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ValidateCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	subtotal := h.pricingUC.ComputeSubtotal(cart.Items)
	quote, err := h.pricingUC.ValidateCoupon(c.Request().Context(), req.Code, subtotal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote, "Coupon is valid")
}

// CreateCoupon handles creating a coupon (staff only)
func (h *CouponHandler) CreateCoupon(c echo.Context) error {
	var req usecase.CreateCouponInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	coupon, err := h.couponUC.CreateCoupon(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, coupon, "Coupon created successfully")
}

// ListCoupons handles listing all coupons (staff only)
func (h *CouponHandler) ListCoupons(c echo.Context) error {
	coupons, err := h.couponUC.ListCoupons(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, coupons, "Coupons retrieved successfully")
}

// DeleteCoupon handles removing a coupon (staff only)
func (h *CouponHandler) DeleteCoupon(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid coupon ID")
	}

	if err := h.couponUC.DeleteCoupon(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Coupon deleted"}, "Coupon deleted successfully")
}
