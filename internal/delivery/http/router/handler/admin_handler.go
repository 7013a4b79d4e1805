package handler

import (
	"log/slog"
	"net/http"

	"vexor/internal/delivery/http/response"
	"vexor/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	InvoiceUC usecase.InvoiceUsecase
	Logger    *slog.Logger
}

// AdminHandler holds dependencies for the reporting side of the admin surface
type AdminHandler struct {
	invoiceUC usecase.InvoiceUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		invoiceUC: params.InvoiceUC,
		logger:    params.Logger,
	}
}

// GetInvoice handles deriving the cost/profit invoice for an order
func (h *AdminHandler) GetInvoice(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	invoice, err := h.invoiceUC.GetInvoice(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invoice, "Invoice generated successfully")
}

// GetDashboardStats handles the admin dashboard aggregate
func (h *AdminHandler) GetDashboardStats(c echo.Context) error {
	stats, err := h.invoiceUC.GetDashboardStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Dashboard stats retrieved successfully")
}
