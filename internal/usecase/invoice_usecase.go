package usecase

import (
	"context"

	"vexor/internal/domain/entity"

	"github.com/google/uuid"
)

// InvoiceItem is one order line joined with the product's current cost
// data. Cost is looked up at invoice-generation time, not from the order
// snapshot; CostPrice stays nil for SKUs without recorded cost.
type InvoiceItem struct {
	entity.OrderItem
	CostPrice  *float64 `json:"cost_price,omitempty"`
	ItemCost   float64  `json:"item_cost"`
	ItemProfit float64  `json:"item_profit"`
}

// Invoice is the read-only profit derivation over a persisted order.
type Invoice struct {
	Order       *entity.Order `json:"order"`
	Items       []InvoiceItem `json:"items_with_cost"`
	TotalCost   float64       `json:"total_cost"`
	TotalProfit float64       `json:"total_profit"`
	Margin      float64       `json:"margin"`
}

// DashboardStats is the admin dashboard aggregate.
type DashboardStats struct {
	TotalRevenue  float64           `json:"total_revenue"`
	MonthlySales  float64           `json:"monthly_sales"`
	TotalCost     float64           `json:"total_cost"`
	TotalProfit   float64           `json:"total_profit"`
	ProfitMargin  float64           `json:"profit_margin"`
	TotalOrders   int64             `json:"total_orders"`
	PendingOrders int64             `json:"pending_orders"`
	TopProducts   []*entity.Product `json:"top_products"`
}

// InvoiceUsecase derives cost/profit/margin figures from persisted orders.
// Read-only; it never mutates order state.
type InvoiceUsecase interface {
	// GetInvoice joins an order with current product costs. Items whose
	// product lacks a cost price contribute zero profit, not an error.
	GetInvoice(ctx context.Context, orderID uuid.UUID) (*Invoice, error)

	// GetDashboardStats aggregates revenue, cost, and profit over completed
	// orders, plus order counts and the best-selling products.
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}
