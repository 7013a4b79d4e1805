package impl

import (
	"context"
	"log/slog"

	"vexor/internal/domain/entity"
	domainerrors "vexor/internal/domain/errors"
	"vexor/internal/domain/repository"
	"vexor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const topProductsLimit = 5

// invoiceService implements the InvoiceUsecase interface. It is a read-only
// derivation over persisted orders: cost prices are looked up from the
// catalog at generation time, while line prices always come from the order
// snapshot.
type invoiceService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewInvoiceService is the constructor for invoiceService.
func NewInvoiceService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	logger *slog.Logger,
) usecase.InvoiceUsecase {
	return &invoiceService{
		orders:   orders,
		products: products,
		logger:   logger,
	}
}

// GetInvoice joins an order with current product cost data.
func (srv *invoiceService) GetInvoice(ctx context.Context, orderID uuid.UUID) (*usecase.Invoice, error) {
	order, err := srv.orders.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	invoice := &usecase.Invoice{
		Order: order,
		Items: make([]usecase.InvoiceItem, 0, len(order.Items)),
	}

	costs := newCostIndex(ctx, srv.products)
	for _, item := range order.Items {
		entry := usecase.InvoiceItem{OrderItem: item}

		// Missing cost data contributes zero, not an error; most catalogs
		// lack historical cost for some SKUs.
		if cost := costs.lookup(item.ProductID); cost != nil {
			entry.CostPrice = cost
			entry.ItemCost = *cost * float64(item.Quantity)
			entry.ItemProfit = (item.Price - *cost) * float64(item.Quantity)
			invoice.TotalCost += entry.ItemCost
			invoice.TotalProfit += entry.ItemProfit
		}

		invoice.Items = append(invoice.Items, entry)
	}

	invoice.Margin = marginOf(invoice.TotalProfit, order.FinalAmount)

	return invoice, nil
}

// GetDashboardStats aggregates revenue, cost, and profit over completed
// orders plus order counts and best sellers.
func (srv *invoiceService) GetDashboardStats(ctx context.Context) (*usecase.DashboardStats, error) {
	sales, err := srv.orders.SalesStats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate sales stats")
	}

	completed, err := srv.orders.FindOrdersByPaymentStatus(ctx, entity.PaymentStatusCompleted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list completed orders")
	}

	stats := &usecase.DashboardStats{
		TotalRevenue:  sales.TotalRevenue,
		MonthlySales:  sales.MonthlySales,
		TotalOrders:   sales.TotalOrders,
		PendingOrders: sales.PendingOrders,
	}

	costs := newCostIndex(ctx, srv.products)
	for _, order := range completed {
		for _, item := range order.Items {
			cost := costs.lookup(item.ProductID)
			if cost == nil {
				continue
			}
			stats.TotalCost += *cost * float64(item.Quantity)
			stats.TotalProfit += (item.Price - *cost) * float64(item.Quantity)
		}
	}
	stats.ProfitMargin = marginOf(stats.TotalProfit, stats.TotalRevenue)

	top, err := srv.products.TopProductsBySold(ctx, topProductsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list top products")
	}
	stats.TopProducts = top

	return stats, nil
}

// costIndex memoizes cost-price lookups so repeated line items do not hit
// the catalog once per occurrence. Deleted products resolve to nil cost.
type costIndex struct {
	ctx      context.Context
	products repository.ProductRepository
	cache    map[uuid.UUID]*float64
}

func newCostIndex(ctx context.Context, products repository.ProductRepository) *costIndex {
	return &costIndex{
		ctx:      ctx,
		products: products,
		cache:    make(map[uuid.UUID]*float64),
	}
}

func (idx *costIndex) lookup(productID uuid.UUID) *float64 {
	if cost, ok := idx.cache[productID]; ok {
		return cost
	}

	var cost *float64
	if product, err := idx.products.FindProductByID(idx.ctx, productID); err == nil {
		cost = product.CostPrice
	}
	idx.cache[productID] = cost

	return cost
}

// marginOf guards the division: an order that nets zero revenue reports a
// zero margin instead of an error.
func marginOf(profit, revenue float64) float64 {
	if revenue <= 0 {
		return 0
	}

	return profit / revenue * 100
}
