package impl

import (
	"context"
	"testing"

	"vexor/internal/domain/entity"
	domainerrors "vexor/internal/domain/errors"
	"vexor/internal/domain/repository"
	mockRepo "vexor/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceService_GetInvoice_DerivesCostAndProfit(t *testing.T) {
	mockOrders := mockRepo.NewMockOrderRepository(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewInvoiceService(mockOrders, mockProducts, newDiscardLogger())

	ctx := context.Background()
	orderID := uuid.New()
	productID := uuid.New()

	order := &entity.Order{
		ID:          orderID,
		FinalAmount: 3000,
		Items: []entity.OrderItem{
			{ProductID: productID, ProductName: "Oxford Shirt", Quantity: 2, Price: 1500},
		},
	}

	mockOrders.EXPECT().FindOrderByID(ctx, orderID).Return(order, nil)
	mockProducts.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, CostPrice: floatPtr(600)}, nil)

	invoice, err := service.GetInvoice(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, invoice.Items, 1)

	// 2 units at 600 cost against 1500 revenue each.
	assert.Equal(t, float64(1200), invoice.TotalCost)
	assert.Equal(t, float64(1800), invoice.TotalProfit)
	assert.InDelta(t, 60.0, invoice.Margin, 1e-9)
	assert.Equal(t, float64(1200), invoice.Items[0].ItemCost)
	assert.Equal(t, float64(1800), invoice.Items[0].ItemProfit)
}

func TestInvoiceService_GetInvoice_DeletedProductContributesZero(t *testing.T) {
	mockOrders := mockRepo.NewMockOrderRepository(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewInvoiceService(mockOrders, mockProducts, newDiscardLogger())

	ctx := context.Background()
	orderID := uuid.New()
	goneID := uuid.New()

	order := &entity.Order{
		ID:          orderID,
		FinalAmount: 1500,
		Items: []entity.OrderItem{
			{ProductID: goneID, ProductName: "Retired Shirt", Quantity: 1, Price: 1500},
		},
	}

	mockOrders.EXPECT().FindOrderByID(ctx, orderID).Return(order, nil)
	mockProducts.EXPECT().
		FindProductByID(ctx, goneID).
		Return(nil, repository.ErrProductNotFound)

	invoice, err := service.GetInvoice(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, invoice.Items, 1)

	assert.Nil(t, invoice.Items[0].CostPrice)
	assert.Equal(t, float64(0), invoice.TotalCost)
	assert.Equal(t, float64(0), invoice.TotalProfit)
	assert.Equal(t, float64(0), invoice.Margin)
}

func TestInvoiceService_GetInvoice_MissingCostPriceContributesZero(t *testing.T) {
	mockOrders := mockRepo.NewMockOrderRepository(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewInvoiceService(mockOrders, mockProducts, newDiscardLogger())

	ctx := context.Background()
	orderID := uuid.New()
	knownID := uuid.New()
	uncostedID := uuid.New()

	order := &entity.Order{
		ID:          orderID,
		FinalAmount: 2300,
		Items: []entity.OrderItem{
			{ProductID: knownID, Quantity: 1, Price: 1500},
			{ProductID: uncostedID, Quantity: 1, Price: 800},
		},
	}

	mockOrders.EXPECT().FindOrderByID(ctx, orderID).Return(order, nil)
	mockProducts.EXPECT().
		FindProductByID(ctx, knownID).
		Return(&entity.Product{ID: knownID, CostPrice: floatPtr(500)}, nil)
	mockProducts.EXPECT().
		FindProductByID(ctx, uncostedID).
		Return(&entity.Product{ID: uncostedID}, nil)

	invoice, err := service.GetInvoice(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, float64(500), invoice.TotalCost)
	assert.Equal(t, float64(1000), invoice.TotalProfit)
}

func TestInvoiceService_GetInvoice_OrderNotFound(t *testing.T) {
	mockOrders := mockRepo.NewMockOrderRepository(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewInvoiceService(mockOrders, mockProducts, newDiscardLogger())

	ctx := context.Background()
	orderID := uuid.New()

	mockOrders.EXPECT().FindOrderByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := service.GetInvoice(ctx, orderID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestInvoiceService_GetDashboardStats(t *testing.T) {
	mockOrders := mockRepo.NewMockOrderRepository(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewInvoiceService(mockOrders, mockProducts, newDiscardLogger())

	ctx := context.Background()
	productID := uuid.New()

	mockOrders.EXPECT().
		SalesStats(ctx).
		Return(&repository.SalesStats{
			TotalRevenue:  10000,
			MonthlySales:  4000,
			TotalOrders:   12,
			PendingOrders: 3,
		}, nil)

	completed := []*entity.Order{
		{Items: []entity.OrderItem{{ProductID: productID, Quantity: 2, Price: 1500}}},
		{Items: []entity.OrderItem{{ProductID: productID, Quantity: 1, Price: 1500}}},
	}
	mockOrders.EXPECT().
		FindOrdersByPaymentStatus(ctx, entity.PaymentStatusCompleted).
		Return(completed, nil)

	// The cost index memoizes, so the repeated product is fetched once.
	mockProducts.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, CostPrice: floatPtr(600)}, nil).
		Once()

	top := []*entity.Product{{ID: productID, Name: "Oxford Shirt", TotalSold: 30}}
	mockProducts.EXPECT().TopProductsBySold(ctx, 5).Return(top, nil)

	stats, err := service.GetDashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, float64(10000), stats.TotalRevenue)
	assert.Equal(t, float64(4000), stats.MonthlySales)
	assert.Equal(t, int64(12), stats.TotalOrders)
	assert.Equal(t, int64(3), stats.PendingOrders)
	// 3 units sold at 600 cost, 1500 price.
	assert.Equal(t, float64(1800), stats.TotalCost)
	assert.Equal(t, float64(2700), stats.TotalProfit)
	assert.InDelta(t, 27.0, stats.ProfitMargin, 1e-9)
	assert.Len(t, stats.TopProducts, 1)
}

func TestInvoiceService_GetDashboardStats_ZeroRevenueZeroMargin(t *testing.T) {
	mockOrders := mockRepo.NewMockOrderRepository(t)
	mockProducts := mockRepo.NewMockProductRepository(t)
	service := NewInvoiceService(mockOrders, mockProducts, newDiscardLogger())

	ctx := context.Background()

	mockOrders.EXPECT().SalesStats(ctx).Return(&repository.SalesStats{}, nil)
	mockOrders.EXPECT().
		FindOrdersByPaymentStatus(ctx, entity.PaymentStatusCompleted).
		Return(nil, nil)
	mockProducts.EXPECT().TopProductsBySold(ctx, 5).Return(nil, nil)

	stats, err := service.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(0), stats.ProfitMargin)
}
