package postgres

import (
	"context"
	"time"

	"vexor/internal/domain/entity"
	domainerrors "vexor/internal/domain/errors"
	"vexor/internal/domain/repository"
	"vexor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists a new order with its snapshot line items.
// GORM's Create with associations inserts into orders and order_items together.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid order reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves a single order with its line items.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrdersByCustomer retrieves a customer's orders, newest first.
func (repo *orderRepository) FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by customer")
	}

	return toOrderDomains(orderMs), nil
}

// ListOrders retrieves all orders, newest first, optionally filtered by status.
func (repo *orderRepository) ListOrders(ctx context.Context, status *entity.OrderStatus) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).Preload("Items").Order("created_at DESC")
	if status != nil {
		query = query.Where("order_status = ?", status.String())
	}

	var orderMs []*model.OrderModel
	if err := query.Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomains(orderMs), nil
}

// FindOrdersByPaymentStatus retrieves orders with the given payment status.
func (repo *orderRepository) FindOrdersByPaymentStatus(ctx context.Context, status entity.PaymentStatus) ([]*entity.Order, error) {
	var orderMs []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("payment_status = ?", status.String()).
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by payment status")
	}

	return toOrderDomains(orderMs), nil
}

// UpdateOrderStatus sets the fulfillment status of an order.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("order_status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// SalesStats aggregates revenue and order counts for the admin dashboard.
// Revenue figures only count orders whose payment has settled.
func (repo *orderRepository) SalesStats(ctx context.Context) (*repository.SalesStats, error) {
	stats := &repository.SalesStats{}
	completed := entity.PaymentStatusCompleted.String()

	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COALESCE(SUM(final_amount), 0)").
		Where("payment_status = ?", completed).
		Scan(&stats.TotalRevenue).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum total revenue")
	}

	monthAgo := time.Now().AddDate(0, 0, -30)
	err = repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COALESCE(SUM(final_amount), 0)").
		Where("payment_status = ? AND created_at >= ?", completed, monthAgo).
		Scan(&stats.MonthlySales).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum monthly sales")
	}

	err = repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Count(&stats.TotalOrders).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	err = repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("order_status = ?", entity.OrderStatusPending.String()).
		Count(&stats.PendingOrders).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending orders")
	}

	return stats, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			VariantSize:  item.VariantSize,
			VariantColor: item.VariantColor,
			Quantity:     item.Quantity,
			Price:        item.Price,
		})
	}

	return &entity.Order{
		ID:                data.ID,
		CustomerID:        data.CustomerID,
		Items:             items,
		TotalAmount:       data.TotalAmount,
		DiscountAmount:    data.DiscountAmount,
		FinalAmount:       data.FinalAmount,
		CouponCode:        data.CouponCode,
		PaymentMethod:     entity.PaymentMethod(data.PaymentMethod),
		PaymentStatus:     entity.PaymentStatus(data.PaymentStatus),
		RazorpayPaymentID: data.RazorpayPaymentID,
		OrderStatus:       entity.OrderStatus(data.OrderStatus),
		ShippingAddress: entity.ShippingAddress{
			Name:         data.ShippingName,
			Phone:        data.ShippingPhone,
			AddressLine1: data.ShippingAddressLine1,
			AddressLine2: data.ShippingAddressLine2,
			City:         data.ShippingCity,
			State:        data.ShippingState,
			Pincode:      data.ShippingPincode,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toOrderDomains(data []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(data))
	for _, orderM := range data {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel for persistence.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			OrderID:      data.ID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			VariantSize:  item.VariantSize,
			VariantColor: item.VariantColor,
			Quantity:     item.Quantity,
			Price:        item.Price,
		})
	}

	return &model.OrderModel{
		ID:                   data.ID,
		CustomerID:           data.CustomerID,
		TotalAmount:          data.TotalAmount,
		DiscountAmount:       data.DiscountAmount,
		FinalAmount:          data.FinalAmount,
		CouponCode:           data.CouponCode,
		PaymentMethod:        data.PaymentMethod.String(),
		PaymentStatus:        data.PaymentStatus.String(),
		RazorpayPaymentID:    data.RazorpayPaymentID,
		OrderStatus:          data.OrderStatus.String(),
		ShippingName:         data.ShippingAddress.Name,
		ShippingPhone:        data.ShippingAddress.Phone,
		ShippingAddressLine1: data.ShippingAddress.AddressLine1,
		ShippingAddressLine2: data.ShippingAddress.AddressLine2,
		ShippingCity:         data.ShippingAddress.City,
		ShippingState:        data.ShippingAddress.State,
		ShippingPincode:      data.ShippingAddress.Pincode,
		Items:                items,
	}
}
