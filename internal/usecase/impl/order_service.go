package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"vexor/internal/domain/entity"
	domainerrors "vexor/internal/domain/errors"
	"vexor/internal/domain/repository"
	"vexor/internal/domain/service"
	"vexor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface. Placement runs inside
// one database transaction so the conditional stock decrements, the coupon
// redemption, and the order insert commit or roll back together.
type orderService struct {
	txManager repository.TransactionManager
	addresses repository.AddressRepository
	carts     repository.CartStore
	pricing   usecase.PricingUsecase
	payment   service.PaymentService
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	addresses repository.AddressRepository,
	carts repository.CartStore,
	pricing usecase.PricingUsecase,
	payment service.PaymentService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		addresses: addresses,
		carts:     carts,
		pricing:   pricing,
		payment:   payment,
		publisher: publisher,
		logger:    logger,
	}
}

// PlaceOrder turns the customer's cart into a persisted order.
//
// The flow is: reject empty carts and foreign addresses up front, then in a
// single transaction snapshot every line at its current catalog price,
// reserve stock with guarded decrements, redeem the coupon with a guarded
// counter, and insert the order. The customer's cart is cleared by the
// caller afterwards, not here, so a failed placement leaves the cart intact.
func (srv *orderService) PlaceOrder(ctx context.Context, customerID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	method := entity.PaymentMethod(input.PaymentMethod)
	if !method.IsValid() {
		return nil, domainerrors.ErrInvalidPaymentMethod.WrapMessage("unknown payment method " + input.PaymentMethod)
	}

	cart, err := srv.carts.Load(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	if cart.IsEmpty() {
		return nil, errors.Wrap(domainerrors.ErrEmptyCart, "cannot place an order without items")
	}

	shipping, err := srv.resolveShippingAddress(ctx, customerID, input.AddressID)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:              uuid.New(),
		CustomerID:      customerID,
		PaymentMethod:   method,
		PaymentStatus:   entity.PaymentStatusPending,
		OrderStatus:     entity.OrderStatusPending,
		ShippingAddress: *shipping,
		CreatedAt:       time.Now().UTC(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		products := repoFactory.NewProductRepository()
		coupons := repoFactory.NewCouponRepository()
		orders := repoFactory.NewOrderRepository()

		items, err := srv.snapshotAndReserve(ctx, products, cart.Items)
		if err != nil {
			return err
		}
		order.Items = items

		order.TotalAmount = subtotalOf(items)
		order.FinalAmount = order.TotalAmount

		if input.CouponCode != "" {
			quote, err := srv.pricing.ValidateCoupon(ctx, input.CouponCode, order.TotalAmount)
			if err != nil {
				return err
			}
			// The guarded counter is the authority on the usage budget; the
			// validation above can race with concurrent redemptions.
			if err := coupons.RedeemCoupon(ctx, quote.Code); err != nil {
				if errors.Is(err, repository.ErrCouponExhausted) {
					return errors.Wrap(domainerrors.ErrCouponExhausted, "coupon spent before redemption")
				}

				return errors.Wrap(err, "failed to redeem coupon")
			}
			order.CouponCode = quote.Code
			order.DiscountAmount = quote.DiscountAmount
			order.FinalAmount = srv.pricing.ComputeTotal(order.TotalAmount, order.DiscountAmount)
		}

		if err := srv.settlePayment(ctx, order); err != nil {
			return err
		}

		if err := orders.CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("order placed",
		"orderID", order.ID,
		"customerID", customerID,
		"finalAmount", order.FinalAmount,
		"paymentMethod", order.PaymentMethod,
	)

	go srv.publishOrderCreated(context.WithoutCancel(ctx), order)

	return order, nil
}

// resolveShippingAddress loads the address and verifies the customer owns it.
func (srv *orderService) resolveShippingAddress(ctx context.Context, customerID, addressID uuid.UUID) (*entity.ShippingAddress, error) {
	if addressID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrMissingAddress, "no address supplied")
	}

	address, err := srv.addresses.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMissingAddress, "address does not exist")
		}

		return nil, errors.Wrap(err, "failed to find address")
	}
	if address.CustomerID != customerID {
		return nil, errors.Wrap(domainerrors.ErrMissingAddress, "address belongs to another customer")
	}

	shipping := address.ToShipping()

	return &shipping, nil
}

// snapshotAndReserve freezes every cart line at its current catalog price
// and reserves its stock with a guarded decrement. All lines are attempted
// so a rejection can name every failing item; any failure rolls the whole
// transaction back, so no partial reservation survives.
func (srv *orderService) snapshotAndReserve(ctx context.Context, products repository.ProductRepository, cartItems []entity.CartItem) ([]entity.OrderItem, error) {
	items := make([]entity.OrderItem, 0, len(cartItems))
	var conflicts []string

	for _, line := range cartItems {
		product, err := products.FindProductByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrProductNotFound.WithDetails(
					fmt.Sprintf("%s is no longer available", line.ProductName))
			}

			return nil, errors.Wrap(err, "failed to find product")
		}

		variant := product.FindVariant(line.Size, line.Color)
		if variant == nil {
			return nil, domainerrors.ErrVariantNotFound.WithDetails(
				fmt.Sprintf("%s (%s/%s) is no longer available", product.Name, line.Size, line.Color))
		}

		err = products.ReserveVariantStock(ctx, variant.Key(product.ID), line.Quantity)
		switch {
		case errors.Is(err, repository.ErrInsufficientStock):
			conflicts = append(conflicts, fmt.Sprintf("%s (%s/%s): requested %d, in stock %d",
				product.Name, line.Size, line.Color, line.Quantity, variant.Stock))

			continue
		case err != nil:
			return nil, errors.Wrap(err, "failed to reserve stock")
		}

		items = append(items, entity.OrderItem{
			ProductID:    product.ID,
			ProductName:  product.Name,
			ProductImage: product.CoverImage(),
			VariantSize:  variant.Size,
			VariantColor: variant.Color,
			Quantity:     line.Quantity,
			Price:        product.EffectivePrice(),
		})
	}

	if len(conflicts) > 0 {
		return nil, domainerrors.ErrInsufficientStock.WithDetails(strings.Join(conflicts, "; "))
	}

	return items, nil
}

// settlePayment declares the payment. Online methods get a mock gateway
// initiation and are marked completed; cash on delivery stays pending.
func (srv *orderService) settlePayment(ctx context.Context, order *entity.Order) error {
	if order.PaymentMethod != entity.PaymentMethodRazorpay {
		return nil
	}

	receipt, err := srv.payment.InitiatePayment(ctx, order.ID.String(), order.FinalAmount)
	if err != nil {
		srv.logger.Error("payment initiation failed",
			"orderID", order.ID,
			"error", err,
		)

		return errors.Wrap(domainerrors.ErrExternalService.WithDetails(err.Error()), "payment initiation failed")
	}

	order.RazorpayPaymentID = receipt.PaymentID
	order.PaymentStatus = entity.PaymentStatusCompleted

	return nil
}

func (srv *orderService) publishOrderCreated(ctx context.Context, order *entity.Order) {
	event := &service.OrderCreatedEvent{
		OrderID:       order.ID.String(),
		CustomerID:    order.CustomerID.String(),
		FinalAmount:   order.FinalAmount,
		PaymentMethod: order.PaymentMethod.String(),
		ItemCount:     len(order.Items),
		CreatedAt:     order.CreatedAt,
	}

	if err := srv.publisher.PublishOrderCreated(ctx, event); err != nil {
		srv.logger.Error("failed to publish order.created event",
			"orderID", order.ID,
			"error", err,
		)
	}
}

// GetOrder returns one order, enforcing ownership for non-staff requesters.
func (srv *orderService) GetOrder(ctx context.Context, orderID, requesterID uuid.UUID, requesterIsStaff bool) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewOrderRepository().FindOrderByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if order.CustomerID != requesterID && !requesterIsStaff {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "order belongs to another customer")
	}

	return order, nil
}

// ListCustomerOrders returns the customer's orders, newest first.
func (srv *orderService) ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewOrderRepository().FindOrdersByCustomer(ctx, customerID)
		if err != nil {
			return errors.Wrap(err, "failed to list customer orders")
		}
		orders = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// ListOrders returns all orders, optionally filtered by status.
func (srv *orderService) ListOrders(ctx context.Context, status *entity.OrderStatus) ([]*entity.Order, error) {
	if status != nil && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status " + status.String())
	}

	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewOrderRepository().ListOrders(ctx, status)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		orders = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateOrderStatus applies one fulfillment transition under the status
// machine's rules. A disallowed transition leaves the order unchanged;
// repeating the current status succeeds without a write.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, next entity.OrderStatus) (*entity.Order, error) {
	if !next.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status " + next.String())
	}

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orders := repoFactory.NewOrderRepository()

		found, err := orders.FindOrderByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}

		if !found.OrderStatus.CanTransitionTo(next) {
			return domainerrors.ErrInvalidTransition.WithDetails(
				fmt.Sprintf("%s -> %s is not allowed", found.OrderStatus, next))
		}

		// Idempotent: repeating the current status is a successful no-op.
		if found.OrderStatus != next {
			if err := orders.UpdateOrderStatus(ctx, orderID, next); err != nil {
				return errors.Wrap(err, "failed to update order status")
			}
			found.OrderStatus = next
			found.UpdatedAt = time.Now().UTC()
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("order status updated", "orderID", orderID, "status", next)

	return order, nil
}

// subtotalOf sums price times quantity over snapshot lines.
func subtotalOf(items []entity.OrderItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	return subtotal
}
