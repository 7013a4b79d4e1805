package impl

import (
	"context"
	"testing"
	"time"

	"vexor/internal/domain/entity"
	domainerrors "vexor/internal/domain/errors"
	"vexor/internal/domain/repository"
	"vexor/internal/domain/service"
	mockRepo "vexor/internal/mocks/repository"
	mockSvc "vexor/internal/mocks/service"
	"vexor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderTestFixture wires an orderService to mocks, with the transaction
// manager executing its callback synchronously against a mock factory.
type orderTestFixture struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	products  *mockRepo.MockProductRepository
	orders    *mockRepo.MockOrderRepository
	coupons   *mockRepo.MockCouponRepository
	addresses *mockRepo.MockAddressRepository
	carts     *mockRepo.MockCartStore
	payment   *mockSvc.MockPaymentService
	publisher *mockSvc.MockEventPublisher
	service   usecase.OrderUsecase
}

func newOrderTestFixture(t *testing.T) *orderTestFixture {
	f := &orderTestFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		products:  mockRepo.NewMockProductRepository(t),
		orders:    mockRepo.NewMockOrderRepository(t),
		coupons:   mockRepo.NewMockCouponRepository(t),
		addresses: mockRepo.NewMockAddressRepository(t),
		carts:     mockRepo.NewMockCartStore(t),
		payment:   mockSvc.NewMockPaymentService(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).Maybe()

	f.factory.EXPECT().NewProductRepository().Return(f.products).Maybe()
	f.factory.EXPECT().NewOrderRepository().Return(f.orders).Maybe()
	f.factory.EXPECT().NewCouponRepository().Return(f.coupons).Maybe()
	f.factory.EXPECT().NewAddressRepository().Return(f.addresses).Maybe()

	// Placement publishes asynchronously; the goroutine may or may not fire
	// before the test finishes.
	f.publisher.EXPECT().
		PublishOrderCreated(mock.Anything, mock.AnythingOfType("*service.OrderCreatedEvent")).
		Return(nil).Maybe()

	pricing := NewPricingService(f.coupons, newDiscardLogger())
	f.service = NewOrderService(
		f.txManager, f.addresses, f.carts, pricing, f.payment, f.publisher, newDiscardLogger(),
	)

	return f
}

func newCheckoutCart(customerID uuid.UUID, lines ...entity.CartItem) *entity.Cart {
	cart := entity.NewCart(customerID)
	for _, line := range lines {
		cart.Add(line)
	}

	return cart
}

func newShippingFixture(customerID uuid.UUID) *entity.Address {
	return &entity.Address{
		ID:           uuid.New(),
		CustomerID:   customerID,
		Name:         "Asha Kumar",
		Phone:        "9876543210",
		AddressLine1: "12 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560001",
		IsDefault:    true,
	}
}

func TestOrderService_PlaceOrder_CashOnDelivery(t *testing.T) {
	f := newOrderTestFixture(t)
	ctx := context.Background()
	customerID := uuid.New()

	shirtID := uuid.New()
	shirt := &entity.Product{
		ID:            shirtID,
		Name:          "Oxford Shirt",
		Price:         2000,
		DiscountPrice: floatPtr(1500),
		Images:        []string{"oxford-front.jpg"},
		Variants:      []entity.Variant{{Size: "M", Color: "Blue", Stock: 10, SKU: "OXF-M-BLU"}},
	}
	jeansID := uuid.New()
	jeans := &entity.Product{
		ID:       jeansID,
		Name:     "Slim Jeans",
		Price:    800,
		Variants: []entity.Variant{{Size: "32", Color: "Black", Stock: 3, SKU: "JNS-32-BLK"}},
	}

	cart := newCheckoutCart(customerID,
		entity.CartItem{ProductID: shirtID, ProductName: "Oxford Shirt", Size: "M", Color: "Blue", Price: 2000, Quantity: 2},
		entity.CartItem{ProductID: jeansID, ProductName: "Slim Jeans", Size: "32", Color: "Black", Price: 800, Quantity: 1},
	)
	address := newShippingFixture(customerID)

	f.carts.EXPECT().Load(ctx, customerID).Return(cart, nil)
	f.addresses.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)

	f.products.EXPECT().FindProductByID(ctx, shirtID).Return(shirt, nil)
	f.products.EXPECT().
		ReserveVariantStock(ctx, entity.VariantKey{ProductID: shirtID, Size: "M", Color: "Blue"}, 2).
		Return(nil)
	f.products.EXPECT().FindProductByID(ctx, jeansID).Return(jeans, nil)
	f.products.EXPECT().
		ReserveVariantStock(ctx, entity.VariantKey{ProductID: jeansID, Size: "32", Color: "Black"}, 1).
		Return(nil)

	f.orders.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := f.service.PlaceOrder(ctx, customerID, &usecase.PlaceOrderInput{
		AddressID:     address.ID,
		PaymentMethod: "cod",
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	// Charged at the effective price: 2 x 1500 + 1 x 800.
	assert.Equal(t, float64(3800), order.TotalAmount)
	assert.Equal(t, float64(0), order.DiscountAmount)
	assert.Equal(t, float64(3800), order.FinalAmount)
	assert.Equal(t, entity.PaymentMethodCOD, order.PaymentMethod)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, entity.OrderStatusPending, order.OrderStatus)
	assert.Empty(t, order.RazorpayPaymentID)
	assert.Equal(t, "Asha Kumar", order.ShippingAddress.Name)
	assert.Equal(t, "560001", order.ShippingAddress.Pincode)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Oxford Shirt", order.Items[0].ProductName)
	assert.Equal(t, "oxford-front.jpg", order.Items[0].ProductImage)
	assert.Equal(t, float64(1500), order.Items[0].Price)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, float64(800), order.Items[1].Price)
}

func TestOrderService_PlaceOrder_RazorpayMarksPaymentCompleted(t *testing.T) {
	f := newOrderTestFixture(t)
	ctx := context.Background()
	customerID := uuid.New()

	productID := uuid.New()
	product := &entity.Product{
		ID:       productID,
		Name:     "Slim Jeans",
		Price:    800,
		Variants: []entity.Variant{{Size: "32", Color: "Black", Stock: 3, SKU: "JNS-32-BLK"}},
	}
	cart := newCheckoutCart(customerID,
		entity.CartItem{ProductID: productID, ProductName: "Slim Jeans", Size: "32", Color: "Black", Price: 800, Quantity: 1},
	)
	address := newShippingFixture(customerID)

	f.carts.EXPECT().Load(ctx, customerID).Return(cart, nil)
	f.addresses.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
	f.products.EXPECT().FindProductByID(ctx, productID).Return(product, nil)
	f.products.EXPECT().
		ReserveVariantStock(ctx, entity.VariantKey{ProductID: productID, Size: "32", Color: "Black"}, 1).
		Return(nil)
	f.payment.EXPECT().
		InitiatePayment(ctx, mock.AnythingOfType("string"), float64(800)).
		Return(&service.PaymentReceipt{PaymentID: "pay_abc123", Status: "completed"}, nil)
	f.orders.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := f.service.PlaceOrder(ctx, customerID, &usecase.PlaceOrderInput{
		AddressID:     address.ID,
		PaymentMethod: "razorpay",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, order.PaymentStatus)
	assert.Equal(t, "pay_abc123", order.RazorpayPaymentID)
}

func TestOrderService_PlaceOrder_GatewayFailureKeepsDiagnosis(t *testing.T) {
	f := newOrderTestFixture(t)
	ctx := context.Background()
	customerID := uuid.New()

	productID := uuid.New()
	product := &entity.Product{
		ID:       productID,
		Name:     "Slim Jeans",
		Price:    800,
		Variants: []entity.Variant{{Size: "32", Color: "Black", Stock: 3, SKU: "JNS-32-BLK"}},
	}
	cart := newCheckoutCart(customerID,
		entity.CartItem{ProductID: productID, ProductName: "Slim Jeans", Size: "32", Color: "Black", Price: 800, Quantity: 1},
	)
	address := newShippingFixture(customerID)

	f.carts.EXPECT().Load(ctx, customerID).Return(cart, nil)
	f.addresses.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
	f.products.EXPECT().FindProductByID(ctx, productID).Return(product, nil)
	f.products.EXPECT().
		ReserveVariantStock(ctx, entity.VariantKey{ProductID: productID, Size: "32", Color: "Black"}, 1).
		Return(nil)
	f.payment.EXPECT().
		InitiatePayment(ctx, mock.AnythingOfType("string"), float64(800)).
		Return(nil, errors.New("gateway timeout"))

	// The transaction aborts before the order row is written.
	_, err := f.service.PlaceOrder(ctx, customerID, &usecase.PlaceOrderInput{
		AddressID:     address.ID,
		PaymentMethod: "razorpay",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrExternalService))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "gateway timeout")
}

func TestOrderService_PlaceOrder_AppliesCoupon(t *testing.T) {
	f := newOrderTestFixture(t)
	ctx := context.Background()
	customerID := uuid.New()

	productID := uuid.New()
	product := &entity.Product{
		ID:       productID,
		Name:     "Oxford Shirt",
		Price:    2500,
		Variants: []entity.Variant{{Size: "M", Color: "Blue", Stock: 10, SKU: "OXF-M-BLU"}},
	}
	cart := newCheckoutCart(customerID,
		entity.CartItem{ProductID: productID, ProductName: "Oxford Shirt", Size: "M", Color: "Blue", Price: 2500, Quantity: 1},
	)
	address := newShippingFixture(customerID)
	coupon := &entity.Coupon{
		Code:               "SAVE250",
		DiscountPercentage: 10,
		ExpiryDate:         time.Now().Add(24 * time.Hour),
		UsageLimit:         100,
		IsActive:           true,
	}

	f.carts.EXPECT().Load(ctx, customerID).Return(cart, nil)
	f.addresses.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
	f.products.EXPECT().FindProductByID(ctx, productID).Return(product, nil)
	f.products.EXPECT().
		ReserveVariantStock(ctx, entity.VariantKey{ProductID: productID, Size: "M", Color: "Blue"}, 1).
		Return(nil)
	f.coupons.EXPECT().FindCouponByCode(ctx, "SAVE250").Return(coupon, nil)
	f.coupons.EXPECT().RedeemCoupon(ctx, "SAVE250").Return(nil)
	f.orders.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := f.service.PlaceOrder(ctx, customerID, &usecase.PlaceOrderInput{
		AddressID:     address.ID,
		PaymentMethod: "cod",
		CouponCode:    "save250",
	})
	require.NoError(t, err)
	assert.Equal(t, "SAVE250", order.CouponCode)
	assert.Equal(t, float64(2500), order.TotalAmount)
	assert.Equal(t, float64(250), order.DiscountAmount)
	assert.Equal(t, float64(2250), order.FinalAmount)
}

func TestOrderService_PlaceOrder_UnknownPaymentMethod(t *testing.T) {
	f := newOrderTestFixture(t)

	_, err := f.service.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
		AddressID:     uuid.New(),
		PaymentMethod: "paypal",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPaymentMethod))
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	f := newOrderTestFixture(t)
	ctx := context.Background()
	customerID := uuid.New()

	f.carts.EXPECT().Load(ctx, customerID).Return(entity.NewCart(customerID), nil)

	_, err := f.service.PlaceOrder(ctx, customerID, &usecase.PlaceOrderInput{
		AddressID:     uuid.New(),
		PaymentMethod: "cod",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
}

func TestOrderService_PlaceOrder_NoAddressSupplied(t *testing.T) {
	f := newOrderTestFixture(t)
	ctx := context.Background()
	customerID := uuid.New()

	cart := newCheckoutCart(customerID,
		entity.CartItem{ProductID: uuid.New(), Size: "M", Color: "Blue", Price: 100, Quantity: 1},
	)
	f.carts.EXPECT().Load(ctx, customerID).Return(cart, nil)

	_, err := f.service.PlaceOrder(ctx, customerID, &usecase.PlaceOrderInput{
		AddressID:     uuid.Nil,
		PaymentMethod: "cod",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingAddress))
}

func TestOrderService_PlaceOrder_ForeignAddressRejected(t *testing.T) {
	f := newOrderTestFixture(t)
	ctx := context.Background()
	customerID := uuid.New()

	cart := newCheckoutCart(customerID,
		entity.CartItem{ProductID: uuid.New(), Size: "M", Color: "Blue", Price: 100, Quantity: 1},
	)
	foreign := newShippingFixture(uuid.New())

	f.carts.EXPECT().Load(ctx, customerID).Return(cart, nil)
	f.addresses.EXPECT().FindAddressByID(ctx, foreign.ID).Return(foreign, nil)

	_, err := f.service.PlaceOrder(ctx, customerID, &usecase.PlaceOrderInput{
		AddressID:     foreign.ID,
		PaymentMethod: "cod",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingAddress))
}

func TestOrderService_PlaceOrder_InsufficientStockNamesEveryConflict(t *testing.T) {
	f := newOrderTestFixture(t)
	ctx := context.Background()
	customerID := uuid.New()

	shirtID := uuid.New()
	shirt := &entity.Product{
		ID:       shirtID,
		Name:     "Oxford Shirt",
		Price:    2000,
		Variants: []entity.Variant{{Size: "M", Color: "Blue", Stock: 1, SKU: "OXF-M-BLU"}},
	}
	jeansID := uuid.New()
	jeans := &entity.Product{
		ID:       jeansID,
		Name:     "Slim Jeans",
		Price:    800,
		Variants: []entity.Variant{{Size: "32", Color: "Black", Stock: 0, SKU: "JNS-32-BLK"}},
	}

	cart := newCheckoutCart(customerID,
		entity.CartItem{ProductID: shirtID, ProductName: "Oxford Shirt", Size: "M", Color: "Blue", Price: 2000, Quantity: 5},
		entity.CartItem{ProductID: jeansID, ProductName: "Slim Jeans", Size: "32", Color: "Black", Price: 800, Quantity: 2},
	)
	address := newShippingFixture(customerID)

	f.carts.EXPECT().Load(ctx, customerID).Return(cart, nil)
	f.addresses.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
	f.products.EXPECT().FindProductByID(ctx, shirtID).Return(shirt, nil)
	f.products.EXPECT().
		ReserveVariantStock(ctx, entity.VariantKey{ProductID: shirtID, Size: "M", Color: "Blue"}, 5).
		Return(repository.ErrInsufficientStock)
	f.products.EXPECT().FindProductByID(ctx, jeansID).Return(jeans, nil)
	f.products.EXPECT().
		ReserveVariantStock(ctx, entity.VariantKey{ProductID: jeansID, Size: "32", Color: "Black"}, 2).
		Return(repository.ErrInsufficientStock)

	_, err := f.service.PlaceOrder(ctx, customerID, &usecase.PlaceOrderInput{
		AddressID:     address.ID,
		PaymentMethod: "cod",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))

	// The rejection names every failing line, not just the first.
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "Oxford Shirt")
	assert.Contains(t, appErr.Details(), "Slim Jeans")
}

func TestOrderService_PlaceOrder_CouponSpentAtRedemption(t *testing.T) {
	f := newOrderTestFixture(t)
	ctx := context.Background()
	customerID := uuid.New()

	productID := uuid.New()
	product := &entity.Product{
		ID:       productID,
		Name:     "Oxford Shirt",
		Price:    2500,
		Variants: []entity.Variant{{Size: "M", Color: "Blue", Stock: 10, SKU: "OXF-M-BLU"}},
	}
	cart := newCheckoutCart(customerID,
		entity.CartItem{ProductID: productID, ProductName: "Oxford Shirt", Size: "M", Color: "Blue", Price: 2500, Quantity: 1},
	)
	address := newShippingFixture(customerID)
	coupon := &entity.Coupon{
		Code:               "SAVE250",
		DiscountPercentage: 10,
		ExpiryDate:         time.Now().Add(24 * time.Hour),
		UsageLimit:         1,
		IsActive:           true,
	}

	f.carts.EXPECT().Load(ctx, customerID).Return(cart, nil)
	f.addresses.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
	f.products.EXPECT().FindProductByID(ctx, productID).Return(product, nil)
	f.products.EXPECT().
		ReserveVariantStock(ctx, entity.VariantKey{ProductID: productID, Size: "M", Color: "Blue"}, 1).
		Return(nil)
	f.coupons.EXPECT().FindCouponByCode(ctx, "SAVE250").Return(coupon, nil)
	// The validation raced with a concurrent redemption; the guarded counter
	// is the authority.
	f.coupons.EXPECT().RedeemCoupon(ctx, "SAVE250").Return(repository.ErrCouponExhausted)

	_, err := f.service.PlaceOrder(ctx, customerID, &usecase.PlaceOrderInput{
		AddressID:     address.ID,
		PaymentMethod: "cod",
		CouponCode:    "SAVE250",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponExhausted))
}

func TestOrderService_GetOrder_OwnerCanRead(t *testing.T) {
	f := newOrderTestFixture(t)
	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()

	f.orders.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, CustomerID: customerID}, nil)

	order, err := f.service.GetOrder(ctx, orderID, customerID, false)
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestOrderService_GetOrder_ForeignCustomerForbidden(t *testing.T) {
	f := newOrderTestFixture(t)
	ctx := context.Background()
	orderID := uuid.New()

	f.orders.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, CustomerID: uuid.New()}, nil)

	_, err := f.service.GetOrder(ctx, orderID, uuid.New(), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_GetOrder_StaffCanReadAny(t *testing.T) {
	f := newOrderTestFixture(t)
	ctx := context.Background()
	orderID := uuid.New()

	f.orders.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, CustomerID: uuid.New()}, nil)

	order, err := f.service.GetOrder(ctx, orderID, uuid.New(), true)
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	f := newOrderTestFixture(t)
	ctx := context.Background()
	orderID := uuid.New()

	f.orders.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := f.service.GetOrder(ctx, orderID, uuid.New(), true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_ListOrders_RejectsUnknownStatus(t *testing.T) {
	f := newOrderTestFixture(t)

	bogus := entity.OrderStatus("returned")
	_, err := f.service.ListOrders(context.Background(), &bogus)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_UpdateOrderStatus_AllowedTransition(t *testing.T) {
	f := newOrderTestFixture(t)
	ctx := context.Background()
	orderID := uuid.New()

	f.orders.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, OrderStatus: entity.OrderStatusPending}, nil)
	f.orders.EXPECT().
		UpdateOrderStatus(ctx, orderID, entity.OrderStatusProcessing).
		Return(nil)

	order, err := f.service.UpdateOrderStatus(ctx, orderID, entity.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, order.OrderStatus)
}

func TestOrderService_UpdateOrderStatus_SameStatusSkipsWrite(t *testing.T) {
	f := newOrderTestFixture(t)
	ctx := context.Background()
	orderID := uuid.New()

	// No UpdateOrderStatus expectation: repeating the current status must
	// succeed without touching the database.
	f.orders.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, OrderStatus: entity.OrderStatusShipped}, nil)

	order, err := f.service.UpdateOrderStatus(ctx, orderID, entity.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, order.OrderStatus)
}

func TestOrderService_UpdateOrderStatus_DisallowedTransition(t *testing.T) {
	f := newOrderTestFixture(t)
	ctx := context.Background()
	orderID := uuid.New()

	f.orders.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, OrderStatus: entity.OrderStatusDelivered}, nil)

	_, err := f.service.UpdateOrderStatus(ctx, orderID, entity.OrderStatusCancelled)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestOrderService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	f := newOrderTestFixture(t)

	_, err := f.service.UpdateOrderStatus(context.Background(), uuid.New(), entity.OrderStatus("misplaced"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
