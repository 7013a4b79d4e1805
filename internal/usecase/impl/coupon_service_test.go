package impl

import (
	"context"
	"testing"
	"time"

	"vexor/internal/domain/entity"
	domainerrors "vexor/internal/domain/errors"
	"vexor/internal/domain/repository"
	mockRepo "vexor/internal/mocks/repository"
	"vexor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCouponService_CreateCoupon_NormalizesCode(t *testing.T) {
	mockCoupons := mockRepo.NewMockCouponRepository(t)
	service := NewCouponService(mockCoupons, newDiscardLogger())

	ctx := context.Background()
	expiry := time.Now().Add(30 * 24 * time.Hour)

	mockCoupons.EXPECT().
		CreateCoupon(ctx, mock.AnythingOfType("*entity.Coupon")).
		Return(nil)

	coupon, err := service.CreateCoupon(ctx, &usecase.CreateCouponInput{
		Code:               "  save250 ",
		DiscountPercentage: 10,
		ExpiryDate:         expiry,
		UsageLimit:         100,
	})
	require.NoError(t, err)
	assert.Equal(t, "SAVE250", coupon.Code)
	assert.True(t, coupon.IsActive)
	assert.Equal(t, 0, coupon.UsedCount)
}

func TestCouponService_CreateCoupon_DuplicateCode(t *testing.T) {
	mockCoupons := mockRepo.NewMockCouponRepository(t)
	service := NewCouponService(mockCoupons, newDiscardLogger())

	ctx := context.Background()

	mockCoupons.EXPECT().
		CreateCoupon(ctx, mock.AnythingOfType("*entity.Coupon")).
		Return(repository.ErrCouponCodeTaken)

	_, err := service.CreateCoupon(ctx, &usecase.CreateCouponInput{
		Code:               "SAVE250",
		DiscountPercentage: 10,
		ExpiryDate:         time.Now().Add(time.Hour),
		UsageLimit:         100,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponAlreadyExists))
}

func TestCouponService_ListCoupons(t *testing.T) {
	mockCoupons := mockRepo.NewMockCouponRepository(t)
	service := NewCouponService(mockCoupons, newDiscardLogger())

	ctx := context.Background()
	stored := []*entity.Coupon{
		{ID: uuid.New(), Code: "SAVE250"},
		{ID: uuid.New(), Code: "WELCOME10"},
	}

	mockCoupons.EXPECT().ListCoupons(ctx).Return(stored, nil)

	coupons, err := service.ListCoupons(ctx)
	require.NoError(t, err)
	assert.Len(t, coupons, 2)
}

func TestCouponService_DeleteCoupon_NotFound(t *testing.T) {
	mockCoupons := mockRepo.NewMockCouponRepository(t)
	service := NewCouponService(mockCoupons, newDiscardLogger())

	ctx := context.Background()
	couponID := uuid.New()

	mockCoupons.EXPECT().
		DeleteCoupon(ctx, couponID).
		Return(repository.ErrCouponNotFound)

	err := service.DeleteCoupon(ctx, couponID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
