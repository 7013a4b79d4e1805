package payment

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"vexor/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *razorpayService {
	svc, err := NewRazorpayService(&config.Config{
		Payment: &config.PaymentConfig{Provider: "razorpay", KeyID: "rzp_test_key"},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return svc.(*razorpayService)
}

func TestNewRazorpayService_RequiresKeyID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewRazorpayService(&config.Config{}, logger)
	assert.Error(t, err)

	_, err = NewRazorpayService(&config.Config{Payment: &config.PaymentConfig{}}, logger)
	assert.Error(t, err)
}

func TestRazorpayService_InitiatePayment(t *testing.T) {
	service := newTestService(t)

	receipt, err := service.InitiatePayment(context.Background(), uuid.NewString(), 2250)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(receipt.PaymentID, "pay_"), receipt.PaymentID)
	assert.Equal(t, "completed", receipt.Status)
}

func TestRazorpayService_InitiatePayment_UniqueReferences(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	first, err := service.InitiatePayment(ctx, uuid.NewString(), 100)
	require.NoError(t, err)
	second, err := service.InitiatePayment(ctx, uuid.NewString(), 100)
	require.NoError(t, err)

	assert.NotEqual(t, first.PaymentID, second.PaymentID)
}

func TestRazorpayService_InitiatePayment_NegativeAmount(t *testing.T) {
	service := newTestService(t)

	_, err := service.InitiatePayment(context.Background(), uuid.NewString(), -1)
	assert.Error(t, err)
}
