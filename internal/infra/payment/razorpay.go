// Package payment provides the payment gateway implementations.
package payment

import (
	"context"
	"log/slog"

	"vexor/config"
	"vexor/internal/domain/service"
	"vexor/internal/errors"

	"github.com/google/uuid"
)

const receiptStatusCompleted = "completed"

// razorpayService implements the PaymentService interface as a declaration
// stub: it issues a gateway-shaped payment id without calling out, matching
// the checkout contract where payment is declared rather than processed.
type razorpayService struct {
	keyID  string
	logger *slog.Logger
}

// NewRazorpayService is the constructor for razorpayService.
func NewRazorpayService(cfg *config.Config, logger *slog.Logger) (service.PaymentService, error) {
	if cfg.Payment == nil || cfg.Payment.KeyID == "" {
		return nil, errors.New("payment gateway key id must be provided")
	}

	return &razorpayService{
		keyID:  cfg.Payment.KeyID,
		logger: logger,
	}, nil
}

// InitiatePayment declares a payment for the order and returns a mock
// gateway reference in razorpay's pay_<id> format.
func (s *razorpayService) InitiatePayment(ctx context.Context, orderID string, amount float64) (*service.PaymentReceipt, error) {
	if amount < 0 {
		return nil, errors.New("payment amount must not be negative")
	}

	receipt := &service.PaymentReceipt{
		PaymentID: "pay_" + uuid.NewString(),
		Status:    receiptStatusCompleted,
	}

	s.logger.Info("payment declared",
		"orderID", orderID,
		"amount", amount,
		"paymentID", receipt.PaymentID,
	)

	return receipt, nil
}
