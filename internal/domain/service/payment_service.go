package service

import "context"

// PaymentReceipt is the acknowledgement returned by the payment collaborator.
// Payment here is a declared method plus a status flag, not a processed
// transaction; the receipt only records the gateway's reference id.
type PaymentReceipt struct {
	PaymentID string
	Status    string
}

// PaymentService defines the interface for initiating an online payment.
type PaymentService interface {
	// InitiatePayment declares a payment for the given order amount and
	// returns the gateway's reference.
	InitiatePayment(ctx context.Context, orderID string, amount float64) (*PaymentReceipt, error)
}
