package usecase

import (
	"context"

	"vexor/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput carries the customer form for a new or updated address.
type AddressInput struct {
	Label        string `json:"label"`
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	AddressLine1 string `json:"address_line1" validate:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	Pincode      string `json:"pincode" validate:"required"`
	IsDefault    bool   `json:"is_default"`
}

// AddressUsecase manages a customer's address book. Every operation checks
// ownership; customers can never see or edit another customer's addresses.
type AddressUsecase interface {
	// ListAddresses returns the customer's addresses, default first.
	ListAddresses(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error)

	// CreateAddress adds an address to the customer's book.
	CreateAddress(ctx context.Context, customerID uuid.UUID, input *AddressInput) (*entity.Address, error)

	// UpdateAddress replaces an address the customer owns.
	UpdateAddress(ctx context.Context, customerID, addressID uuid.UUID, input *AddressInput) (*entity.Address, error)

	// DeleteAddress removes an address the customer owns.
	DeleteAddress(ctx context.Context, customerID, addressID uuid.UUID) error
}
