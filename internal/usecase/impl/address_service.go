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

// addressService implements the AddressUsecase interface.
type addressService struct {
	addresses repository.AddressRepository
	logger    *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	addresses repository.AddressRepository,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		addresses: addresses,
		logger:    logger,
	}
}

// ListAddresses returns the customer's addresses, default first.
func (srv *addressService) ListAddresses(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addresses.FindAddressesByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// CreateAddress adds an address to the customer's book.
func (srv *addressService) CreateAddress(ctx context.Context, customerID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	address := &entity.Address{
		ID:           uuid.New(),
		CustomerID:   customerID,
		Label:        input.Label,
		Name:         input.Name,
		Phone:        input.Phone,
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		City:         input.City,
		State:        input.State,
		Pincode:      input.Pincode,
		IsDefault:    input.IsDefault,
	}

	if err := srv.addresses.CreateAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	return address, nil
}

// UpdateAddress replaces an address the customer owns.
func (srv *addressService) UpdateAddress(ctx context.Context, customerID, addressID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	address, err := srv.findOwned(ctx, customerID, addressID)
	if err != nil {
		return nil, err
	}

	address.Label = input.Label
	address.Name = input.Name
	address.Phone = input.Phone
	address.AddressLine1 = input.AddressLine1
	address.AddressLine2 = input.AddressLine2
	address.City = input.City
	address.State = input.State
	address.Pincode = input.Pincode
	address.IsDefault = input.IsDefault

	if err := srv.addresses.UpdateAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	return address, nil
}

// DeleteAddress removes an address the customer owns.
func (srv *addressService) DeleteAddress(ctx context.Context, customerID, addressID uuid.UUID) error {
	if _, err := srv.findOwned(ctx, customerID, addressID); err != nil {
		return err
	}

	if err := srv.addresses.DeleteAddress(ctx, addressID); err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	return nil
}

func (srv *addressService) findOwned(ctx context.Context, customerID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := srv.addresses.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
		}

		return nil, errors.Wrap(err, "failed to find address")
	}

	if address.CustomerID != customerID {
		return nil, errors.Wrap(domainerrors.ErrAddressOwnershipViolation, "address belongs to another customer")
	}

	return address, nil
}
