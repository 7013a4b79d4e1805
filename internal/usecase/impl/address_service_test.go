package impl

import (
	"context"
	"testing"

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

func newAddressInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		Label:        "Home",
		Name:         "Asha Kumar",
		Phone:        "9876543210",
		AddressLine1: "12 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560001",
		IsDefault:    true,
	}
}

func TestAddressService_CreateAddress(t *testing.T) {
	mockAddresses := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(mockAddresses, newDiscardLogger())

	ctx := context.Background()
	customerID := uuid.New()

	mockAddresses.EXPECT().
		CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil)

	address, err := service.CreateAddress(ctx, customerID, newAddressInput())
	require.NoError(t, err)
	assert.Equal(t, customerID, address.CustomerID)
	assert.Equal(t, "Home", address.Label)
	assert.True(t, address.IsDefault)
	assert.NotEqual(t, uuid.Nil, address.ID)
}

func TestAddressService_UpdateAddress_ForeignAddressRejected(t *testing.T) {
	mockAddresses := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(mockAddresses, newDiscardLogger())

	ctx := context.Background()
	addressID := uuid.New()

	mockAddresses.EXPECT().
		FindAddressByID(ctx, addressID).
		Return(&entity.Address{ID: addressID, CustomerID: uuid.New()}, nil)

	_, err := service.UpdateAddress(ctx, uuid.New(), addressID, newAddressInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressOwnershipViolation))
}

func TestAddressService_UpdateAddress_ReplacesFields(t *testing.T) {
	mockAddresses := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(mockAddresses, newDiscardLogger())

	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()

	mockAddresses.EXPECT().
		FindAddressByID(ctx, addressID).
		Return(&entity.Address{ID: addressID, CustomerID: customerID, Label: "Office"}, nil)
	mockAddresses.EXPECT().
		UpdateAddress(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil)

	updated, err := service.UpdateAddress(ctx, customerID, addressID, newAddressInput())
	require.NoError(t, err)
	assert.Equal(t, "Home", updated.Label)
	assert.Equal(t, "12 MG Road", updated.AddressLine1)
}

func TestAddressService_DeleteAddress_NotFound(t *testing.T) {
	mockAddresses := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(mockAddresses, newDiscardLogger())

	ctx := context.Background()
	addressID := uuid.New()

	mockAddresses.EXPECT().
		FindAddressByID(ctx, addressID).
		Return(nil, repository.ErrAddressNotFound)

	err := service.DeleteAddress(ctx, uuid.New(), addressID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestAddressService_ListAddresses(t *testing.T) {
	mockAddresses := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(mockAddresses, newDiscardLogger())

	ctx := context.Background()
	customerID := uuid.New()
	stored := []*entity.Address{
		{ID: uuid.New(), CustomerID: customerID, IsDefault: true},
		{ID: uuid.New(), CustomerID: customerID},
	}

	mockAddresses.EXPECT().
		FindAddressesByCustomer(ctx, customerID).
		Return(stored, nil)

	addresses, err := service.ListAddresses(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.True(t, addresses[0].IsDefault)
}
