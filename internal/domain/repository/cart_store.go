package repository

import (
	"context"

	"vexor/internal/domain/entity"

	"github.com/google/uuid"
)

// CartStore is the persistence port for customer carts. Carts are
// single-owner, single-writer per session, so the port carries no
// concurrent-mutation contract.
//
// Load must fail soft: corrupted or unreadable stored state is returned as
// an empty cart, never as an error. A customer who has never saved a cart
// also gets an empty cart.
type CartStore interface {
	// Load retrieves the customer's cart, or an empty cart when none exists
	// or the stored state cannot be decoded.
	Load(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error)

	// Save persists the full cart, replacing any previous state.
	Save(ctx context.Context, cart *entity.Cart) error

	// Clear removes the customer's persisted cart.
	Clear(ctx context.Context, customerID uuid.UUID) error
}
