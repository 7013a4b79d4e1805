package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"vexor/config"
	"vexor/internal/domain/entity"
	"vexor/internal/domain/repository"
	"vexor/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart:"

// cartStore implements the domain's CartStore interface on Redis. Each
// customer's cart is one JSON value; every mutation rewrites it whole, so
// there is no partial-update state to reconcile.
type cartStore struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// NewCartStore is the constructor for cartStore.
func NewCartStore(client *redis.Client, cfg *config.Config, logger *slog.Logger) repository.CartStore {
	var ttl time.Duration
	if cfg.Redis != nil {
		ttl = cfg.Redis.CartTTL
	}

	return &cartStore{
		client: client,
		logger: logger,
		ttl:    ttl,
	}
}

// Load retrieves the customer's cart. A missing key and an undecodable value
// both come back as an empty cart: a broken blob should cost the customer
// their cart contents, not their checkout flow.
func (store *cartStore) Load(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error) {
	raw, err := store.client.Get(ctx, cartKey(customerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.NewCart(customerID), nil
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	return store.decodeCart(customerID, raw), nil
}

// decodeCart turns a persisted blob back into a cart. Undecodable state is
// discarded in favor of an empty cart rather than surfaced as an error.
func (store *cartStore) decodeCart(customerID uuid.UUID, raw []byte) *entity.Cart {
	var items []entity.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		store.logger.Warn("discarding undecodable cart state",
			"customerID", customerID, "error", err)

		return entity.NewCart(customerID)
	}

	cart := entity.NewCart(customerID)
	cart.Items = items

	return cart
}

// Save persists the full cart, replacing any previous state.
func (store *cartStore) Save(ctx context.Context, cart *entity.Cart) error {
	raw, err := json.Marshal(cart.Items)
	if err != nil {
		return errors.Wrap(err, "failed to encode cart")
	}

	if err := store.client.Set(ctx, cartKey(cart.CustomerID), raw, store.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save cart")
	}

	return nil
}

// Clear removes the customer's persisted cart.
func (store *cartStore) Clear(ctx context.Context, customerID uuid.UUID) error {
	if err := store.client.Del(ctx, cartKey(customerID)).Err(); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

func cartKey(customerID uuid.UUID) string {
	return cartKeyPrefix + customerID.String()
}
