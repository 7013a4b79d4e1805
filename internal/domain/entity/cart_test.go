package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestCart_Add_NewLine(t *testing.T) {
	cart := NewCart(uuid.New())
	productID := uuid.New()

	cart.Add(CartItem{
		ProductID:   productID,
		ProductName: "Oxford Shirt",
		Size:        "M",
		Color:       "Blue",
		Price:       1200,
		Quantity:    2,
	})

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.False(t, cart.IsEmpty())
}

func TestCart_Add_MergesSameKey(t *testing.T) {
	cart := NewCart(uuid.New())
	productID := uuid.New()

	cart.Add(CartItem{ProductID: productID, ProductName: "Oxford Shirt", Size: "M", Color: "Blue", Price: 1200, Quantity: 2})
	cart.Add(CartItem{ProductID: productID, ProductName: "Oxford Shirt", Size: "M", Color: "Blue", Price: 1100, Quantity: 3})

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	// The merge refreshes the snapshot fields from the incoming item.
	assert.Equal(t, float64(1100), cart.Items[0].Price)
}

func TestCart_Add_DifferentVariantsStaySeparate(t *testing.T) {
	cart := NewCart(uuid.New())
	productID := uuid.New()

	cart.Add(CartItem{ProductID: productID, Size: "M", Color: "Blue", Quantity: 1})
	cart.Add(CartItem{ProductID: productID, Size: "L", Color: "Blue", Quantity: 1})
	cart.Add(CartItem{ProductID: productID, Size: "M", Color: "Black", Quantity: 1})

	assert.Len(t, cart.Items, 3)
}

func TestCart_SetQuantity(t *testing.T) {
	cart := NewCart(uuid.New())
	productID := uuid.New()
	key := VariantKey{ProductID: productID, Size: "M", Color: "Blue"}

	cart.Add(CartItem{ProductID: productID, Size: "M", Color: "Blue", Quantity: 2})

	cart.SetQuantity(key, 7)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestCart_SetQuantity_ZeroRemovesLine(t *testing.T) {
	cart := NewCart(uuid.New())
	productID := uuid.New()
	key := VariantKey{ProductID: productID, Size: "M", Color: "Blue"}

	cart.Add(CartItem{ProductID: productID, Size: "M", Color: "Blue", Quantity: 2})

	cart.SetQuantity(key, 0)
	assert.True(t, cart.IsEmpty())
}

func TestCart_SetQuantity_AbsentKeyIsNoOp(t *testing.T) {
	cart := NewCart(uuid.New())
	cart.Add(CartItem{ProductID: uuid.New(), Size: "M", Color: "Blue", Quantity: 2})

	cart.SetQuantity(VariantKey{ProductID: uuid.New(), Size: "M", Color: "Blue"}, 5)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCart_Remove(t *testing.T) {
	cart := NewCart(uuid.New())
	productID := uuid.New()

	cart.Add(CartItem{ProductID: productID, Size: "M", Color: "Blue", Quantity: 1})
	cart.Add(CartItem{ProductID: productID, Size: "L", Color: "Blue", Quantity: 1})

	cart.Remove(VariantKey{ProductID: productID, Size: "M", Color: "Blue"})

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "L", cart.Items[0].Size)
}

func TestCart_Remove_AbsentKeyIsNoOp(t *testing.T) {
	cart := NewCart(uuid.New())
	cart.Add(CartItem{ProductID: uuid.New(), Size: "M", Color: "Blue", Quantity: 1})

	cart.Remove(VariantKey{ProductID: uuid.New(), Size: "M", Color: "Blue"})

	assert.Len(t, cart.Items, 1)
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart(uuid.New())
	cart.Add(CartItem{ProductID: uuid.New(), Size: "M", Color: "Blue", Quantity: 1})

	cart.Clear()

	assert.True(t, cart.IsEmpty())
}

func TestCartItem_UnitPrice_PrefersDiscount(t *testing.T) {
	item := CartItem{Price: 2000, DiscountPrice: floatPtr(1500)}
	assert.Equal(t, float64(1500), item.UnitPrice())

	item.DiscountPrice = nil
	assert.Equal(t, float64(2000), item.UnitPrice())
}
