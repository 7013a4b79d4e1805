// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// CartItem is one line of a customer's cart: a product variant plus a
// quantity. The snapshot fields (name, image, price) are refreshed from the
// catalog whenever the item is written, so a stale cart still renders; the
// authoritative price is always re-read at order time.
type CartItem struct {
	ProductID     uuid.UUID `json:"product_id"`
	ProductName   string    `json:"product_name"`
	ProductImage  string    `json:"product_image"`
	Size          string    `json:"size"`
	Color         string    `json:"color"`
	Price         float64   `json:"price"`
	DiscountPrice *float64  `json:"discount_price,omitempty"`
	Quantity      int       `json:"quantity"`
}

// Key returns the composite identity of this line item. Two items with the
// same key are the same line and must merge, never duplicate.
func (i CartItem) Key() VariantKey {
	return VariantKey{ProductID: i.ProductID, Size: i.Size, Color: i.Color}
}

// UnitPrice returns the price one unit of this item is charged at,
// preferring the discount price when one is set.
func (i CartItem) UnitPrice() float64 {
	if i.DiscountPrice != nil {
		return *i.DiscountPrice
	}

	return i.Price
}

// Cart is an ordered collection of CartItems, unique by composite key,
// owned by one customer session. Mutations keep insertion order so the cart
// renders stably across reloads. Quantities are always >= 1; an update that
// would drop a quantity to zero or below removes the line instead.
type Cart struct {
	CustomerID uuid.UUID  `json:"customer_id"`
	Items      []CartItem `json:"items"`
}

// NewCart creates an empty cart for a customer.
func NewCart(customerID uuid.UUID) *Cart {
	return &Cart{CustomerID: customerID, Items: []CartItem{}}
}

// indexOf returns the position of the line with the given key, or -1.
func (c *Cart) indexOf(key VariantKey) int {
	for i := range c.Items {
		if c.Items[i].Key() == key {
			return i
		}
	}

	return -1
}

// Find returns the line item with the given key, or nil when absent.
func (c *Cart) Find(key VariantKey) *CartItem {
	if i := c.indexOf(key); i >= 0 {
		return &c.Items[i]
	}

	return nil
}

// Add merges the given item into the cart: an existing line with the same
// key has its quantity incremented, otherwise the item is appended. The
// snapshot fields of an existing line are refreshed from the incoming item.
func (c *Cart) Add(item CartItem) {
	if i := c.indexOf(item.Key()); i >= 0 {
		quantity := c.Items[i].Quantity + item.Quantity
		c.Items[i] = item
		c.Items[i].Quantity = quantity

		return
	}

	c.Items = append(c.Items, item)
}

// SetQuantity sets the quantity of the line with the given key directly.
// A quantity of zero or below removes the line. Setting the quantity of an
// absent key is a no-op.
func (c *Cart) SetQuantity(key VariantKey, quantity int) {
	i := c.indexOf(key)
	if i < 0 {
		return
	}

	if quantity <= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)

		return
	}

	c.Items[i].Quantity = quantity
}

// Remove deletes the line with the given key. Removing an absent key is a
// no-op, not an error.
func (c *Cart) Remove(key VariantKey) {
	if i := c.indexOf(key); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
