// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is an entry in a customer's address book. Orders copy the fields
// they need into a ShippingAddress at placement time.
type Address struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the address.
	CustomerID   uuid.UUID // The customer who owns this address.
	Label        string    // A user-defined label, e.g. "Home", "Office".
	Name         string    // Recipient name.
	Phone        string    // Recipient phone number.
	AddressLine1 string    // First address line. Required.
	AddressLine2 string    // Second address line. Optional.
	City         string    // City.
	State        string    // State.
	Pincode      string    // Postal code. Required.
	IsDefault    bool      // Whether this is the customer's default address.
	CreatedAt    time.Time // Timestamp of when this address was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// ToShipping copies the address into the immutable form stored on orders.
func (a *Address) ToShipping() ShippingAddress {
	return ShippingAddress{
		Name:         a.Name,
		Phone:        a.Phone,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		State:        a.State,
		Pincode:      a.Pincode,
	}
}
