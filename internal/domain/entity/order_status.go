// Package entity contains the core business objects of the project.
package entity

// OrderStatus represents the fulfillment stage of a placed order. It is a
// closed set; transitions between stages go through CanTransitionTo so that
// fulfillment can only move forward (or be cancelled before shipping).
type OrderStatus string

const (
	// OrderStatusPending is the initial stage of every order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusProcessing indicates the order is being prepared.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusShipped indicates the order left the warehouse.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered is the terminal success stage.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled is the terminal failure stage.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// orderStatusTransitions is the exhaustive transition table. A status that
// maps to an empty set is terminal.
var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusTransitions[s]

	return ok
}

// IsTerminal reports whether no further transition is allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return len(orderStatusTransitions[s]) == 0
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Transitioning to the same status is allowed and treated as an idempotent
// no-op by callers, so repeated admin updates are safe.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return s.IsValid()
	}

	for _, allowed := range orderStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}
