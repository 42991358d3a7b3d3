package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusCompleted OrderStatus = "Completed"
)

// validTransitions defines the allowed state machine transitions.
// Completed is terminal; there is no cancellation or partial fulfillment.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending: {StatusCompleted},
}

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrPaymentDeclined = errors.New("payment declined")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is a purchase record. Username is denormalized on purpose: the
// original buyer name survives even if the account is later removed.
type Order struct {
	ID        uint        `json:"id"`
	Username  string      `json:"username"`
	ProductID uint        `json:"product_id"`
	Address   string      `json:"address"`
	Quantity  int         `json:"quantity"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
