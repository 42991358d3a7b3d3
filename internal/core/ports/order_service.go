package ports

import (
	"context"

	"github.com/minimart/storefront-api/internal/core/domain"
)

// PlaceOrderInput carries the checkout form data.
type PlaceOrderInput struct {
	ProductID uint
	Address   string
	Quantity  int
	Username  string
}

// PaymentInput extends checkout with the mock card form. The card fields are
// checked for shape only; nothing here talks to a payment provider.
type PaymentInput struct {
	PlaceOrderInput
	CardNumber string
	CVV        string
	ExpiryDate string
}

// OrderService defines checkout and order management use-cases.
type OrderService interface {
	Place(ctx context.Context, in PlaceOrderInput) (*domain.Order, error)
	ConfirmPayment(ctx context.Context, in PaymentInput) (*domain.Order, error)
	// MarkCompleted transitions Pending → Completed. Calling it on an
	// already completed order is a no-op.
	MarkCompleted(ctx context.Context, orderID uint) (*domain.Order, error)
	ListForUser(ctx context.Context, username string) ([]*domain.Order, error)
	ListAll(ctx context.Context) ([]*domain.Order, error)
}
