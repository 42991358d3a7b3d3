package ports

import (
	"context"

	"github.com/minimart/storefront-api/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	// CreateWithStockDecrement inserts the order and decrements the
	// product's stock by the order quantity in one atomic transaction.
	// Returns domain.ErrInsufficientStock (and writes nothing) when the
	// product no longer has enough stock at commit time.
	CreateWithStockDecrement(ctx context.Context, o *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	ListByUsername(ctx context.Context, username string) ([]*domain.Order, error)
	ListAll(ctx context.Context) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error
}
