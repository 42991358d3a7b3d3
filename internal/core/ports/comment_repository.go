package ports

import (
	"context"

	"github.com/minimart/storefront-api/internal/core/domain"
)

// CommentRepository defines persistence operations for product comments.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	// ListByProduct returns comments in insertion order.
	ListByProduct(ctx context.Context, productID uint) ([]*domain.Comment, error)
}
