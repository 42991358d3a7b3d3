package ports

import (
	"context"

	"github.com/minimart/storefront-api/internal/core/domain"
)

// CommentService defines comment use-cases.
type CommentService interface {
	Add(ctx context.Context, productID uint, username, text string) (*domain.Comment, error)
	List(ctx context.Context, productID uint) ([]*domain.Comment, error)
}
