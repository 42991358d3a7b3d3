package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/minimart/storefront-api/internal/core/domain"
	"github.com/minimart/storefront-api/internal/core/ports"
)

// CommentService implements product comments.
type CommentService struct {
	comments ports.CommentRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, products ports.ProductRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, products: products, logger: logger}
}

func (s *CommentService) Add(ctx context.Context, productID uint, username, text string) (*domain.Comment, error) {
	if username == "" {
		return nil, domain.ErrInvalidCredentials
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment cannot be empty", domain.ErrInvalidInput)
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		Username:  username,
		Body:      text,
		ProductID: productID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	s.logger.Info().Uint("product_id", productID).Str("username", username).Msg("comment posted")
	return created, nil
}

func (s *CommentService) List(ctx context.Context, productID uint) ([]*domain.Comment, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.comments.ListByProduct(ctx, productID)
}
