package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/minimart/storefront-api/internal/core/domain"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	model := commentToModel(c)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return commentFromModel(model), nil
}

func (r *CommentRepository) ListByProduct(ctx context.Context, productID uint) ([]*domain.Comment, error) {
	var models []CommentModel
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC, id ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	res := make([]*domain.Comment, 0, len(models))
	for _, m := range models {
		res = append(res, commentFromModel(m))
	}
	return res, nil
}
