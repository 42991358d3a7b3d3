package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/minimart/storefront-api/internal/core/domain"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateWithStockDecrement inserts the order and decrements the product's
// stock in a single transaction. The decrement is a conditional update
// (stock >= quantity) so concurrent checkouts for the same product cannot
// oversell: the loser of the race sees zero affected rows and the whole
// transaction rolls back.
func (r *OrderRepository) CreateWithStockDecrement(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	model := orderToModel(o)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&ProductModel{}).
			Where("id = ? AND stock >= ?", o.ProductID, o.Quantity).
			UpdateColumn("stock", gorm.Expr("stock - ?", o.Quantity))
		if res.Error != nil {
			return fmt.Errorf("decrement stock: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			// Either the product vanished or the stock ran out under us.
			var count int64
			if err := tx.Model(&ProductModel{}).Where("id = ?", o.ProductID).Count(&count).Error; err != nil {
				return fmt.Errorf("decrement stock: %w", err)
			}
			if count == 0 {
				return domain.ErrProductNotFound
			}
			return domain.ErrInsufficientStock
		}

		if err := tx.Omit("Product").Create(&model).Error; err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return orderFromModel(model), nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	var model OrderModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return orderFromModel(model), nil
}

func (r *OrderRepository) ListByUsername(ctx context.Context, username string) ([]*domain.Order, error) {
	return r.list(ctx, "username = ?", username)
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]*domain.Order, error) {
	return r.list(ctx)
}

func (r *OrderRepository) list(ctx context.Context, conds ...any) ([]*domain.Order, error) {
	var models []OrderModel
	tx := r.db.WithContext(ctx).Order("created_at ASC, id ASC")
	if len(conds) > 0 {
		tx = tx.Where(conds[0], conds[1:]...)
	}
	if err := tx.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	res := make([]*domain.Order, 0, len(models))
	for _, m := range models {
		res = append(res, orderFromModel(m))
	}
	return res, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return fmt.Errorf("update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
