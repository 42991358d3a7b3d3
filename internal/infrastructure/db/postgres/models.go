package postgres

import (
	"time"

	"github.com/minimart/storefront-api/internal/core/domain"
)

// GORM models used for persistence.

type UserModel struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;size:250;not null"`
	Email        string    `gorm:"uniqueIndex;size:250;not null"`
	PasswordHash string    `gorm:"size:250;not null"`
	Role         string    `gorm:"size:50;not null;default:user"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }

type ProductModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:250;not null"`
	Price     float64   `gorm:"not null"`
	Stock     int       `gorm:"not null;default:0"`
	Image     string    `gorm:"size:500"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (ProductModel) TableName() string { return "products" }

type OrderModel struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"size:150;not null;index"`
	ProductID uint      `gorm:"not null;index"`
	Address   string    `gorm:"size:500;not null"`
	Quantity  int       `gorm:"not null"`
	Status    string    `gorm:"size:20;not null;default:Pending"`
	CreatedAt time.Time `gorm:"not null"`

	Product ProductModel `gorm:"constraint:OnDelete:CASCADE"`
}

func (OrderModel) TableName() string { return "orders" }

type CommentModel struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"size:100;not null"`
	Body      string    `gorm:"type:text;not null"`
	ProductID uint      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (CommentModel) TableName() string { return "comments" }

// --- mapping helpers ---

func userToModel(u *domain.User) UserModel {
	return UserModel{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
	}
}

func userFromModel(m UserModel) *domain.User {
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		CreatedAt:    m.CreatedAt,
	}
}

func productToModel(p *domain.Product) ProductModel {
	return ProductModel{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func productFromModel(m ProductModel) *domain.Product {
	return &domain.Product{
		ID:        m.ID,
		Name:      m.Name,
		Price:     m.Price,
		Stock:     m.Stock,
		Image:     m.Image,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func orderToModel(o *domain.Order) OrderModel {
	return OrderModel{
		ID:        o.ID,
		Username:  o.Username,
		ProductID: o.ProductID,
		Address:   o.Address,
		Quantity:  o.Quantity,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
}

func orderFromModel(m OrderModel) *domain.Order {
	return &domain.Order{
		ID:        m.ID,
		Username:  m.Username,
		ProductID: m.ProductID,
		Address:   m.Address,
		Quantity:  m.Quantity,
		Status:    domain.OrderStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func commentToModel(c *domain.Comment) CommentModel {
	return CommentModel{
		ID:        c.ID,
		Username:  c.Username,
		Body:      c.Body,
		ProductID: c.ProductID,
		CreatedAt: c.CreatedAt,
	}
}

func commentFromModel(m CommentModel) *domain.Comment {
	return &domain.Comment{
		ID:        m.ID,
		Username:  m.Username,
		Body:      m.Body,
		ProductID: m.ProductID,
		CreatedAt: m.CreatedAt,
	}
}
