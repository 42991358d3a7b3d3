package ports

import (
	"context"
	"io"

	"github.com/minimart/storefront-api/internal/core/domain"
)

// ImageUpload is an optional product image attached to a create or update.
// Content is consumed at most once.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// CreateProductInput carries the raw admin form fields for a new product.
// Price and Stock arrive as strings and are validated by the service.
type CreateProductInput struct {
	Name  string
	Price string
	Stock string
	Image *ImageUpload
}

// UpdateProductInput is a partial update: nil fields keep their current value.
type UpdateProductInput struct {
	Name  *string
	Price *string
	Stock *string
	Image *ImageUpload
}

// CatalogService defines product management use-cases.
type CatalogService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id uint) (*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id uint, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id uint) error
}

// ImageStore persists uploaded product images.
type ImageStore interface {
	// Save stores the image and returns the reference to record on the
	// product. Files with a disallowed extension are rejected.
	Save(filename string, r io.Reader) (string, error)
	Remove(reference string) error
	// Allowed reports whether the filename carries an accepted extension.
	Allowed(filename string) bool
}
