package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/minimart/storefront-api/internal/core/domain"
	"github.com/minimart/storefront-api/internal/core/ports"
)

// CatalogService implements admin product management and the public listing.
type CatalogService struct {
	repo   ports.ProductRepository
	images ports.ImageStore
	logger zerolog.Logger
}

func NewCatalogService(repo ports.ProductRepository, images ports.ImageStore, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, images: images, logger: logger}
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id uint) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price == "" || in.Stock == "" {
		return nil, fmt.Errorf("%w: name, price and stock are required", domain.ErrInvalidInput)
	}

	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}
	stock, err := parseStock(in.Stock)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, domain.ErrProductExists
	} else if !errors.Is(err, domain.ErrProductNotFound) {
		return nil, fmt.Errorf("create product: %w", err)
	}

	product := &domain.Product{
		Name:  name,
		Price: price,
		Stock: stock,
		Image: s.storeImage(in.Image),
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("name", created.Name).Uint("product_id", created.ID).Msg("product created")
	return created, nil
}

func (s *CatalogService) Update(ctx context.Context, id uint, in ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrInvalidInput)
		}
		product.Name = name
	}
	if in.Price != nil {
		price, err := parsePrice(*in.Price)
		if err != nil {
			return nil, err
		}
		product.Price = price
	}
	if in.Stock != nil {
		stock, err := parseStock(*in.Stock)
		if err != nil {
			return nil, err
		}
		product.Stock = stock
	}
	if ref := s.storeImage(in.Image); ref != "" {
		product.Image = ref
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("product_id", product.ID).Msg("product updated")
	return product, nil
}

// Delete removes the product together with every order that references it.
// The stored image is removed best-effort after the commit.
func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if product.Image != "" {
		if err := s.images.Remove(product.Image); err != nil {
			s.logger.Warn().Err(err).Str("image", product.Image).Msg("failed to remove product image")
		}
	}

	s.logger.Info().Uint("product_id", id).Str("name", product.Name).Msg("product deleted")
	return nil
}

// storeImage saves an uploaded image and returns its reference. Uploads with
// a disallowed extension are skipped, matching the admin form behaviour: the
// product is stored without an image rather than rejected.
func (s *CatalogService) storeImage(img *ports.ImageUpload) string {
	if img == nil || img.Filename == "" {
		return ""
	}
	if !s.images.Allowed(img.Filename) {
		s.logger.Warn().Str("filename", img.Filename).Msg("image extension not allowed, storing product without image")
		return ""
	}
	ref, err := s.images.Save(img.Filename, img.Content)
	if err != nil {
		s.logger.Warn().Err(err).Str("filename", img.Filename).Msg("failed to store image")
		return ""
	}
	return ref
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: price must be a number", domain.ErrInvalidInput)
	}
	if price < 0 {
		return 0, fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidInput)
	}
	return price, nil
}

func parseStock(raw string) (int, error) {
	stock, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: stock must be an integer", domain.ErrInvalidInput)
	}
	if stock < 0 {
		return 0, fmt.Errorf("%w: stock cannot be negative", domain.ErrInvalidInput)
	}
	return stock, nil
}
