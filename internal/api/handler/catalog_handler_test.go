package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/minimart/storefront-api/internal/core/domain"
	"github.com/minimart/storefront-api/internal/core/ports"
)

type stubCatalogService struct {
	listFn   func(ctx context.Context) ([]*domain.Product, error)
	getFn    func(ctx context.Context, id uint) (*domain.Product, error)
	createFn func(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error)
	updateFn func(ctx context.Context, id uint, in ports.UpdateProductInput) (*domain.Product, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (s *stubCatalogService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubCatalogService) Get(ctx context.Context, id uint) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubCatalogService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, in)
}

func (s *stubCatalogService) Update(ctx context.Context, id uint, in ports.UpdateProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubCatalogService) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

// multipartBody builds a multipart form with the given fields and an
// optional image part.
func multipartBody(t *testing.T, fields map[string]string, imageName string, imageData []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if imageName != "" {
		fw, err := w.CreateFormFile("image", imageName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(imageData); err != nil {
			t.Fatalf("write image: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestCatalogHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		listFn: func(ctx context.Context) ([]*domain.Product, error) {
			return []*domain.Product{{ID: 1, Name: "Mug"}, {ID: 2, Name: "Shirt"}}, nil
		},
	}
	handler := NewCatalogHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCatalogHandler_Get_InvalidID(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		getFn: func(ctx context.Context, id uint) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewCatalogHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/products/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.Get(c)
	if code := httpCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestCatalogHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		getFn: func(ctx context.Context, id uint) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewCatalogHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/products/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	err := handler.Get(c)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCatalogHandler_Create_WithImage(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		createFn: func(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
			if in.Name != "Mug" || in.Price != "9.99" || in.Stock != "5" {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.Image == nil || in.Image.Filename != "mug.png" {
				t.Fatalf("expected image upload, got %+v", in.Image)
			}
			data, err := io.ReadAll(in.Image.Content)
			if err != nil || string(data) != "fake-png" {
				t.Fatalf("unexpected image content: %q %v", data, err)
			}
			return &domain.Product{ID: 1, Name: in.Name, Price: 9.99, Stock: 5, Image: "mug.png"}, nil
		},
	}
	handler := NewCatalogHandler(stub)

	body, contentType := multipartBody(t, map[string]string{
		"name":  "Mug",
		"price": "9.99",
		"stock": "5",
	}, "mug.png", []byte("fake-png"))

	req := httptest.NewRequest(http.MethodPost, "/v1/products", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCatalogHandler_Create_WithoutImage(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		createFn: func(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
			if in.Image != nil {
				t.Fatalf("expected no image, got %+v", in.Image)
			}
			return &domain.Product{ID: 2, Name: in.Name}, nil
		},
	}
	handler := NewCatalogHandler(stub)

	body, contentType := multipartBody(t, map[string]string{
		"name":  "Shirt",
		"price": "19.99",
		"stock": "3",
	}, "", nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/products", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCatalogHandler_Update_PartialFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		updateFn: func(ctx context.Context, id uint, in ports.UpdateProductInput) (*domain.Product, error) {
			if id != 4 {
				t.Fatalf("expected id 4, got %d", id)
			}
			if in.Name != nil || in.Stock != nil {
				t.Fatalf("expected only price to be set: %+v", in)
			}
			if in.Price == nil || *in.Price != "24.50" {
				t.Fatalf("expected price 24.50, got %v", in.Price)
			}
			return &domain.Product{ID: id, Price: 24.50}, nil
		},
	}
	handler := NewCatalogHandler(stub)

	body, contentType := multipartBody(t, map[string]string{"price": "24.50"}, "", nil)

	req := httptest.NewRequest(http.MethodPut, "/v1/products/4", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("4")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCatalogHandler_Delete(t *testing.T) {
	e := newTestEcho()
	deleted := uint(0)
	stub := &stubCatalogService{
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = id
			return nil
		},
	}
	handler := NewCatalogHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/v1/products/9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != 9 {
		t.Fatalf("expected id 9 deleted, got %d", deleted)
	}
}
