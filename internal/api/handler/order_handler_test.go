package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/minimart/storefront-api/internal/core/domain"
	"github.com/minimart/storefront-api/internal/core/ports"
)

type stubOrderService struct {
	placeFn       func(ctx context.Context, in ports.PlaceOrderInput) (*domain.Order, error)
	payFn         func(ctx context.Context, in ports.PaymentInput) (*domain.Order, error)
	completeFn    func(ctx context.Context, orderID uint) (*domain.Order, error)
	listForUserFn func(ctx context.Context, username string) ([]*domain.Order, error)
	listAllFn     func(ctx context.Context) ([]*domain.Order, error)
}

func (s *stubOrderService) Place(ctx context.Context, in ports.PlaceOrderInput) (*domain.Order, error) {
	return s.placeFn(ctx, in)
}

func (s *stubOrderService) ConfirmPayment(ctx context.Context, in ports.PaymentInput) (*domain.Order, error) {
	return s.payFn(ctx, in)
}

func (s *stubOrderService) MarkCompleted(ctx context.Context, orderID uint) (*domain.Order, error) {
	return s.completeFn(ctx, orderID)
}

func (s *stubOrderService) ListForUser(ctx context.Context, username string) ([]*domain.Order, error) {
	return s.listForUserFn(ctx, username)
}

func (s *stubOrderService) ListAll(ctx context.Context) ([]*domain.Order, error) {
	return s.listAllFn(ctx)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, username, role string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("username", username)
	c.Set("role", role)
	return c
}

func TestOrderHandler_Place_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		placeFn: func(ctx context.Context, in ports.PlaceOrderInput) (*domain.Order, error) {
			if in.Username != "alice" || in.ProductID != 3 || in.Quantity != 2 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Order{ID: 1, Username: in.Username, ProductID: in.ProductID, Quantity: in.Quantity, Status: domain.StatusPending}, nil
		},
	}
	handler := NewOrderHandler(stub)

	body := strings.NewReader(`{"product_id":3,"quantity":2,"address":"1 Main St"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "alice", domain.RoleUser)

	if err := handler.Place(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestOrderHandler_Place_MissingIdentity(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		placeFn: func(ctx context.Context, in ports.PlaceOrderInput) (*domain.Order, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewOrderHandler(stub)

	body := strings.NewReader(`{"product_id":3,"quantity":2,"address":"1 Main St"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Place(c)
	if code := httpCode(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestOrderHandler_Place_OutOfStock(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		placeFn: func(ctx context.Context, in ports.PlaceOrderInput) (*domain.Order, error) {
			return nil, domain.ErrInsufficientStock
		},
	}
	handler := NewOrderHandler(stub)

	body := strings.NewReader(`{"product_id":3,"quantity":99,"address":"1 Main St"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "alice", domain.RoleUser)

	err := handler.Place(c)
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestOrderHandler_Pay_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		payFn: func(ctx context.Context, in ports.PaymentInput) (*domain.Order, error) {
			if in.CardNumber != "1234-5678-9012-3456" || in.ExpiryDate != "12/25" {
				t.Fatalf("unexpected card input: %+v", in)
			}
			return &domain.Order{ID: 2, Username: in.Username, Status: domain.StatusPending}, nil
		},
	}
	handler := NewOrderHandler(stub)

	body := strings.NewReader(`{"product_id":3,"quantity":1,"address":"1 Main St","card_number":"1234-5678-9012-3456","cvv":"123","expiry_date":"12/25"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/orders/payment", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "alice", domain.RoleUser)

	if err := handler.Pay(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestOrderHandler_Pay_Declined(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		payFn: func(ctx context.Context, in ports.PaymentInput) (*domain.Order, error) {
			return nil, domain.ErrPaymentDeclined
		},
	}
	handler := NewOrderHandler(stub)

	body := strings.NewReader(`{"product_id":3,"quantity":1,"address":"1 Main St","card_number":"123","cvv":"123","expiry_date":"12/25"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/orders/payment", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "alice", domain.RoleUser)

	err := handler.Pay(c)
	if !errors.Is(err, domain.ErrPaymentDeclined) {
		t.Fatalf("expected ErrPaymentDeclined, got %v", err)
	}
}

func TestOrderHandler_ListMine(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		listForUserFn: func(ctx context.Context, username string) ([]*domain.Order, error) {
			if username != "alice" {
				t.Fatalf("expected alice, got %s", username)
			}
			return []*domain.Order{{ID: 1, Username: "alice"}}, nil
		},
	}
	handler := NewOrderHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "alice", domain.RoleUser)

	if err := handler.ListMine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOrderHandler_Complete(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		completeFn: func(ctx context.Context, orderID uint) (*domain.Order, error) {
			if orderID != 5 {
				t.Fatalf("expected order 5, got %d", orderID)
			}
			return &domain.Order{ID: orderID, Status: domain.StatusCompleted}, nil
		},
	}
	handler := NewOrderHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/orders/5/complete", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "root", domain.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := handler.Complete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOrderHandler_Complete_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		completeFn: func(ctx context.Context, orderID uint) (*domain.Order, error) {
			return nil, domain.ErrOrderNotFound
		},
	}
	handler := NewOrderHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/orders/99/complete", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "root", domain.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := handler.Complete(c)
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
