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

// Notifier is the interface the service uses to hand off notifications for
// asynchronous delivery.
type Notifier interface {
	Enqueue(n ports.NotificationInput)
}

// OrderService implements checkout, the mock payment flow and order
// management.
type OrderService struct {
	orders   ports.OrderRepository
	products ports.ProductRepository
	users    ports.AuthRepository
	notifier Notifier
	logger   zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, products ports.ProductRepository, users ports.AuthRepository, notifier Notifier, logger zerolog.Logger) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		users:    users,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *OrderService) Place(ctx context.Context, in ports.PlaceOrderInput) (*domain.Order, error) {
	if in.Username == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Address) == "" {
		return nil, fmt.Errorf("%w: address is required", domain.ErrInvalidInput)
	}

	product, err := s.products.FindByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product.Stock < in.Quantity {
		return nil, domain.ErrInsufficientStock
	}

	order := &domain.Order{
		Username:  in.Username,
		ProductID: product.ID,
		Address:   strings.TrimSpace(in.Address),
		Quantity:  in.Quantity,
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	// The repository re-checks stock inside the transaction; the read above
	// only provides an early exit and a friendly product name for logging.
	created, err := s.orders.CreateWithStockDecrement(ctx, order)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Uint("order_id", created.ID).
		Uint("product_id", product.ID).
		Int("quantity", created.Quantity).
		Str("username", created.Username).
		Msg("order placed")

	s.notifyOrderPlaced(ctx, created, product)

	return created, nil
}

// ConfirmPayment runs the mock card checks and then places the order. This is
// a simulation for demo purposes only: the card number and expiry date are
// checked for shape, never charged or verified against a payment network.
func (s *OrderService) ConfirmPayment(ctx context.Context, in ports.PaymentInput) (*domain.Order, error) {
	if in.Username == "" {
		return nil, domain.ErrInvalidCredentials
	}

	card := strings.NewReplacer("-", "", " ", "").Replace(in.CardNumber)
	if len(card) != 16 || !allDigits(card) {
		return nil, fmt.Errorf("%w: card rejected", domain.ErrPaymentDeclined)
	}
	if len(in.ExpiryDate) != 5 {
		return nil, fmt.Errorf("%w: invalid expiry date", domain.ErrPaymentDeclined)
	}

	return s.Place(ctx, in.PlaceOrderInput)
}

func (s *OrderService) MarkCompleted(ctx context.Context, orderID uint) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// Idempotent: completing a completed order changes nothing.
	if order.Status == domain.StatusCompleted {
		return order, nil
	}

	if !order.Status.CanTransitionTo(domain.StatusCompleted) {
		return nil, fmt.Errorf("%w (from %s)", domain.ErrInvalidTransition, order.Status)
	}

	if err := s.orders.UpdateStatus(ctx, order.ID, domain.StatusCompleted); err != nil {
		return nil, err
	}
	order.Status = domain.StatusCompleted

	s.logger.Info().Uint("order_id", order.ID).Msg("order completed")
	return order, nil
}

func (s *OrderService) ListForUser(ctx context.Context, username string) ([]*domain.Order, error) {
	if username == "" {
		return nil, domain.ErrInvalidCredentials
	}
	return s.orders.ListByUsername(ctx, username)
}

func (s *OrderService) ListAll(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.ListAll(ctx)
}

// notifyOrderPlaced queues a confirmation mail. Delivery is best effort and
// never blocks or fails the checkout.
func (s *OrderService) notifyOrderPlaced(ctx context.Context, order *domain.Order, product *domain.Product) {
	if s.notifier == nil {
		return
	}
	user, err := s.users.FindByUsername(ctx, order.Username)
	if err != nil {
		s.logger.Warn().Err(err).Str("username", order.Username).Msg("cannot resolve recipient for order confirmation")
		return
	}
	s.notifier.Enqueue(ports.NotificationInput{
		Recipient: user.Email,
		Subject:   fmt.Sprintf("Order #%d confirmed", order.ID),
		Body: fmt.Sprintf("Hi %s,\n\nyour order for %d x %s has been placed and is now pending.\n",
			order.Username, order.Quantity, product.Name),
	})
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
