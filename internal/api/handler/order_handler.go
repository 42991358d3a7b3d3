package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimart/storefront-api/internal/api/metrics"
	"github.com/minimart/storefront-api/internal/core/domain"
	"github.com/minimart/storefront-api/internal/core/ports"
)

// OrderHandler handles checkout and order management requests.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type placeOrderRequest struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required"`
	Address   string `json:"address" validate:"required"`
}

type paymentRequest struct {
	placeOrderRequest
	CardNumber string `json:"card_number" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
	ExpiryDate string `json:"expiry_date" validate:"required"`
}

// Place handles POST /v1/orders — plain checkout without the card form.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      placeOrderRequest  true  "Order details"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.Place(c.Request().Context(), ports.PlaceOrderInput{
		ProductID: req.ProductID,
		Address:   req.Address,
		Quantity:  req.Quantity,
		Username:  username,
	})
	if err != nil {
		return err
	}

	metrics.OrdersPlacedTotal.WithLabelValues("none").Inc()
	return c.JSON(http.StatusCreated, order)
}

// Pay handles POST /v1/orders/payment — checkout through the mock card form.
// The card is never charged; only its shape is checked.
//
// @Summary      Place an order with mock payment
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      paymentRequest  true  "Order and card details"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Failure      402   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/orders/payment [post]
func (h *OrderHandler) Pay(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.ConfirmPayment(c.Request().Context(), ports.PaymentInput{
		PlaceOrderInput: ports.PlaceOrderInput{
			ProductID: req.ProductID,
			Address:   req.Address,
			Quantity:  req.Quantity,
			Username:  username,
		},
		CardNumber: req.CardNumber,
		CVV:        req.CVV,
		ExpiryDate: req.ExpiryDate,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPaymentDeclined) {
			metrics.PaymentsDeclinedTotal.Inc()
		}
		return err
	}

	metrics.OrdersPlacedTotal.WithLabelValues("mock_card").Inc()
	return c.JSON(http.StatusCreated, order)
}

// ListMine handles GET /v1/orders — the caller's own order history.
//
// @Summary      List my orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Order
// @Router       /v1/orders [get]
func (h *OrderHandler) ListMine(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListForUser(c.Request().Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// ListAll handles GET /v1/admin/orders — every order in the system.
//
// @Summary      List all orders
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Order
// @Router       /v1/admin/orders [get]
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Complete handles POST /v1/admin/orders/:id/complete.
//
// @Summary      Mark an order completed
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  domain.Order
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/orders/{id}/complete [post]
func (h *OrderHandler) Complete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.service.MarkCompleted(c.Request().Context(), id)
	if err != nil {
		return err
	}

	metrics.OrdersCompletedTotal.Inc()
	return c.JSON(http.StatusOK, order)
}
