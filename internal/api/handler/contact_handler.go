package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimart/storefront-api/internal/api/metrics"
	"github.com/minimart/storefront-api/internal/core/ports"
)

// Notifier hands a notification to the async delivery workers.
type Notifier interface {
	Enqueue(n ports.NotificationInput)
}

// ContactHandler accepts contact form submissions and forwards them to the
// shop inbox through the notification dispatcher. Delivery is asynchronous,
// hence the 202 response.
type ContactHandler struct {
	notifier  Notifier
	recipient string
}

func NewContactHandler(notifier Notifier, recipient string) *ContactHandler {
	return &ContactHandler{notifier: notifier, recipient: recipient}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10"`
}

// Submit handles POST /contact.
//
// @Summary      Submit a contact form message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message details"
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.notifier.Enqueue(ports.NotificationInput{
		Recipient: h.recipient,
		Subject:   fmt.Sprintf("Contact form: %s", req.Name),
		Body:      fmt.Sprintf("From: %s <%s>\n\n%s", req.Name, req.Email, req.Message),
	})

	metrics.ContactMessagesTotal.Inc()
	return c.JSON(http.StatusAccepted, map[string]string{"status": "accepted"})
}
