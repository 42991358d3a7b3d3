package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimart/storefront-api/internal/api/metrics"
	"github.com/minimart/storefront-api/internal/core/ports"
)

// CommentHandler handles product page comments.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type addCommentRequest struct {
	Body string `json:"body" validate:"required"`
}

// Add handles POST /v1/products/:id/comments.
//
// @Summary      Post a comment on a product
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Product ID"
// @Param        body  body      addCommentRequest  true  "Comment text"
// @Success      201   {object}  domain.Comment
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/products/{id}/comments [post]
func (h *CommentHandler) Add(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.Add(c.Request().Context(), productID, username, req.Body)
	if err != nil {
		return err
	}

	metrics.CommentsPostedTotal.Inc()
	return c.JSON(http.StatusCreated, comment)
}

// List handles GET /v1/products/:id/comments. Comments come back in the
// order they were posted.
//
// @Summary      List comments on a product
// @Tags         comments
// @Produce      json
// @Param        id   path     int  true  "Product ID"
// @Success      200  {array}  domain.Comment
// @Failure      404  {object} map[string]string
// @Router       /v1/products/{id}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	comments, err := h.service.List(c.Request().Context(), productID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}
