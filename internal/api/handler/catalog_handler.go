package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimart/storefront-api/internal/api/metrics"
	"github.com/minimart/storefront-api/internal/core/ports"
)

// CatalogHandler handles HTTP requests for product management. Create and
// Update accept multipart forms so an image can ride along with the fields;
// price and stock stay strings here and are validated by the service.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// List handles GET /v1/products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /v1/products [get]
func (h *CatalogHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /v1/products/:id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /v1/products/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /v1/products (admin only, multipart form).
//
// @Summary      Create a product
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        name   formData  string  true   "Product name"
// @Param        price  formData  string  true   "Unit price"
// @Param        stock  formData  string  true   "Stock count"
// @Param        image  formData  file    false  "Product image"
// @Success      201    {object}  domain.Product
// @Failure      400    {object}  map[string]string
// @Failure      409    {object}  map[string]string
// @Router       /v1/products [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	in := ports.CreateProductInput{
		Name:  c.FormValue("name"),
		Price: c.FormValue("price"),
		Stock: c.FormValue("stock"),
	}

	upload, closeUpload, err := formImage(c)
	if err != nil {
		return err
	}
	if upload != nil {
		defer closeUpload()
		in.Image = upload
	}

	product, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /v1/products/:id (admin only, multipart form).
// Fields absent from the form keep their current value.
//
// @Summary      Update a product
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      int     true   "Product ID"
// @Param        name   formData  string  false  "Product name"
// @Param        price  formData  string  false  "Unit price"
// @Param        stock  formData  string  false  "Stock count"
// @Param        image  formData  file    false  "Product image"
// @Success      200    {object}  domain.Product
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /v1/products/{id} [put]
func (h *CatalogHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "expected multipart form")
	}

	var in ports.UpdateProductInput
	if v, ok := formField(form, "name"); ok {
		in.Name = &v
	}
	if v, ok := formField(form, "price"); ok {
		in.Price = &v
	}
	if v, ok := formField(form, "stock"); ok {
		in.Stock = &v
	}

	upload, closeUpload, err := formImage(c)
	if err != nil {
		return err
	}
	if upload != nil {
		defer closeUpload()
		in.Image = upload
	}

	product, err := h.service.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /v1/products/:id (admin only). Orders referencing
// the product go with it.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  int  true  "Product ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/products/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// formField returns a form value and whether the field was present at all,
// which is how partial updates are told apart from blanking a field.
func formField(form *multipart.Form, name string) (string, bool) {
	vals, ok := form.Value[name]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// formImage opens the optional "image" file part. The caller must invoke the
// returned close func once the upload has been consumed.
func formImage(c echo.Context) (*ports.ImageUpload, func(), error) {
	fh, err := c.FormFile("image")
	if err != nil {
		// Absent file part is fine; the image is optional.
		return nil, nil, nil
	}

	src, err := fh.Open()
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable image upload")
	}
	return &ports.ImageUpload{Filename: fh.Filename, Content: src}, func() { _ = src.Close() }, nil
}
