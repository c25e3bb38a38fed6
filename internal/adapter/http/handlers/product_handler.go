package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/giancarlo349/G-OS3/internal/adapter/http/dto/request"
	response "github.com/giancarlo349/G-OS3/internal/adapter/http/dto/response"
	"github.com/giancarlo349/G-OS3/internal/adapter/http/middleware"
	"github.com/giancarlo349/G-OS3/internal/usecase"
	"github.com/giancarlo349/G-OS3/internal/usecase/interfaces"
	"github.com/giancarlo349/G-OS3/pkg"
)

var errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)

// ProductHandler handles HTTP requests for the catalog manager and the
// typing suggestions.

type ProductHandler struct {
	catalog     usecase.ICatalogUseCase
	suggestions usecase.ISuggestionUseCase
	notifier    interfaces.IChangeNotifier
}

func NewProductHandler(catalog usecase.ICatalogUseCase, suggestions usecase.ISuggestionUseCase, notifier interfaces.IChangeNotifier) *ProductHandler {
	return &ProductHandler{catalog: catalog, suggestions: suggestions, notifier: notifier}
}

// Watch streams one server-sent event per remote write to the products
// collection.
func (h *ProductHandler) Watch(c *gin.Context) {
	watchCollection(c, h.notifier, "products")
}

func (h *ProductHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	products, err := h.catalog.List(c.Request.Context(), user, c.Query("filter"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products))
}

// Suggest serves the ranked shortlist for the item entry form. Queries under
// two characters yield an empty list, not an error.
func (h *ProductHandler) Suggest(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	products, err := h.suggestions.Suggest(c.Request.Context(), user, c.Query("q"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products))
}

func (h *ProductHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	product, err := h.catalog.Create(c.Request.Context(), user, payload.Description, payload.Price)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProduct(product))
}

func (h *ProductHandler) Update(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	product, err := h.catalog.Update(c.Request.Context(), user, c.Param("id"), payload.Description, payload.Price)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(product))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	if err := h.catalog.Delete(c.Request.Context(), user, c.Param("id")); err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidDescription), errors.Is(err, usecase.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
