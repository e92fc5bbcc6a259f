package handlers

import (
	"errors"
	"net/http"
	request "salesdesk/internal/adapter/http/dto/request"
	response "salesdesk/internal/adapter/http/dto/response"
	"salesdesk/internal/domain/entities"
	"salesdesk/internal/usecase"
	"salesdesk/internal/usecase/interfaces"
	"salesdesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProductPayload = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid product payload", http.StatusUnprocessableEntity)
	errInvalidProductQuery   = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid query parameters", http.StatusUnprocessableEntity)
)

// ProductHandler handles HTTP requests for the service catalog.

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// CreateProduct adds a service to the catalog.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload request.CreateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), entities.Product{
		Name:        payload.Name,
		ServiceLine: payload.ServiceLine,
		Description: payload.Description,
		Price:       payload.Price,
		IsActive:    payload.ResolveIsActive(),
	})
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProduct(created))
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	var query request.ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidProductQuery.HTTPStatus, errInvalidProductQuery.ToHTTPError())
		return
	}

	products, err := h.usecase.List(c.Request.Context(), interfaces.ProductListFilter{
		Search:      query.Search,
		ServiceLine: query.ServiceLine,
		IsActive:    query.IsActive,
		Skip:        query.Skip,
		Limit:       query.ResolveLimit(),
	})
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetByID(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(product))
}

// UpdateProduct applies a partial update. Setting is_active to false also
// removes the product from draft orders and drops drafts left empty.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var payload request.UpdateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("product_id"), usecase.UpdateProductInput{
		Name:        payload.Name,
		ServiceLine: payload.ServiceLine,
		Description: payload.Description,
		Price:       payload.Price,
		IsActive:    payload.IsActive,
	})
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(updated))
}

// DeleteProduct hard-deletes a service with no order history and deactivates
// one that has any, reporting which action was taken.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	product, action, err := h.usecase.Delete(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProductDelete(product, action))
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidProduct), errors.Is(err, usecase.ErrInvalidProductPrice):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid product data", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrProductNameTaken):
		return pkg.NewDomainErrorSimple("PRODUCT_ALREADY_EXISTS", "A product with this name already exists", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
