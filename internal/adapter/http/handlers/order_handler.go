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
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid order payload", http.StatusUnprocessableEntity)
	errInvalidOrderQuery   = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid query parameters", http.StatusUnprocessableEntity)
)

// OrderHandler handles HTTP requests for sales engagements.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder opens a draft engagement. Item prices are frozen from the
// catalog at this moment and the total is computed server side.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.CustomerID, payload.ResolveProductIDs())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(created))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	var query request.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidOrderQuery.HTTPStatus, errInvalidOrderQuery.ToHTTPError())
		return
	}

	orders, err := h.usecase.List(c.Request.Context(), interfaces.OrderListFilter{
		Status:     entities.OrderStatus(strings.TrimSpace(query.Status)),
		CustomerID: query.CustomerID,
		Skip:       query.Skip,
		Limit:      query.ResolveLimit(),
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetOrder returns one engagement with its customer and items, each item
// carrying the full product it sold.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	details, err := h.usecase.GetWithDetails(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderDetails(details))
}

// UpdateOrder replaces the item set and/or advances the status. Items can only
// change while the order is a draft; the status may only move one step forward.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	in := usecase.UpdateOrderInput{}
	if payload.Status != nil {
		status := entities.OrderStatus(strings.TrimSpace(*payload.Status))
		in.Status = &status
	}
	if len(payload.Items) > 0 {
		in.ProductIDs = payload.ResolveProductIDs()
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("order_id"), in)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(updated))
}

// DeleteOrder removes a draft engagement and its items.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("order_id")); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrOrderNoItems),
		errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid order data", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderProductInactive):
		return pkg.NewDomainErrorSimple("PRODUCT_INACTIVE", "Product is inactive and cannot be ordered", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotEditable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_EDITABLE", "Only draft orders can have items modified", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotDeletable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_DELETABLE", "Only draft orders can be deleted", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_STATUS", "Unknown order status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Invalid status transition. Allowed: draft -> confirmed -> completed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderHasInactiveProducts):
		return pkg.NewDomainErrorSimple("ORDER_HAS_INACTIVE_PRODUCTS", "Cannot confirm an order with inactive products. Remove these items before confirming", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
