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
	errInvalidCustomerPayload = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid customer payload", http.StatusUnprocessableEntity)
	errInvalidCustomerQuery   = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid query parameters", http.StatusUnprocessableEntity)
)

// CustomerHandler handles HTTP requests for corporate clients.

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// CreateCustomer registers a new corporate client.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), entities.Customer{
		Name:        payload.Name,
		LastName:    payload.LastName,
		Email:       payload.Email,
		CompanyName: payload.CompanyName,
		Industry:    payload.Industry,
	})
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomer(created))
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	var query request.ListCustomersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidCustomerQuery.HTTPStatus, errInvalidCustomerQuery.ToHTTPError())
		return
	}

	customers, err := h.usecase.List(c.Request.Context(), interfaces.CustomerListFilter{
		Search: query.Search,
		Skip:   query.Skip,
		Limit:  query.ResolveLimit(),
	})
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

// GetCustomer returns one client together with its orders.
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, orders, err := h.usecase.GetWithOrders(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomerWithOrders(customer, orders))
}

// UpdateCustomer applies a partial update to a client.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("customer_id"), usecase.UpdateCustomerInput{
		Name:        payload.Name,
		LastName:    payload.LastName,
		Email:       payload.Email,
		CompanyName: payload.CompanyName,
		Industry:    payload.Industry,
	})
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(updated))
}

// DeleteCustomer removes a client without orders; clients with order history
// are kept and the request is rejected.
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	deleted, err := h.usecase.Delete(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomerDelete(deleted))
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidCustomer):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid customer data", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCustomerEmailTaken):
		return pkg.NewDomainErrorSimple("CUSTOMER_ALREADY_EXISTS", "A customer with this email already exists", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerHasOrders):
		return pkg.NewDomainErrorSimple("CUSTOMER_HAS_ORDERS", "Customer has associated orders and cannot be deleted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
