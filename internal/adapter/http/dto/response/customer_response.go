package response

import (
	"fmt"
	"time"

	"salesdesk/internal/domain/entities"
)

type CustomerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	CompanyName string    `json:"company_name"`
	Industry    string    `json:"industry"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		LastName:    c.LastName,
		Email:       c.Email,
		CompanyName: c.CompanyName,
		Industry:    c.Industry,
		CreatedAt:   c.CreatedAt,
	}
}

func FromCustomers(list []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromCustomer(c))
	}
	return out
}

type CustomerWithOrdersResponse struct {
	CustomerResponse
	Orders []OrderResponse `json:"orders"`
}

func FromCustomerWithOrders(c entities.Customer, orders []entities.Order) CustomerWithOrdersResponse {
	return CustomerWithOrdersResponse{
		CustomerResponse: FromCustomer(c),
		Orders:           FromOrders(orders),
	}
}

type CustomerDeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func FromCustomerDelete(c entities.Customer) CustomerDeleteResponse {
	return CustomerDeleteResponse{
		Message: fmt.Sprintf("Customer %s %s deleted successfully", c.Name, c.LastName),
		ID:      c.ID,
	}
}
