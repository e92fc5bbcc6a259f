package entities

import "time"

// Customer is a corporate client of the firm.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// Email is unique across the table; the use case checks the GSI before
// create/update. Name and LastName identify the account contact, CompanyName
// and Industry the client company itself.
type Customer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	CompanyName string    `json:"company_name"`
	Industry    string    `json:"industry"`
	CreatedAt   time.Time `json:"created_at"`
}
