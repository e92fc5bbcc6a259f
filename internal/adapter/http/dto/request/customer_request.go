package request

type CreateCustomerRequest struct {
	Name        string `json:"name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	CompanyName string `json:"company_name" binding:"required"`
	Industry    string `json:"industry" binding:"required"`
}

// UpdateCustomerRequest is a partial update; absent fields keep their stored
// value, so every field is a pointer.
type UpdateCustomerRequest struct {
	Name        *string `json:"name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	CompanyName *string `json:"company_name"`
	Industry    *string `json:"industry"`
}

type ListCustomersQuery struct {
	Skip   int    `form:"skip,default=0"`
	Limit  int    `form:"limit,default=10"`
	Search string `form:"search"`
}

func (q ListCustomersQuery) ResolveLimit() int {
	return capLimit(q.Limit)
}
