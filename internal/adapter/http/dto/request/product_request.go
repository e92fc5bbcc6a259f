package request

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	ServiceLine string  `json:"service_line" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	IsActive    *bool   `json:"is_active"`
}

// ResolveIsActive applies the catalog default: products are active unless the
// payload says otherwise.
func (r CreateProductRequest) ResolveIsActive() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	ServiceLine *string  `json:"service_line"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	IsActive    *bool    `json:"is_active"`
}

type ListProductsQuery struct {
	Skip        int    `form:"skip,default=0"`
	Limit       int    `form:"limit,default=10"`
	Search      string `form:"search"`
	ServiceLine string `form:"service_line"`
	IsActive    *bool  `form:"is_active"`
}

func (q ListProductsQuery) ResolveLimit() int {
	return capLimit(q.Limit)
}
