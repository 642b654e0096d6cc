package category

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   *int   `json:"sortOrder"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sortOrder"`
	IsActive    *bool   `json:"isActive"`
}

type Order struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sortOrder"`
}

type ReorderRequest struct {
	CategoryOrders *[]Order `json:"categoryOrders"`
}

// ListFilter narrows category listings.
type ListFilter struct {
	IncludeInactive bool
	Search          string
}
