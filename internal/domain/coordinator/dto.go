package coordinator

type CreateCoordinatorRequest struct {
	Name        string `json:"name" form:"name"`
	Occupation  string `json:"occupation" form:"occupation"`
	PhoneNumber string `json:"phone_number" form:"phone_number"`
	About       string `json:"about" form:"about"`
	ImageURL    string `json:"image_url" form:"image_url"`
	IsFeatured  bool   `json:"isFeatured" form:"isFeatured"`
}

type UpdateCoordinatorRequest struct {
	Name        *string `json:"name" form:"name"`
	Occupation  *string `json:"occupation" form:"occupation"`
	PhoneNumber *string `json:"phone_number" form:"phone_number"`
	About       *string `json:"about" form:"about"`
	ImageURL    *string `json:"image_url" form:"image_url"`
	IsFeatured  *bool   `json:"isFeatured" form:"isFeatured"`
}

type SetFeaturedRequest struct {
	IsFeatured *bool `json:"isFeatured"`
}
