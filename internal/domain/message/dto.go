package message

type CreateMessageRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	CoordinatorID string `json:"coordinatorId"`
	DatePublished string `json:"datePublished"`
	IsPublished   *bool  `json:"isPublished"`
	Excerpt       string `json:"excerpt"`
}

type UpdateMessageRequest struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	CoordinatorID *string `json:"coordinatorId"`
	DatePublished *string `json:"datePublished"`
	IsPublished   *bool   `json:"isPublished"`
	Excerpt       *string `json:"excerpt"`
}
