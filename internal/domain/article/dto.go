package article

// CreateArticleRequest is accepted both as JSON and as multipart form fields.
type CreateArticleRequest struct {
	Title        string `json:"title" form:"title"`
	AuthorID     string `json:"authorId" form:"authorId"`
	Text         string `json:"text" form:"text"`
	Date         string `json:"date" form:"date"`
	ReadTime     string `json:"readTime" form:"readTime"`
	DisplayImage string `json:"displayImage" form:"displayImage"`
}

type UpdateArticleRequest struct {
	Title        *string `json:"title" form:"title"`
	AuthorID     *string `json:"authorId" form:"authorId"`
	Text         *string `json:"text" form:"text"`
	Date         *string `json:"date" form:"date"`
	ReadTime     *string `json:"readTime" form:"readTime"`
	DisplayImage *string `json:"displayImage" form:"displayImage"`
}
