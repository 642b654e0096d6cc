package pastorcorner

type CreatePostRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	PastorID      string `json:"pastorId"`
	DatePublished string `json:"datePublished"`
	IsPublished   *bool  `json:"isPublished"`
	Excerpt       string `json:"excerpt"`
}

type UpdatePostRequest struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	PastorID      *string `json:"pastorId"`
	DatePublished *string `json:"datePublished"`
	IsPublished   *bool   `json:"isPublished"`
	Excerpt       *string `json:"excerpt"`
}
