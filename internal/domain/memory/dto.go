package memory

type CreateMemoryRequest struct {
	ImageURL   string `json:"imageUrl"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	ImgType    string `json:"imgType"`
	ActivityID string `json:"activityId"`
}

// CreateWithImageRequest carries the form fields sent next to the image.
type CreateWithImageRequest struct {
	ActivityID string `form:"activityId"`
}

type UpdateMemoryRequest struct {
	ImageURL   *string `json:"imageUrl" form:"imageUrl"`
	Width      *int    `json:"width" form:"width"`
	Height     *int    `json:"height" form:"height"`
	ImgType    *string `json:"imgType" form:"imgType"`
	ActivityID *string `json:"activityId" form:"activityId"`
}
