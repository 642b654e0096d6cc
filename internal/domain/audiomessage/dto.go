package audiomessage

// CreateAudioMessageRequest arrives as multipart form fields next to the
// audio and thumbnail files.
type CreateAudioMessageRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Speaker     string `json:"speaker" form:"speaker"`
	Category    string `json:"category" form:"category"`
	Duration    string `json:"duration" form:"duration"`
	Date        string `json:"date" form:"date"`
}

type UpdateAudioMessageRequest struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
	Speaker     *string `json:"speaker" form:"speaker"`
	Category    *string `json:"category" form:"category"`
	Duration    *string `json:"duration" form:"duration"`
	Date        *string `json:"date" form:"date"`
	IsActive    *bool   `json:"isActive" form:"isActive"`
}

// Filter narrows listings. Category and Speaker equal to "all" are ignored.
type Filter struct {
	Category string
	Speaker  string
	Search   string
}

type PlayResponse struct {
	PlayCount int64 `json:"playCount"`
}
