package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"churchcms/internal/media"
)

// FormFiles collects the named multipart files from the request. Fields that
// were not sent are absent from the result; a body that is not multipart
// yields an empty set.
func FormFiles(c *gin.Context, fields ...string) (media.Files, error) {
	files := media.Files{}
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return files, nil
		}
		return nil, err
	}
	for _, field := range fields {
		if headers := form.File[field]; len(headers) > 0 {
			files[field] = media.FromHeader(headers[0])
		}
	}
	return files, nil
}
