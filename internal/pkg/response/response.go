package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"churchcms/internal/media"
	"churchcms/internal/pkg/apierr"
	"churchcms/internal/pkg/validator"
	"churchcms/internal/repository"
)

const (
	statusSuccess = "Success"
	statusError   = "Error"

	internalErrorMessage = "Internal server error"
)

func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	body := gin.H{
		"status":  statusSuccess,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(statusCode, body)
}

// Paginated writes a 200 list response with a pagination block.
func Paginated(c *gin.Context, message string, data interface{}, pagination interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"status":     statusSuccess,
		"message":    message,
		"data":       data,
		"pagination": pagination,
	})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"status":  statusError,
		"message": message,
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, message string, details any) {
	c.JSON(statusCode, gin.H{
		"status":  statusError,
		"message": message,
		"error":   details,
	})
}

// Fail maps err onto the response envelope. Unexpected errors are attached to
// the context for the error logger and answered with a generic 500.
func Fail(c *gin.Context, err error) {
	var verr *validator.Error
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  statusError,
			"message": "Validation failed",
			"errors":  verr.Fields,
		})
		return
	}

	var aerr *apierr.Error
	if errors.As(err, &aerr) && aerr.Status != 0 {
		if aerr.Status >= http.StatusInternalServerError {
			_ = c.Error(err)
		}
		Error(c, aerr.Status, aerr.Error())
		return
	}

	switch {
	case errors.Is(err, media.ErrInvalidMediaType),
		errors.Is(err, media.ErrMediaTooLarge),
		errors.Is(err, media.ErrMissingFile):
		Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrDuplicate):
		Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		Error(c, http.StatusNotFound, "Resource not found")
	default:
		_ = c.Error(err)
		Error(c, http.StatusInternalServerError, internalErrorMessage)
	}
}

// BadRequest answers a malformed request body or parameter.
func BadRequest(c *gin.Context, message string, err error) {
	if err == nil {
		Error(c, http.StatusBadRequest, message)
		return
	}
	ErrorWithDetails(c, http.StatusBadRequest, message, err.Error())
}
