package article

import (
	"net/http"

	"churchcms/internal/pkg/apierr"
	"churchcms/internal/repository"
)

var (
	ErrArticleNotFound = apierr.New(http.StatusNotFound, "Article not found", repository.ErrNotFound)
	ErrUnknownAuthor   = apierr.New(http.StatusBadRequest, "Author does not exist", nil)
)
