package author

import (
	"net/http"

	"churchcms/internal/pkg/apierr"
	"churchcms/internal/repository"
)

var ErrAuthorNotFound = apierr.New(http.StatusNotFound, "Author not found", repository.ErrNotFound)
