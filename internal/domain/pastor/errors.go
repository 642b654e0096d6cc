package pastor

import (
	"net/http"

	"churchcms/internal/pkg/apierr"
	"churchcms/internal/repository"
)

var (
	ErrPastorNotFound = apierr.New(http.StatusNotFound, "Pastor not found", repository.ErrNotFound)
	ErrNoActive       = apierr.New(http.StatusNotFound, "No active pastor found", repository.ErrNotFound)
)
