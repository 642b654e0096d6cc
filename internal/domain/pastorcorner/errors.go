package pastorcorner

import (
	"net/http"

	"churchcms/internal/pkg/apierr"
	"churchcms/internal/repository"
)

var (
	ErrPostNotFound  = apierr.New(http.StatusNotFound, "Pastor corner post not found", repository.ErrNotFound)
	ErrNoPublished   = apierr.New(http.StatusNotFound, "No published pastor corner posts found", repository.ErrNotFound)
	ErrUnknownPastor = apierr.New(http.StatusBadRequest, "Pastor does not exist", nil)
)
