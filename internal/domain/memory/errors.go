package memory

import (
	"net/http"

	"churchcms/internal/pkg/apierr"
	"churchcms/internal/repository"
)

var (
	ErrMemoryNotFound   = apierr.New(http.StatusNotFound, "Memory not found", repository.ErrNotFound)
	ErrActivityNotFound = apierr.New(http.StatusNotFound, "Activity not found", repository.ErrNotFound)
	ErrUnknownActivity  = apierr.New(http.StatusBadRequest, "Activity does not exist", nil)
)
