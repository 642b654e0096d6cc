package coordinator

import (
	"net/http"

	"churchcms/internal/pkg/apierr"
	"churchcms/internal/repository"
)

var (
	ErrCoordinatorNotFound = apierr.New(http.StatusNotFound, "Coordinator not found", repository.ErrNotFound)
	ErrNoFeatured          = apierr.New(http.StatusNotFound, "No featured coordinator found", repository.ErrNotFound)
)
