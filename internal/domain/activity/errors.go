package activity

import (
	"net/http"

	"churchcms/internal/pkg/apierr"
	"churchcms/internal/repository"
)

var ErrActivityNotFound = apierr.New(http.StatusNotFound, "Activity not found", repository.ErrNotFound)
