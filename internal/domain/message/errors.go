package message

import (
	"net/http"

	"churchcms/internal/pkg/apierr"
	"churchcms/internal/repository"
)

var (
	ErrMessageNotFound    = apierr.New(http.StatusNotFound, "Message not found", repository.ErrNotFound)
	ErrNoPublished        = apierr.New(http.StatusNotFound, "No published messages found", repository.ErrNotFound)
	ErrUnknownCoordinator = apierr.New(http.StatusBadRequest, "Coordinator does not exist", nil)
)
