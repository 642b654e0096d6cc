package audiomessage

import (
	"net/http"

	"churchcms/internal/media"
	"churchcms/internal/pkg/apierr"
	"churchcms/internal/repository"
)

var (
	ErrAudioMessageNotFound = apierr.New(http.StatusNotFound, "Audio message not found", repository.ErrNotFound)
	ErrAudioRequired        = apierr.New(http.StatusBadRequest, "Audio file is required", media.ErrMissingFile)
	ErrUnknownCategory      = apierr.New(http.StatusBadRequest, "Category does not exist or is inactive", nil)
)
