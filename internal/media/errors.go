package media

import "errors"

var (
	ErrInvalidMediaType = errors.New("invalid media type")
	ErrMediaTooLarge    = errors.New("media file too large")
	ErrMissingFile      = errors.New("file is required")
)
