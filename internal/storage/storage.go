// Package storage puts media blobs in an object store and addresses them by
// public URL. The URL string handed back by Upload is the only handle a record
// keeps; Delete parses the object key back out of it.
package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrUploadFailed     = errors.New("failed to upload file")
	ErrDeleteFailed     = errors.New("failed to delete file")
	ErrInvalidReference = errors.New("invalid file reference")
)

// ObjectStore uploads and deletes blobs.
type ObjectStore interface {
	// Upload stores r under <folder>/<uuid><ext of originalName> and returns its public URL.
	Upload(ctx context.Context, r io.Reader, originalName, folder string) (string, error)
	// Delete removes the blob behind url. Deleting a missing blob is not an error.
	Delete(ctx context.Context, url string) error
}

// NewKey builds a fresh object key inside folder, keeping the original extension.
func NewKey(folder, originalName string) string {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	name := uuid.NewString() + filepath.Ext(originalName)
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

var extContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",

	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".wave": "audio/wav",
	".m4a":  "audio/m4a",
	".mp4":  "audio/mp4",
	".aac":  "audio/aac",
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".flac": "audio/flac",
	".opus": "audio/opus",
	".webm": "audio/webm",
	".3gp":  "audio/3gpp",
	".3g2":  "audio/3gpp2",
	".amr":  "audio/amr",
	".mid":  "audio/midi",
	".midi": "audio/midi",
	".wma":  "audio/wma",
}

// ContentTypeForKey maps the key's extension to a MIME type.
func ContentTypeForKey(key string) string {
	if i := strings.Index(key, "?"); i >= 0 {
		key = key[:i]
	}
	if ct, ok := extContentTypes[strings.ToLower(filepath.Ext(key))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// urlResolver converts between object keys and public URLs for a bucket.
type urlResolver struct {
	bucket  string
	cdnBase string
}

func newURLResolver(bucket, cdnBase string) urlResolver {
	return urlResolver{
		bucket:  strings.TrimSpace(bucket),
		cdnBase: strings.TrimRight(strings.TrimSpace(cdnBase), "/"),
	}
}

func (r urlResolver) URL(key string) string {
	key = strings.TrimLeft(key, "/")
	if r.cdnBase != "" {
		return r.cdnBase + "/" + key
	}
	return "https://storage.googleapis.com/" + r.bucket + "/" + key
}

// Key extracts the object key. Tried in order: CDN prefix, bucket domain
// (path-style and virtual-hosted), gs:// scheme.
func (r urlResolver) Key(raw string) (string, error) {
	u := strings.TrimSpace(raw)
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}

	var key string
	switch {
	case r.cdnBase != "" && strings.HasPrefix(u, r.cdnBase+"/"):
		key = strings.TrimPrefix(u, r.cdnBase+"/")
	case strings.Contains(u, "storage.googleapis.com/"+r.bucket+"/"):
		key = u[strings.Index(u, "storage.googleapis.com/"+r.bucket+"/")+len("storage.googleapis.com/"+r.bucket+"/"):]
	case strings.Contains(u, r.bucket+".storage.googleapis.com/"):
		key = u[strings.Index(u, r.bucket+".storage.googleapis.com/")+len(r.bucket+".storage.googleapis.com/"):]
	case strings.HasPrefix(u, "gs://"+r.bucket+"/"):
		key = strings.TrimPrefix(u, "gs://"+r.bucket+"/")
	}

	if key == "" {
		return "", ErrInvalidReference
	}
	return key, nil
}
