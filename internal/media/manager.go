// Package media ties uploaded files to the records that reference them.
//
// A record holds nothing but the public URL of its blob. Manager validates,
// uploads and releases blobs; Lifecycle sequences those calls around record
// writes so that a replaced or deleted record never keeps its old blob alive.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/webp"

	"churchcms/internal/pkg/logger"
	"churchcms/internal/storage"
)

// Queue takes blob URLs whose deletion must be retried later.
type Queue interface {
	Enqueue(ctx context.Context, url string, cause error) error
}

// Attachment is what an upload produced.
type Attachment struct {
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

// Manager validates, uploads and releases blobs in the object store.
type Manager struct {
	store storage.ObjectStore
	queue Queue
	log   *logger.Logger
}

// NewManager returns a Manager that hands failed deletions to queue.
func NewManager(store storage.ObjectStore, queue Queue, log *logger.Logger) *Manager {
	return &Manager{store: store, queue: queue, log: log.With("component", "media")}
}

// Validate checks type and size of f for slot without touching the store.
func (m *Manager) Validate(slot Slot, f *File) error {
	if f == nil {
		return fmt.Errorf("%w: %s", ErrMissingFile, slot.Field)
	}
	switch slot.Kind {
	case Image:
		if !storage.IsValidImageType(f.ContentType) {
			return fmt.Errorf("%w: %s must be JPEG, PNG, GIF, WebP or SVG", ErrInvalidMediaType, slot.Field)
		}
		if !storage.IsValidImageSize(f.Size) {
			return fmt.Errorf("%w: %s exceeds 5MB", ErrMediaTooLarge, slot.Field)
		}
	case Audio:
		if !storage.IsValidAudioType(f.ContentType) {
			return fmt.Errorf("%w: %s must be an audio file", ErrInvalidMediaType, slot.Field)
		}
		if !storage.IsValidAudioSize(f.Size) {
			return fmt.Errorf("%w: %s exceeds 100MB", ErrMediaTooLarge, slot.Field)
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidMediaType, slot.Field)
	}
	return nil
}

// Upload validates f and stores it in the slot's folder.
func (m *Manager) Upload(ctx context.Context, slot Slot, f *File) (*Attachment, error) {
	if err := m.Validate(slot, f); err != nil {
		return nil, err
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", slot.Field, err)
	}
	defer rc.Close()

	att := &Attachment{Size: f.Size, ContentType: f.ContentType}

	var body io.Reader = rc
	if slot.Kind == Image {
		// images are small enough to buffer for dimension sniffing
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", slot.Field, err)
		}
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
			att.Width, att.Height = cfg.Width, cfg.Height
		}
		body = bytes.NewReader(data)
	}

	url, err := m.store.Upload(ctx, body, f.Name, slot.Folder)
	if err != nil {
		return nil, err
	}
	att.URL = url
	return att, nil
}

// Release deletes the blob behind url. A failed delete is logged and queued
// for the cleanup worker; it is never returned to the caller.
func (m *Manager) Release(ctx context.Context, url string) {
	if url == "" {
		return
	}
	err := m.store.Delete(ctx, url)
	if err == nil {
		return
	}
	if errors.Is(err, storage.ErrInvalidReference) {
		m.log.Warn("media: blob url not recognised, skipping delete", "url", url)
		return
	}

	m.log.Warn("media: blob delete failed, queued for retry", "url", url, "error", err)
	if m.queue == nil {
		return
	}
	if qerr := m.queue.Enqueue(context.WithoutCancel(ctx), url, err); qerr != nil {
		m.log.Error("media: enqueue blob deletion failed", "url", url, "error", qerr)
	}
}
