package media

import (
	"context"

	"churchcms/internal/pkg/validator"
)

// pendingURL stands in for a URL the upload has not produced yet.
const pendingURL = "pending://upload"

// Store is the record persistence a Lifecycle needs.
type Store[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id string, preload ...string) (*T, error)
	Save(ctx context.Context, entity *T) error
	DeleteByID(ctx context.Context, id string) (*T, error)
}

// Binding connects a Slot to the entity field holding its URL.
type Binding[T any] struct {
	Slot     Slot
	Required bool
	Get      func(*T) string
	// Set stores the URL and any side fields (size, dimensions) on the entity.
	Set func(*T, *Attachment)
}

// Lifecycle runs create, replace and delete for a media-carrying entity.
type Lifecycle[T any] struct {
	store    Store[T]
	media    *Manager
	bindings []Binding[T]
}

// NewLifecycle binds the media slots of T to its store.
func NewLifecycle[T any](store Store[T], m *Manager, bindings ...Binding[T]) *Lifecycle[T] {
	return &Lifecycle[T]{store: store, media: m, bindings: bindings}
}

// Manager returns the blob manager the lifecycle uploads through.
func (l *Lifecycle[T]) Manager() *Manager { return l.media }

// check validates entity as it will look once files are uploaded, so a bad
// record never costs an upload.
func (l *Lifecycle[T]) check(entity *T, files Files) error {
	draft := *entity
	for _, b := range l.bindings {
		if f := files[b.Slot.Field]; f != nil {
			b.Set(&draft, &Attachment{URL: pendingURL, Size: f.Size, ContentType: f.ContentType})
		}
	}
	return validator.Struct(&draft)
}

// validate checks every supplied file before anything is written.
func (l *Lifecycle[T]) validate(files Files, create bool) error {
	for _, b := range l.bindings {
		f := files[b.Slot.Field]
		if f == nil {
			if create && b.Required {
				return l.media.Validate(b.Slot, nil)
			}
			continue
		}
		if err := l.media.Validate(b.Slot, f); err != nil {
			return err
		}
	}
	return nil
}

// upload stores every supplied file and sets it on entity. On failure the
// blobs uploaded so far are released.
func (l *Lifecycle[T]) upload(ctx context.Context, entity *T, files Files) ([]string, error) {
	var uploaded []string
	for _, b := range l.bindings {
		f := files[b.Slot.Field]
		if f == nil {
			continue
		}
		att, err := l.media.Upload(ctx, b.Slot, f)
		if err != nil {
			l.releaseAll(ctx, uploaded)
			return nil, err
		}
		b.Set(entity, att)
		uploaded = append(uploaded, att.URL)
	}
	return uploaded, nil
}

func (l *Lifecycle[T]) releaseAll(ctx context.Context, urls []string) {
	for _, url := range urls {
		l.media.Release(ctx, url)
	}
}

// Create uploads the supplied files, stores their URLs on entity and inserts
// the record. Slots without a file are left empty.
func (l *Lifecycle[T]) Create(ctx context.Context, entity *T, files Files) error {
	if err := l.validate(files, true); err != nil {
		return err
	}
	if err := l.check(entity, files); err != nil {
		return err
	}
	uploaded, err := l.upload(ctx, entity, files)
	if err != nil {
		return err
	}
	if err := l.store.Create(ctx, entity); err != nil {
		l.releaseAll(ctx, uploaded)
		return err
	}
	return nil
}

// Replace loads the record, applies mutate, swaps in any supplied files and
// saves. Old blobs are released only after the record points at the new ones.
// A URL that mutate writes into a slot which also receives a file is discarded.
func (l *Lifecycle[T]) Replace(ctx context.Context, id string, mutate func(*T) error, files Files) (*T, error) {
	current, err := l.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := l.validate(files, false); err != nil {
		return nil, err
	}

	var old []string
	for _, b := range l.bindings {
		if files[b.Slot.Field] != nil {
			old = append(old, b.Get(current))
		}
	}

	if mutate != nil {
		if err := mutate(current); err != nil {
			return nil, err
		}
	}
	if err := l.check(current, files); err != nil {
		return nil, err
	}

	uploaded, err := l.upload(ctx, current, files)
	if err != nil {
		return nil, err
	}
	if err := l.store.Save(ctx, current); err != nil {
		l.releaseAll(ctx, uploaded)
		return nil, err
	}

	for i, url := range old {
		if url != "" && url != uploaded[i] {
			l.media.Release(ctx, url)
		}
	}
	return current, nil
}

// Delete removes the record and then every blob it referenced.
func (l *Lifecycle[T]) Delete(ctx context.Context, id string) (*T, error) {
	deleted, err := l.store.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, b := range l.bindings {
		l.media.Release(ctx, b.Get(deleted))
	}
	return deleted, nil
}
