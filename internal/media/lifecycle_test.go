package media

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"churchcms/internal/database"
	"churchcms/internal/domain"
	"churchcms/internal/pkg/logger"
	"churchcms/internal/pkg/validator"
	"churchcms/internal/repository"
	"churchcms/internal/storage"
)

type photo struct {
	domain.Model
	Title    string `json:"title" validate:"required"`
	ImageURL string `json:"imageUrl"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	ThumbURL string `json:"thumbUrl"`
}

type required struct {
	domain.Model
	ImageURL string `json:"imageUrl" validate:"required"`
}

type lifecycleFixture struct {
	store *storage.MemoryStore
	queue *mockQueue
	repo  *repository.Repository[photo]
	lc    *Lifecycle[photo]
}

func setupLifecycle(t *testing.T, imageRequired bool) *lifecycleFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:media_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &photo{}))

	store := storage.NewMemoryStore("test")
	q := new(mockQueue)
	repo := repository.New[photo](db)
	lc := NewLifecycle[photo](repo, NewManager(store, q, logger.Nop()),
		Binding[photo]{
			Slot:     MemoryImage,
			Required: imageRequired,
			Get:      func(p *photo) string { return p.ImageURL },
			Set: func(p *photo, a *Attachment) {
				p.ImageURL, p.Width, p.Height = a.URL, a.Width, a.Height
			},
		},
		Binding[photo]{
			Slot: AudioThumbnail,
			Get:  func(p *photo) string { return p.ThumbURL },
			Set:  func(p *photo, a *Attachment) { p.ThumbURL = a.URL },
		},
	)
	return &lifecycleFixture{store: store, queue: q, repo: repo, lc: lc}
}

func TestCreate_URLSetOnlyWhenFileSupplied(t *testing.T) {
	f := setupLifecycle(t, false)
	ctx := context.Background()

	without := &photo{Title: "plain"}
	require.NoError(t, f.lc.Create(ctx, without, nil))
	assert.Empty(t, without.ImageURL)

	with := &photo{Title: "picture"}
	require.NoError(t, f.lc.Create(ctx, with, Files{"image": FromBytes("p.png", "image/png", pngBytes(t, 8, 6))}))
	assert.NotEmpty(t, with.ImageURL)
	assert.Equal(t, 8, with.Width)
	assert.True(t, f.store.Has(with.ImageURL))

	stored, err := f.repo.FindByID(ctx, with.ID)
	require.NoError(t, err)
	assert.Equal(t, with.ImageURL, stored.ImageURL)
}

func TestCreate_RequiredFileMissing(t *testing.T) {
	f := setupLifecycle(t, true)

	err := f.lc.Create(context.Background(), &photo{Title: "x"}, nil)
	assert.ErrorIs(t, err, ErrMissingFile)

	total, err := f.repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCreate_InvalidSecondFileUploadsNothing(t *testing.T) {
	f := setupLifecycle(t, false)

	err := f.lc.Create(context.Background(), &photo{Title: "x"}, Files{
		"image":     FromBytes("p.png", "image/png", pngBytes(t, 2, 2)),
		"thumbnail": FromBytes("t.txt", "text/plain", []byte("x")),
	})
	assert.ErrorIs(t, err, ErrInvalidMediaType)
	assert.Equal(t, 0, f.store.Len())
}

func TestCreate_InvalidRecordUploadsNothing(t *testing.T) {
	f := setupLifecycle(t, false)

	err := f.lc.Create(context.Background(), &photo{}, Files{"image": FromBytes("p.png", "image/png", pngBytes(t, 2, 2))})
	var verr *validator.Error
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "title")
	assert.Equal(t, 0, f.store.Len())
	assert.Empty(t, f.store.Deleted())
}

func TestCreate_RequiredURLFilledByUpload(t *testing.T) {
	f := setupLifecycle(t, false)
	lc := NewLifecycle[required](repository.New[required](f.repo.DB(context.Background())), f.lc.Manager(),
		Binding[required]{
			Slot:     MemoryImage,
			Required: true,
			Get:      func(r *required) string { return r.ImageURL },
			Set:      func(r *required, a *Attachment) { r.ImageURL = a.URL },
		},
	)
	require.NoError(t, database.Migrate(f.repo.DB(context.Background()), &required{}))

	r := &required{}
	require.NoError(t, lc.Create(context.Background(), r, Files{"image": FromBytes("p.png", "image/png", pngBytes(t, 2, 2))}))
	assert.True(t, f.store.Has(r.ImageURL))
}

func TestCreate_StoreFailureReleasesUploadedBlob(t *testing.T) {
	f := setupLifecycle(t, false)
	ctx := context.Background()

	first := &photo{Title: "x"}
	require.NoError(t, f.lc.Create(ctx, first, nil))

	dup := &photo{Title: "y"}
	dup.ID = first.ID
	err := f.lc.Create(ctx, dup, Files{"image": FromBytes("p.png", "image/png", pngBytes(t, 2, 2))})
	require.Error(t, err)
	assert.Equal(t, 0, f.store.Len())
	assert.Len(t, f.store.Deleted(), 1)
}

func TestReplace_SwapsURLAndReleasesOld(t *testing.T) {
	f := setupLifecycle(t, false)
	ctx := context.Background()

	p := &photo{Title: "before"}
	require.NoError(t, f.lc.Create(ctx, p, Files{"image": FromBytes("a.png", "image/png", pngBytes(t, 2, 2))}))
	oldURL := p.ImageURL

	updated, err := f.lc.Replace(ctx, p.ID, func(p *photo) error {
		p.Title = "after"
		return nil
	}, Files{"image": FromBytes("b.png", "image/png", pngBytes(t, 4, 4))})
	require.NoError(t, err)

	assert.Equal(t, "after", updated.Title)
	assert.NotEqual(t, oldURL, updated.ImageURL)
	assert.Equal(t, 4, updated.Width)
	assert.Contains(t, f.store.Deleted(), oldURL)
	assert.False(t, f.store.Has(oldURL))
	assert.True(t, f.store.Has(updated.ImageURL))
}

func TestReplace_ReleasesStoredURLNotMutatedOne(t *testing.T) {
	f := setupLifecycle(t, false)
	ctx := context.Background()

	target := &photo{Title: "target"}
	require.NoError(t, f.lc.Create(ctx, target, Files{"image": FromBytes("a.png", "image/png", pngBytes(t, 2, 2))}))
	other := &photo{Title: "other"}
	require.NoError(t, f.lc.Create(ctx, other, Files{"image": FromBytes("o.png", "image/png", pngBytes(t, 2, 2))}))

	updated, err := f.lc.Replace(ctx, target.ID, func(p *photo) error {
		p.ImageURL = other.ImageURL
		return nil
	}, Files{"image": FromBytes("b.png", "image/png", pngBytes(t, 3, 3))})
	require.NoError(t, err)

	assert.NotEqual(t, other.ImageURL, updated.ImageURL)
	assert.True(t, f.store.Has(updated.ImageURL))
	assert.True(t, f.store.Has(other.ImageURL))
	assert.False(t, f.store.Has(target.ImageURL))
	assert.Equal(t, []string{target.ImageURL}, f.store.Deleted())
}

func TestReplace_WithoutFileKeepsMedia(t *testing.T) {
	f := setupLifecycle(t, false)
	ctx := context.Background()

	p := &photo{Title: "before"}
	require.NoError(t, f.lc.Create(ctx, p, Files{"image": FromBytes("a.png", "image/png", pngBytes(t, 2, 2))}))

	updated, err := f.lc.Replace(ctx, p.ID, func(p *photo) error {
		p.Title = "renamed"
		return nil
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, p.ImageURL, updated.ImageURL)
	assert.Empty(t, f.store.Deleted())
}

func TestReplace_DeleteFailureIsNotSurfaced(t *testing.T) {
	f := setupLifecycle(t, false)
	ctx := context.Background()

	p := &photo{Title: "before"}
	require.NoError(t, f.lc.Create(ctx, p, Files{"image": FromBytes("a.png", "image/png", pngBytes(t, 2, 2))}))
	oldURL := p.ImageURL

	f.store.SetDeleteErr(errors.New("unavailable"))
	f.queue.On("Enqueue", mock.Anything, oldURL, mock.Anything).Return(nil).Once()

	updated, err := f.lc.Replace(ctx, p.ID, nil, Files{"image": FromBytes("b.png", "image/png", pngBytes(t, 2, 2))})
	require.NoError(t, err)
	assert.NotEqual(t, oldURL, updated.ImageURL)
	f.queue.AssertExpectations(t)
}

func TestReplace_MissingRecord(t *testing.T) {
	f := setupLifecycle(t, false)

	_, err := f.lc.Replace(context.Background(), "nope", nil, Files{"image": FromBytes("b.png", "image/png", pngBytes(t, 2, 2))})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, 0, f.store.Len())
}

func TestReplace_InvalidRecordUploadsNothing(t *testing.T) {
	f := setupLifecycle(t, false)
	ctx := context.Background()

	p := &photo{Title: "before"}
	require.NoError(t, f.lc.Create(ctx, p, Files{"image": FromBytes("a.png", "image/png", pngBytes(t, 2, 2))}))

	_, err := f.lc.Replace(ctx, p.ID, func(p *photo) error {
		p.Title = ""
		return nil
	}, Files{"image": FromBytes("b.png", "image/png", pngBytes(t, 2, 2))})
	var verr *validator.Error
	require.True(t, errors.As(err, &verr))

	assert.Equal(t, 1, f.store.Len())
	assert.True(t, f.store.Has(p.ImageURL))
	assert.Empty(t, f.store.Deleted())
}

func TestDelete_ReleasesMediaAndSecondDeleteIsNotFound(t *testing.T) {
	f := setupLifecycle(t, false)
	ctx := context.Background()

	p := &photo{Title: "x"}
	require.NoError(t, f.lc.Create(ctx, p, Files{
		"image":     FromBytes("a.png", "image/png", pngBytes(t, 2, 2)),
		"thumbnail": FromBytes("t.png", "image/png", pngBytes(t, 1, 1)),
	}))

	deleted, err := f.lc.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, deleted.ID)
	assert.Equal(t, 0, f.store.Len())
	assert.ElementsMatch(t, []string{p.ImageURL, p.ThumbURL}, f.store.Deleted())

	_, err = f.lc.Delete(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
