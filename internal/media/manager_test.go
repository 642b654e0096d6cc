package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"churchcms/internal/pkg/logger"
	"churchcms/internal/storage"
)

type mockQueue struct {
	mock.Mock
}

func (m *mockQueue) Enqueue(ctx context.Context, url string, cause error) error {
	args := m.Called(ctx, url, cause)
	return args.Error(0)
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestValidate_SizeBoundaries(t *testing.T) {
	m := NewManager(storage.NewMemoryStore("test"), nil, logger.Nop())

	atLimit := NewFile("a.png", "image/png", storage.MaxImageSize, nil)
	assert.NoError(t, m.Validate(ArticleImage, atLimit))

	over := NewFile("a.png", "image/png", storage.MaxImageSize+1, nil)
	assert.ErrorIs(t, m.Validate(ArticleImage, over), ErrMediaTooLarge)

	audioAtLimit := NewFile("a.mp3", "audio/mpeg", storage.MaxAudioSize, nil)
	assert.NoError(t, m.Validate(AudioFile, audioAtLimit))

	audioOver := NewFile("a.mp3", "audio/mpeg", storage.MaxAudioSize+1, nil)
	assert.ErrorIs(t, m.Validate(AudioFile, audioOver), ErrMediaTooLarge)
}

func TestValidate_Types(t *testing.T) {
	m := NewManager(storage.NewMemoryStore("test"), nil, logger.Nop())

	assert.ErrorIs(t, m.Validate(ArticleImage, FromBytes("a.pdf", "application/pdf", []byte("x"))), ErrInvalidMediaType)
	assert.ErrorIs(t, m.Validate(AudioFile, FromBytes("a.png", "image/png", []byte("x"))), ErrInvalidMediaType)
	assert.ErrorIs(t, m.Validate(AudioFile, nil), ErrMissingFile)
	assert.NoError(t, m.Validate(AudioFile, FromBytes("a.webm", "audio/webm;codecs=opus", []byte("x"))))
}

func TestUpload_ReadsImageDimensions(t *testing.T) {
	store := storage.NewMemoryStore("test")
	m := NewManager(store, nil, logger.Nop())

	att, err := m.Upload(context.Background(), MemoryImage, FromBytes("pic.png", "image/png", pngBytes(t, 40, 30)))
	require.NoError(t, err)
	assert.Contains(t, att.URL, "/memories/")
	assert.True(t, strings.HasSuffix(att.URL, ".png"))
	assert.Equal(t, 40, att.Width)
	assert.Equal(t, 30, att.Height)
	assert.True(t, store.Has(att.URL))
}

func TestUpload_UndecodableImageKeepsZeroDimensions(t *testing.T) {
	m := NewManager(storage.NewMemoryStore("test"), nil, logger.Nop())

	att, err := m.Upload(context.Background(), ArticleImage, FromBytes("logo.svg", "image/svg+xml", []byte("<svg/>")))
	require.NoError(t, err)
	assert.Zero(t, att.Width)
	assert.Zero(t, att.Height)
}

func TestUpload_InvalidFileDoesNotTouchStore(t *testing.T) {
	store := storage.NewMemoryStore("test")
	m := NewManager(store, nil, logger.Nop())

	_, err := m.Upload(context.Background(), ArticleImage, FromBytes("a.exe", "application/octet-stream", []byte("x")))
	assert.ErrorIs(t, err, ErrInvalidMediaType)
	assert.Equal(t, 0, store.Len())
}

func TestRelease_QueuesFailedDelete(t *testing.T) {
	store := storage.NewMemoryStore("test")
	q := new(mockQueue)
	m := NewManager(store, q, logger.Nop())
	ctx := context.Background()

	url, err := store.Upload(ctx, strings.NewReader("x"), "a.png", "articles")
	require.NoError(t, err)

	store.SetDeleteErr(errors.New("unavailable"))
	q.On("Enqueue", mock.Anything, url, mock.MatchedBy(func(err error) bool {
		return errors.Is(err, storage.ErrDeleteFailed)
	})).Return(nil).Once()

	m.Release(ctx, url)
	q.AssertExpectations(t)
}

func TestRelease_SkipsEmptyAndUnknownURLs(t *testing.T) {
	q := new(mockQueue)
	m := NewManager(storage.NewMemoryStore("test"), q, logger.Nop())

	m.Release(context.Background(), "")
	m.Release(context.Background(), "https://example.com/elsewhere.png")
	q.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything, mock.Anything)
}
