package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKey(t *testing.T) {
	key := NewKey("audio", "Sunday Sermon.MP3")
	assert.True(t, strings.HasPrefix(key, "audio/"))
	assert.True(t, strings.HasSuffix(key, ".MP3"))
	assert.Len(t, strings.TrimSuffix(strings.TrimPrefix(key, "audio/"), ".MP3"), 36)

	assert.NotEqual(t, NewKey("audio", "a.mp3"), NewKey("audio", "a.mp3"))
	assert.False(t, strings.Contains(NewKey("memories", "noext"), "."))
}

func TestContentTypeForKey(t *testing.T) {
	assert.Equal(t, "image/jpeg", ContentTypeForKey("articles/x.JPG"))
	assert.Equal(t, "audio/mpeg", ContentTypeForKey("audio/x.mp3"))
	assert.Equal(t, "audio/wav", ContentTypeForKey("audio/x.wave"))
	assert.Equal(t, "application/octet-stream", ContentTypeForKey("audio/x.xyz"))
	assert.Equal(t, "application/octet-stream", ContentTypeForKey("audio/x"))
}

func TestURLResolver_DirectBucket(t *testing.T) {
	r := newURLResolver("church-media", "")
	url := r.URL("articles/abc.png")
	assert.Equal(t, "https://storage.googleapis.com/church-media/articles/abc.png", url)

	key, err := r.Key(url)
	require.NoError(t, err)
	assert.Equal(t, "articles/abc.png", key)
}

func TestURLResolver_KeyExtractionOrder(t *testing.T) {
	r := newURLResolver("church-media", "https://cdn.example.org/")

	cases := map[string]string{
		"https://cdn.example.org/memories/a.jpg":                         "memories/a.jpg",
		"https://storage.googleapis.com/church-media/audio/b.mp3":        "audio/b.mp3",
		"https://church-media.storage.googleapis.com/coordinators/c.png": "coordinators/c.png",
		"gs://church-media/articles/d.webp":                              "articles/d.webp",
		"https://cdn.example.org/audio/e.mp3?v=2":                        "audio/e.mp3",
	}
	for url, want := range cases {
		got, err := r.Key(url)
		require.NoError(t, err, url)
		assert.Equal(t, want, got, url)
	}

	assert.Equal(t, "https://cdn.example.org/audio/x.mp3", r.URL("audio/x.mp3"))
}

func TestURLResolver_InvalidReference(t *testing.T) {
	r := newURLResolver("church-media", "https://cdn.example.org")
	for _, url := range []string{
		"",
		"https://example.com/a.png",
		"gs://other-bucket/a.png",
		"https://storage.googleapis.com/church-media/",
		"https://cdn.example.org",
	} {
		_, err := r.Key(url)
		assert.ErrorIs(t, err, ErrInvalidReference, url)
	}
}

func TestValidators_Types(t *testing.T) {
	assert.True(t, IsValidImageType("image/png"))
	assert.True(t, IsValidImageType("IMAGE/JPG"))
	assert.False(t, IsValidImageType("image/bmp"))
	assert.False(t, IsValidImageType("audio/mpeg"))

	for _, mt := range []string{"audio/mpeg", "audio/x-m4a", "audio/mp4a-latm", "audio/webm;codecs=opus", "Audio/FLAC"} {
		assert.True(t, IsValidAudioType(mt), mt)
	}
	assert.False(t, IsValidAudioType("video/mp4"))
	assert.False(t, IsValidAudioType(""))
}

func TestValidators_SizeBoundaries(t *testing.T) {
	assert.True(t, IsValidImageSize(5*1024*1024))
	assert.False(t, IsValidImageSize(5*1024*1024+1))
	assert.True(t, IsValidAudioSize(100*1024*1024))
	assert.False(t, IsValidAudioSize(100*1024*1024+1))
}

func TestMemoryStore_UploadDelete(t *testing.T) {
	s := NewMemoryStore("test")
	ctx := context.Background()

	url, err := s.Upload(ctx, strings.NewReader("data"), "clip.mp3", "audio")
	require.NoError(t, err)
	assert.Contains(t, url, "/audio/")
	assert.True(t, s.Has(url))

	require.NoError(t, s.Delete(ctx, url))
	assert.False(t, s.Has(url))
	assert.Equal(t, []string{url}, s.Deleted())

	assert.ErrorIs(t, s.Delete(ctx, "https://elsewhere.test/x.png"), ErrInvalidReference)
}

func TestMemoryStore_Failures(t *testing.T) {
	s := NewMemoryStore("test")
	ctx := context.Background()

	s.UploadErr = errors.New("boom")
	_, err := s.Upload(ctx, strings.NewReader("data"), "a.png", "articles")
	assert.ErrorIs(t, err, ErrUploadFailed)
	s.UploadErr = nil

	url, err := s.Upload(ctx, strings.NewReader("data"), "a.png", "articles")
	require.NoError(t, err)
	s.SetDeleteErr(errors.New("unavailable"))
	err = s.Delete(ctx, url)
	assert.ErrorIs(t, err, ErrDeleteFailed)
	assert.False(t, errors.Is(err, ErrUploadFailed))
	assert.True(t, s.Has(url))
}

func TestLocalStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir, "/static/uploads", "http://localhost:5000")
	require.NoError(t, err)
	ctx := context.Background()

	url, err := s.Upload(ctx, strings.NewReader("png-bytes"), "pic.png", "memories")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "http://localhost:5000/static/uploads/memories/"))

	key := strings.TrimPrefix(url, "http://localhost:5000/static/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, key))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, s.Delete(ctx, url))
	_, err = os.Stat(filepath.Join(dir, key))
	assert.True(t, os.IsNotExist(err))

	// already gone
	require.NoError(t, s.Delete(ctx, url))
	assert.ErrorIs(t, s.Delete(ctx, "http://localhost:5000/static/uploads/../secret"), ErrInvalidReference)
	assert.ErrorIs(t, s.Delete(ctx, "https://other/x.png"), ErrInvalidReference)
}
