package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultLocalDir   = "./uploads"
	DefaultStaticPath = "/static/uploads"
)

// LocalStore writes blobs under a directory that the router serves statically.
// Used in development when no bucket is configured.
type LocalStore struct {
	baseDir    string
	staticPath string
	publicBase string
}

func NewLocalStore(baseDir, staticPath, publicBase string) (*LocalStore, error) {
	if baseDir == "" {
		baseDir = DefaultLocalDir
	}
	if staticPath == "" {
		staticPath = DefaultStaticPath
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalStore{
		baseDir:    baseDir,
		staticPath: "/" + strings.Trim(staticPath, "/"),
		publicBase: strings.TrimRight(publicBase, "/"),
	}, nil
}

func (s *LocalStore) Dir() string        { return s.baseDir }
func (s *LocalStore) StaticPath() string { return s.staticPath }

func (s *LocalStore) Upload(ctx context.Context, r io.Reader, originalName, folder string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	key := NewKey(folder, originalName)
	absPath := filepath.Join(s.baseDir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if _, err := io.Copy(dst, r); err != nil {
		_ = dst.Close()
		_ = os.Remove(absPath)
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return s.publicBase + s.staticPath + "/" + key, nil
}

func (s *LocalStore) Delete(ctx context.Context, url string) error {
	key, err := s.key(url)
	if err != nil {
		return err
	}
	absPath := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.Remove(absPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	return nil
}

func (s *LocalStore) key(url string) (string, error) {
	prefix := s.publicBase + s.staticPath + "/"
	if !strings.HasPrefix(url, prefix) {
		// accept relative URLs when a public base is configured
		prefix = s.staticPath + "/"
		if !strings.HasPrefix(url, prefix) {
			return "", ErrInvalidReference
		}
	}
	key := strings.TrimPrefix(url, prefix)
	clean := filepath.ToSlash(filepath.Clean(key))
	if key == "" || clean != key || strings.HasPrefix(clean, "../") {
		return "", ErrInvalidReference
	}
	return key, nil
}
