package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"churchcms/internal/pkg/logger"
)

type GCSConfig struct {
	Bucket          string
	CDNBaseURL      string
	EmulatorHost    string
	CredentialsJSON string
}

// GCSStore keeps blobs in a Google Cloud Storage bucket.
type GCSStore struct {
	log    *logger.Logger
	client *storage.Client
	bucket string
	urls   urlResolver
}

func NewGCSStore(ctx context.Context, log *logger.Logger, cfg GCSConfig) (*GCSStore, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("gcs bucket name is required")
	}

	var opts []option.ClientOption
	if host := strings.TrimRight(strings.TrimSpace(cfg.EmulatorHost), "/"); host != "" {
		_ = os.Setenv("STORAGE_EMULATOR_HOST", host)
		opts = append(opts, option.WithoutAuthentication())
	} else {
		if cfg.CredentialsJSON != "" {
			opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
		}
		opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}

	log.Info("gcs object store ready", "bucket", cfg.Bucket, "cdn", cfg.CDNBaseURL, "emulator", cfg.EmulatorHost != "")
	return &GCSStore{
		log:    log.With("service", "GCSStore"),
		client: client,
		bucket: cfg.Bucket,
		urls:   newURLResolver(cfg.Bucket, cfg.CDNBaseURL),
	}, nil
}

func (s *GCSStore) Upload(ctx context.Context, r io.Reader, originalName, folder string) (string, error) {
	key := NewKey(folder, originalName)

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = ContentTypeForKey(key)
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("%w: write %q: %v", ErrUploadFailed, key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%w: close %q: %v", ErrUploadFailed, key, err)
	}
	return s.urls.URL(key), nil
}

func (s *GCSStore) Delete(ctx context.Context, url string) error {
	key, err := s.urls.Key(url)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := s.client.Bucket(s.bucket).Object(key).Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %q in bucket %q: %v", ErrDeleteFailed, key, s.bucket, err)
	}
	return nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
