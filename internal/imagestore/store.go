package imagestore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"cloud.google.com/go/storage"
)

// ObjectStore is the durable public store question images are uploaded to.
// Upload returns a dereferenceable URL for the stored object.
type ObjectStore interface {
	Upload(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// GCSStore implements ObjectStore on a Google Cloud Storage bucket with
// public-read objects. The bucket is created if absent, once per process.
type GCSStore struct {
	client    *storage.Client
	bucket    string
	projectID string
	log       *slog.Logger

	ensureOnce sync.Once
	ensureErr  error
}

func NewGCSStore(ctx context.Context, bucket, projectID string, logger *slog.Logger) (*GCSStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}
	return &GCSStore{
		client:    client,
		bucket:    bucket,
		projectID: projectID,
		log:       logger,
	}, nil
}

// ensureBucket lazily guarantees the bucket exists before first use.
func (s *GCSStore) ensureBucket(ctx context.Context) error {
	s.ensureOnce.Do(func() {
		handle := s.client.Bucket(s.bucket)
		_, err := handle.Attrs(ctx)
		if err == nil {
			return
		}
		if !errors.Is(err, storage.ErrBucketNotExist) {
			s.ensureErr = fmt.Errorf("checking bucket %s: %w", s.bucket, err)
			return
		}
		s.log.Info("imagestore.bucket_create", "bucket", s.bucket)
		if err := handle.Create(ctx, s.projectID, &storage.BucketAttrs{
			PredefinedACL:              "publicRead",
			PredefinedDefaultObjectACL: "publicRead",
		}); err != nil {
			s.ensureErr = fmt.Errorf("creating bucket %s: %w", s.bucket, err)
		}
	})
	return s.ensureErr
}

func (s *GCSStore) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return "", err
	}

	start := time.Now()
	w := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("writing object %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalizing object %s: %w", name, err)
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, name)
	s.log.Info("imagestore.upload_ok",
		"object", name,
		"bytes", len(data),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return url, nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
