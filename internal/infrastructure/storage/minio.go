package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig captures the settings for the object-storage upload backend.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Minio stores uploads in an S3-compatible bucket and returns the public
// object URL. Those URLs are external references as far as the project
// pipeline is concerned and pass through serialization unchanged.
type Minio struct {
	client *minio.Client
	bucket string
}

// NewMinio connects to the object store and makes sure the bucket exists.
func NewMinio(ctx context.Context, cfg MinioConfig) (*Minio, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio connect: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio make bucket: %w", err)
		}
	}

	return &Minio{client: client, bucket: cfg.Bucket}, nil
}

func (m *Minio) Name() string { return "minio" }

// Save puts the object under a uuid-based name and returns its URL.
func (m *Minio) Save(ctx context.Context, filename string, r io.Reader, size int64) (string, error) {
	ext := filepath.Ext(filepath.Base(filename))
	name := uuid.NewString() + ext

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := m.client.PutObject(ctx, m.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("minio put: %w", err)
	}

	return m.client.EndpointURL().String() + "/" + m.bucket + "/" + name, nil
}
