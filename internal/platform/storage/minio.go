// Copyright (c) 2026 Toma Beauty. All rights reserved.

package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/tomabeauty/toma/internal/platform/config"
)

// MinioStore implements [ObjectStore] against any S3-compatible endpoint.
type MinioStore struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewMinioStore constructs and validates the S3 client from configuration.
//
// # Bucket Lifecycle
//
// The bucket is created on startup if it does not exist, so a fresh
// development environment needs no manual provisioning step.
func NewMinioStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*MinioStore, error) {
	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
		Region: cfg.StorageRegion,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to create client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.StorageBucket)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to check bucket %q: %w", cfg.StorageBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.StorageBucket, minio.MakeBucketOptions{Region: cfg.StorageRegion}); err != nil {
			return nil, fmt.Errorf("storage: failed to create bucket %q: %w", cfg.StorageBucket, err)
		}
	}

	publicBase := cfg.StoragePublicBaseURL
	if publicBase == "" {
		scheme := "https"
		if !cfg.StorageUseSSL {
			scheme = "http"
		}
		publicBase = fmt.Sprintf("%s://%s/%s", scheme, cfg.StorageEndpoint, cfg.StorageBucket)
	}

	logger.Info("object storage connected",
		slog.String("endpoint", cfg.StorageEndpoint),
		slog.String("bucket", cfg.StorageBucket),
	)

	return &MinioStore{
		client:        client,
		bucket:        cfg.StorageBucket,
		publicBaseURL: strings.TrimRight(publicBase, "/"),
	}, nil
}

// Put uploads an object under the given key.
func (store *MinioStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	_, err := store.client.PutObject(ctx, store.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("storage: failed to upload %q: %w", key, err)
	}
	return nil
}

// PublicURL resolves the public URL for an uploaded key.
func (store *MinioStore) PublicURL(key string) string {
	return store.publicBaseURL + "/" + key
}

// Bucket returns the configured bucket name.
func (store *MinioStore) Bucket() string {
	return store.bucket
}
