// Copyright (c) 2026 Toma Beauty. All rights reserved.

/*
Package storage provides the object storage client for ingested images.

It abstracts an S3-compatible bucket (MinIO, R2, S3) behind a narrow
interface: upload-by-key and public URL resolution. The interface keeps the
media ingestion flow testable without a live bucket.
*/
package storage

import (
	"context"
	"io"
)

// ObjectStore is the contract consumed by the media ingestion flow.
type ObjectStore interface {

	// Put uploads size bytes from body under the given key with the given
	// MIME type. Keys are expected to be unique; the generator in the media
	// package combines a timestamp with a random suffix.
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error

	// PublicURL returns the publicly reachable URL for an uploaded key.
	PublicURL(key string) string

	// Bucket returns the bucket name objects are stored in, recorded on
	// every image reference row.
	Bucket() string
}
