// Copyright (c) 2026 Toma Beauty. All rights reserved.

package media

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/tomabeauty/toma/internal/platform/apperr"
	"github.com/tomabeauty/toma/internal/platform/constants"
	"github.com/tomabeauty/toma/internal/platform/storage"
	"github.com/tomabeauty/toma/pkg/slug"
	"github.com/tomabeauty/toma/pkg/uuid"
)

// maxImageBytes caps ingested image downloads. Anything larger is refused
// as an ingestion failure rather than buffered into memory.
const maxImageBytes = 10 << 20 // 10 MiB

// keyPrefix namespaces article images inside the shared bucket.
const keyPrefix = "articles"

// Ingestor downloads a caller-supplied image URL and uploads it to object
// storage, producing an [Image] reference ready for persistence.
type Ingestor struct {
	httpClient *http.Client
	store      storage.ObjectStore
	logger     *slog.Logger
}

// NewIngestor constructs an [Ingestor].
//
// The HTTP client gets its own bounded timeout so a slow origin server
// cannot hold the surrounding create request until the global deadline.
func NewIngestor(store storage.ObjectStore, logger *slog.Logger) *Ingestor {
	return &Ingestor{
		httpClient: &http.Client{Timeout: constants.ImageFetchTimeout},
		store:      store,
		logger:     logger,
	}
}

/*
Ingest turns a plain image URL into a durable image reference.

Description: Fetches the bytes, validates that they are an image, uploads
them under a generated unique key, and returns the populated [Image] row.
The row is NOT persisted here — the owning entity's repository inserts it in
the same transaction as the entity, so either both exist or neither does.

Parameters:
  - context: context.Context
  - sourceURL: string (the URL typed into the admin form)

Returns:
  - *Image: Populated reference, ready for transactional insertion
  - error: apperr.ImageFetchFailed when the fetch or upload cannot complete
*/
func (ingestor *Ingestor) Ingest(context context.Context, sourceURL string) (*Image, error) {

	// ── 1. Fetch ──────────────────────────────────────────────────────────
	data, mimeType, err := ingestor.fetch(context, sourceURL)
	if err != nil {
		return nil, err
	}

	// ── 2. Upload under a unique key ──────────────────────────────────────
	key := generateKey(sourceURL, mimeType)
	if err := ingestor.store.Put(context, key, mimeType, bytes.NewReader(data), int64(len(data))); err != nil {
		return nil, apperr.ImageFetchFailed(sourceURL, fmt.Errorf("media: upload failed: %w", err))
	}

	// ── 3. Resolve the public URL ─────────────────────────────────────────
	publicURL := ingestor.store.PublicURL(key)

	ingestor.logger.Info("image_ingested",
		slog.String("key", key),
		slog.String("mime_type", mimeType),
		slog.Int("size_bytes", len(data)),
	)

	return &Image{
		ID:        uuid.New(),
		PublicURL: publicURL,
		SourceURL: sourceURL,
		Bucket:    ingestor.store.Bucket(),
		Key:       key,
		MimeType:  mimeType,
		SizeBytes: int64(len(data)),
		Cached:    true,
	}, nil
}

// fetch downloads the source URL and returns its bytes and MIME type.
// Every failure mode maps to IMAGE_FETCH_FAILED so the caller can abort the
// whole create operation.
func (ingestor *Ingestor) fetch(context context.Context, sourceURL string) ([]byte, string, error) {
	request, err := http.NewRequestWithContext(context, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, "", apperr.ImageFetchFailed(sourceURL, err)
	}

	response, err := ingestor.httpClient.Do(request)
	if err != nil {
		return nil, "", apperr.ImageFetchFailed(sourceURL, err)
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, "", apperr.ImageFetchFailed(sourceURL, fmt.Errorf("media: origin returned status %d", response.StatusCode))
	}

	// Read one byte past the cap to distinguish "exactly at cap" from "too big".
	data, err := io.ReadAll(io.LimitReader(response.Body, maxImageBytes+1))
	if err != nil {
		return nil, "", apperr.ImageFetchFailed(sourceURL, err)
	}
	if len(data) > maxImageBytes {
		return nil, "", apperr.ImageFetchFailed(sourceURL, fmt.Errorf("media: image exceeds %d bytes", maxImageBytes))
	}
	if len(data) == 0 {
		return nil, "", apperr.ImageFetchFailed(sourceURL, fmt.Errorf("media: empty response body"))
	}

	mimeType := detectMimeType(response.Header.Get("Content-Type"), data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, "", apperr.ImageFetchFailed(sourceURL, fmt.Errorf("media: content type %q is not an image", mimeType))
	}

	return data, mimeType, nil
}

// detectMimeType prefers the origin's Content-Type header when it declares
// an image, falling back to content sniffing.
func detectMimeType(headerValue string, data []byte) string {
	if headerValue != "" {
		if parsed, _, err := mime.ParseMediaType(headerValue); err == nil && strings.HasPrefix(parsed, "image/") {
			return parsed
		}
	}
	return http.DetectContentType(data)
}

// generateKey builds a storage key with negligible collision probability:
// a nanosecond timestamp plus a random suffix, with a slugified hint from
// the source filename for operator readability.
func generateKey(sourceURL, mimeType string) string {
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)

	hint := filenameHint(sourceURL)
	ext := extensionFor(mimeType)

	if hint != "" {
		return fmt.Sprintf("%s/%d-%s-%s%s", keyPrefix, time.Now().UnixNano(), hex.EncodeToString(suffix), hint, ext)
	}
	return fmt.Sprintf("%s/%d-%s%s", keyPrefix, time.Now().UnixNano(), hex.EncodeToString(suffix), ext)
}

// filenameHint extracts a short slug from the source URL's base name.
func filenameHint(sourceURL string) string {
	parsed, err := url.Parse(sourceURL)
	if err != nil {
		return ""
	}

	base := path.Base(parsed.Path)
	if base == "." || base == "/" {
		return ""
	}

	// Strip any extension before slugifying; the real one comes from the MIME type.
	base = strings.TrimSuffix(base, path.Ext(base))

	hint := slug.From(base)
	if len(hint) > 40 {
		hint = hint[:40]
	}
	return hint
}

// extensionFor maps common image MIME types to a file extension.
func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	default:
		return ""
	}
}
