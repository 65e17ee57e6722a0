// Copyright (c) 2026 Toma Beauty. All rights reserved.

package media_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomabeauty/toma/internal/media"
	"github.com/tomabeauty/toma/internal/platform/apperr"
)

// fakeStore is an in-memory ObjectStore capturing uploads.
type fakeStore struct {
	objects map[string][]byte
	mimes   map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}, mimes: map[string]string{}}
}

func (store *fakeStore) Put(_ context.Context, key, contentType string, body io.Reader, _ int64) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	store.objects[key] = data
	store.mimes[key] = contentType
	return nil
}

func (store *fakeStore) PublicURL(key string) string { return "https://cdn.test/" + key }
func (store *fakeStore) Bucket() string              { return "toma-images" }

// pngHeader is a minimal valid PNG signature for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestIngest_Success checks the full happy path: fetch, upload, reference row fields.
*/
func TestIngest_Success(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "image/png")
		_, _ = writer.Write(pngHeader)
	}))
	defer origin.Close()

	store := newFakeStore()
	ingestor := media.NewIngestor(store, discardLogger())

	image, err := ingestor.Ingest(context.Background(), origin.URL+"/rose-water.png")
	require.NoError(t, err)

	assert.NotEmpty(t, image.ID)
	assert.Equal(t, "image/png", image.MimeType)
	assert.Equal(t, "toma-images", image.Bucket)
	assert.Equal(t, int64(len(pngHeader)), image.SizeBytes)
	assert.True(t, image.Cached)
	assert.True(t, strings.HasPrefix(image.Key, "articles/"))
	assert.True(t, strings.HasSuffix(image.Key, ".png"))
	assert.Contains(t, image.Key, "rose-water")
	assert.Equal(t, "https://cdn.test/"+image.Key, image.PublicURL)

	// Bytes actually landed in the store under the generated key.
	assert.Equal(t, pngHeader, store.objects[image.Key])
}

/*
TestIngest_OriginFailure verifies that every unreachable-origin shape maps to
IMAGE_FETCH_FAILED and nothing is uploaded.
*/
func TestIngest_OriginFailure(t *testing.T) {
	notFound := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	}))
	defer notFound.Close()

	tests := []struct {
		name string
		url  string
	}{
		{"non_2xx_status", notFound.URL + "/missing.jpg"},
		{"unreachable_host", "http://127.0.0.1:1/image.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			ingestor := media.NewIngestor(store, discardLogger())

			_, err := ingestor.Ingest(context.Background(), tt.url)
			require.Error(t, err)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "IMAGE_FETCH_FAILED", appErr.Code)
			assert.Empty(t, store.objects, "nothing may be uploaded on a failed fetch")
		})
	}
}

/*
TestIngest_NonImageContent rejects origins that return something other than
an image.
*/
func TestIngest_NonImageContent(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "text/html")
		_, _ = writer.Write([]byte("<html><body>not an image</body></html>"))
	}))
	defer origin.Close()

	ingestor := media.NewIngestor(newFakeStore(), discardLogger())

	_, err := ingestor.Ingest(context.Background(), origin.URL)
	require.Error(t, err)
	assert.Equal(t, "IMAGE_FETCH_FAILED", apperr.As(err).Code)
}

/*
TestIngest_SniffsMissingContentType falls back to content sniffing when the
origin omits or lies about the Content-Type.
*/
func TestIngest_SniffsMissingContentType(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/octet-stream")
		_, _ = writer.Write(pngHeader)
	}))
	defer origin.Close()

	ingestor := media.NewIngestor(newFakeStore(), discardLogger())

	image, err := ingestor.Ingest(context.Background(), origin.URL)
	require.NoError(t, err)
	assert.Equal(t, "image/png", image.MimeType)
}
