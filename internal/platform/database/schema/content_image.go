// Copyright (c) 2026 Toma Beauty. All rights reserved.

package schema

// ContentImageTable represents the 'content.image' table, the durable
// reference for every ingested article image.
type ContentImageTable struct {
	Table     string
	ID        string
	PublicURL string
	SourceURL string
	Bucket    string
	Key       string
	MimeType  string
	SizeBytes string
	Cached    string
	CreatedAt string
}

// ContentImage is the schema definition for content.image.
var ContentImage = ContentImageTable{
	Table:     "content.image",
	ID:        "id",
	PublicURL: "public_url",
	SourceURL: "source_url",
	Bucket:    "bucket",
	Key:       "storage_key",
	MimeType:  "mime_type",
	SizeBytes: "size_bytes",
	Cached:    "cached",
	CreatedAt: "created_at",
}

func (t ContentImageTable) Columns() []string {
	return []string{
		t.ID, t.PublicURL, t.SourceURL, t.Bucket, t.Key,
		t.MimeType, t.SizeBytes, t.Cached, t.CreatedAt,
	}
}
