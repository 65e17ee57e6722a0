// Copyright (c) 2026 Toma Beauty. All rights reserved.

/*
Package media implements image ingestion for article creation.

A caller never links an external image URL directly onto an article. The URL
is downloaded, re-uploaded to the platform's object storage under a unique
key, and recorded as an image reference row — only then is the owning
article created, referencing the row. This keeps every displayed image under
the platform's control and makes a half-created article with a dangling
image reference impossible.
*/
package media

import "time"

// Image is a durable reference to an ingested image object.
type Image struct {
	ID        string    `json:"id"`
	PublicURL string    `json:"public_url"`
	SourceURL string    `json:"-"` // original caller-supplied URL, kept for auditing
	Bucket    string    `json:"-"`
	Key       string    `json:"-"`
	MimeType  string    `json:"mime_type"`
	SizeBytes int64     `json:"size_bytes"`
	Cached    bool      `json:"cached"`
	CreatedAt time.Time `json:"created_at"`
}

// # Field Identifiers

const (
	FieldImageURL = "image_url"
)
