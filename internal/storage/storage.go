package storage

import (
	"context"
	"time"
)

// Package storage contains object storage abstractions for S3-compatible
// backends. The API only ever reads object metadata (the resume object);
// content is delivered to clients through presigned URLs, never streamed
// through this process.

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
}

// Storage is a reusable, S3-compatible object storage client interface.
type Storage interface {
	// Stat returns metadata for the object under the given key.
	Stat(ctx context.Context, key string) (ObjectInfo, error)
	// PresignGet returns a time-limited URL that can be used to download the object without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
