package port

import (
	"context"
	"io"
)

// Storage defines file storage operations against the external media host.
type Storage interface {
	InitBucket(bucket string) error
	SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error
	RemoveFile(ctx context.Context, bucket, fileKey string) error
	// PublicURL returns the durable, publicly reachable URL of a stored object.
	PublicURL(bucket, fileKey string) string
}
