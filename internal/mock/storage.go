package mock

import (
	"context"
	"io"
)

// Storage implements the storage interface for tests.
type Storage struct {
	// captured inputs
	Bucket    string
	ObjectKey string
	SavedSize int64
	SavedOpts map[string]string

	// errors
	InitBucketErr error
	SaveErr       error
	RemoveErr     error

	// call flags
	InitBucketCalled bool
	SaveCalled       bool
	RemoveCalled     bool
}

func (m *Storage) InitBucket(bucket string) error {
	m.InitBucketCalled = true
	m.Bucket = bucket
	return m.InitBucketErr
}

func (m *Storage) SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	m.SaveCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	m.SavedSize = fileSize
	m.SavedOpts = opts
	if m.SaveErr != nil {
		return m.SaveErr
	}
	// drain so upstream readers behave like a real upload
	_, _ = io.Copy(io.Discard, reader)
	return nil
}

func (m *Storage) RemoveFile(ctx context.Context, bucket, fileKey string) error {
	m.RemoveCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	return m.RemoveErr
}

func (m *Storage) PublicURL(bucket, fileKey string) string {
	return "https://storage.example.com/" + bucket + "/" + fileKey
}
