package port

import "context"

// TaskDispatcher enqueues background jobs for the worker.
type TaskDispatcher interface {
	// EnqueuePurgeObject schedules best-effort removal of a storage object
	// once its owning record is gone from the database.
	EnqueuePurgeObject(ctx context.Context, bucket, objectKey string) error
}
