package worker

import (
	"context"
	"log"

	"github.com/mlegrand/photoshare-go/internal/port"
	"github.com/mlegrand/photoshare-go/internal/task"
)

// PurgeObjectHandler handles a purge-object task.
// It removes a storage object whose owning record is already gone from the
// database.
func PurgeObjectHandler(ctx context.Context, p task.PurgeObjectPayload, storage port.Storage) error {
	if err := storage.RemoveFile(ctx, p.Bucket, p.ObjectKey); err != nil {
		log.Printf("❌  Failed to purge object %q from bucket %q: %v", p.ObjectKey, p.Bucket, err)
		return err
	}

	log.Printf("✅  Successfully purged object %q from bucket %q", p.ObjectKey, p.Bucket)
	return nil
}
