package photo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/mlegrand/photoshare-go/internal/port"
)

type deleterSrv struct {
	repo       port.PhotoRepository
	cache      port.Cache
	dispatcher port.TaskDispatcher
}

// NewPhotoDeleter returns the use case for deleting an owned photo together
// with its comments and ratings.
func NewPhotoDeleter(repo port.PhotoRepository, cache port.Cache, dispatcher port.TaskDispatcher) port.PhotoDeleter {
	return &deleterSrv{repo: repo, cache: cache, dispatcher: dispatcher}
}

// compile-time check
var _ port.PhotoDeleter = (*deleterSrv)(nil)

func (s *deleterSrv) DeletePhoto(ctx context.Context, in port.DeletePhotoInput) error {
	p, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("error getting photo #%s: %w", in.ID, err)
	}
	if p.CreatorID != in.RequesterID {
		return ErrNotOwner
	}

	if err := s.repo.DeleteWithDependents(ctx, in.ID); err != nil {
		return fmt.Errorf("error deleting photo #%s: %w", in.ID, err)
	}

	if err := s.cache.DeletePhotoDetails(ctx, in.ID); err != nil {
		log.Printf("failed to invalidate cache for photo #%s: %v", in.ID, err)
	}

	// Storage cleanup happens out of band; a failed enqueue only leaks the
	// object, never the database row.
	if bucket, key, ok := splitObjectURL(p.MediaURL); ok {
		if err := s.dispatcher.EnqueuePurgeObject(ctx, bucket, key); err != nil {
			log.Printf("failed to enqueue purge for photo #%s: %v", in.ID, err)
		}
	}
	if bucket, key, ok := splitObjectURL(p.ThumbnailURL); ok {
		if err := s.dispatcher.EnqueuePurgeObject(ctx, bucket, key); err != nil {
			log.Printf("failed to enqueue thumbnail purge for photo #%s: %v", in.ID, err)
		}
	}

	return nil
}

// splitObjectURL extracts the bucket and object key from a storage URL of the
// form scheme://host/bucket/key. URLs that don't match (external hosting,
// legacy records) are skipped.
func splitObjectURL(raw string) (bucket, key string, ok bool) {
	if raw == "" {
		return "", "", false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", "", false
	}
	parts := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
