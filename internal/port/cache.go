package port

import (
	"context"

	"github.com/mlegrand/photoshare-go/internal/db"
)

// Cache provides caching for the rendered photo-detail payload.
type Cache interface {
	// GetPhotoDetails returns the cached payload, or nil on a miss.
	GetPhotoDetails(ctx context.Context, id db.UUID) ([]byte, error)
	SetPhotoDetails(ctx context.Context, id db.UUID, data []byte)
	DeletePhotoDetails(ctx context.Context, id db.UUID) error
}
