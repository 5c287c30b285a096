package cache

import (
	"context"

	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetPhotoDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) SetPhotoDetails(ctx context.Context, id db.UUID, data []byte) {}

func (n *NoopCache) DeletePhotoDetails(ctx context.Context, id db.UUID) error { return nil }
