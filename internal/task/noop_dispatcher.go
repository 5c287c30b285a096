package task

import (
	"context"

	"github.com/mlegrand/photoshare-go/internal/port"
)

type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueuePurgeObject(ctx context.Context, bucket, objectKey string) error {
	return nil
}
