package mock

import (
	"context"

	"github.com/mlegrand/photoshare-go/internal/db"
)

// Cache implements cache behaviour for tests.
type Cache struct {
	// stored value returned on Get
	DetailsOut []byte

	// errors
	GetErr error
	DelErr error

	// call flags
	GetCalled bool
	SetCalled bool
	DelCalled bool

	// last payload passed to Set
	SetData []byte
	// last id touched
	ID db.UUID
}

func (c *Cache) GetPhotoDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	c.GetCalled = true
	c.ID = id
	if c.GetErr != nil {
		return nil, c.GetErr
	}
	return c.DetailsOut, nil
}

func (c *Cache) SetPhotoDetails(ctx context.Context, id db.UUID, data []byte) {
	c.SetCalled = true
	c.ID = id
	c.SetData = data
}

func (c *Cache) DeletePhotoDetails(ctx context.Context, id db.UUID) error {
	c.DelCalled = true
	c.ID = id
	return c.DelErr
}
