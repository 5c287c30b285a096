package photo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/mlegrand/photoshare-go/internal/port"
)

type updaterSrv struct {
	repo  port.PhotoRepository
	cache port.Cache
}

// NewPhotoUpdater returns the use case for partially updating an owned photo.
func NewPhotoUpdater(repo port.PhotoRepository, cache port.Cache) port.PhotoUpdater {
	return &updaterSrv{repo: repo, cache: cache}
}

// compile-time check
var _ port.PhotoUpdater = (*updaterSrv)(nil)

func (s *updaterSrv) UpdatePhoto(ctx context.Context, in port.UpdatePhotoInput) (*port.UpdatePhotoOutput, error) {
	p, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting photo #%s: %w", in.ID, err)
	}
	if p.CreatorID != in.RequesterID {
		return nil, ErrNotOwner
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Caption != nil {
		p.Caption = *in.Caption
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.People != nil {
		p.People = *in.People
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("error updating photo #%s: %w", in.ID, err)
	}

	if err := s.cache.DeletePhotoDetails(ctx, in.ID); err != nil {
		log.Printf("failed to invalidate cache for photo #%s: %v", in.ID, err)
	}

	return &port.UpdatePhotoOutput{
		ID:       p.ID,
		Title:    p.Title,
		Caption:  p.Caption,
		Location: p.Location,
		People:   p.People,
	}, nil
}
