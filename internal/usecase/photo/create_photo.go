package photo

import (
	"context"
	"fmt"
	"time"

	"github.com/mlegrand/photoshare-go/internal/model"
	"github.com/mlegrand/photoshare-go/internal/port"
)

type creatorSrv struct {
	repo    port.PhotoRepository
	genUUID port.UUIDGen
}

// NewPhotoCreator returns the use case for recording an uploaded media file
// as a photo post.
func NewPhotoCreator(repo port.PhotoRepository, genUUID port.UUIDGen) port.PhotoCreator {
	return &creatorSrv{repo: repo, genUUID: genUUID}
}

// compile-time check
var _ port.PhotoCreator = (*creatorSrv)(nil)

func (s *creatorSrv) CreatePhoto(ctx context.Context, in port.CreatePhotoInput) (*port.CreatePhotoOutput, error) {
	people := in.People
	if people == nil {
		people = []string{}
	}

	now := time.Now()
	photo := &model.Photo{
		ID:           s.genUUID(),
		CreatorID:    in.CreatorID,
		Title:        in.Title,
		Caption:      in.Caption,
		Location:     in.Location,
		People:       people,
		MediaURL:     in.MediaURL,
		MediaKind:    model.DetectMediaKind(in.MediaURL),
		ThumbnailURL: in.ThumbnailURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, photo); err != nil {
		return nil, fmt.Errorf("error creating photo: %w", err)
	}

	return &port.CreatePhotoOutput{
		ID:        photo.ID,
		Title:     photo.Title,
		MediaURL:  photo.MediaURL,
		MediaType: photo.MediaKind,
	}, nil
}
