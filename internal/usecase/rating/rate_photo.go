package rating

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mlegrand/photoshare-go/internal/model"
	"github.com/mlegrand/photoshare-go/internal/port"
)

type raterSrv struct {
	ratings port.RatingRepository
	photos  port.PhotoRepository
	cache   port.Cache
	genUUID port.UUIDGen
}

// NewPhotoRater returns the use case for submitting or replacing a rating.
func NewPhotoRater(ratings port.RatingRepository, photos port.PhotoRepository, cache port.Cache, genUUID port.UUIDGen) port.PhotoRater {
	return &raterSrv{ratings: ratings, photos: photos, cache: cache, genUUID: genUUID}
}

// compile-time check
var _ port.PhotoRater = (*raterSrv)(nil)

func (s *raterSrv) RatePhoto(ctx context.Context, in port.RatePhotoInput) error {
	if in.Value < 1 || in.Value > 5 {
		return ErrInvalidValue
	}

	if _, err := s.photos.GetByID(ctx, in.PhotoID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPhotoNotFound
		}
		return fmt.Errorf("error getting photo #%s: %w", in.PhotoID, err)
	}

	now := time.Now()
	r := &model.Rating{
		ID:        s.genUUID(),
		UserID:    in.UserID,
		PhotoID:   in.PhotoID,
		Value:     in.Value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.ratings.Upsert(ctx, r); err != nil {
		return fmt.Errorf("error rating photo #%s: %w", in.PhotoID, err)
	}

	if err := s.cache.DeletePhotoDetails(ctx, in.PhotoID); err != nil {
		log.Printf("failed to invalidate cache for photo #%s: %v", in.PhotoID, err)
	}

	return nil
}
