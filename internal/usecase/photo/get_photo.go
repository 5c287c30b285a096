package photo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/port"
)

type getterSrv struct {
	photos   port.PhotoRepository
	users    port.UserRepository
	comments port.CommentRepository
	ratings  port.RatingRepository
}

// NewPhotoGetter returns the use case for assembling the photo detail view.
func NewPhotoGetter(photos port.PhotoRepository, users port.UserRepository, comments port.CommentRepository, ratings port.RatingRepository) port.PhotoGetter {
	return &getterSrv{photos: photos, users: users, comments: comments, ratings: ratings}
}

// compile-time check
var _ port.PhotoGetter = (*getterSrv)(nil)

func (s *getterSrv) GetPhoto(ctx context.Context, id db.UUID) (*port.PhotoDetailOutput, error) {
	p, err := s.photos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting photo #%s: %w", id, err)
	}

	// The creator row may be gone while the photo lingers; the view then
	// carries a sentinel instead of failing.
	creator := port.UserRef{ID: "", Email: "Unknown Creator"}
	u, err := s.users.GetByID(ctx, p.CreatorID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("error getting creator of photo #%s: %w", id, err)
	}
	if err == nil {
		creator = port.UserRef{ID: u.ID.String(), Email: u.Email}
	}

	comments, err := s.comments.ListByPhoto(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error listing comments for photo #%s: %w", id, err)
	}

	ratings, err := s.ratings.ListByPhoto(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error listing ratings for photo #%s: %w", id, err)
	}
	ratingByUser := make(map[db.UUID]int, len(ratings))
	sum := 0
	for _, r := range ratings {
		ratingByUser[r.UserID] = r.Value
		sum += r.Value
	}
	var avg *float64
	if len(ratings) > 0 {
		v := float64(sum) / float64(len(ratings))
		avg = &v
	}

	views := make([]port.CommentView, 0, len(comments))
	for _, c := range comments {
		view := port.CommentView{
			ID:        c.ID,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
			User:      port.UserRef{ID: c.UserID.String(), Email: c.AuthorEmail},
		}
		if v, ok := ratingByUser[c.UserID]; ok {
			view.Rating = &v
		}
		views = append(views, view)
	}

	imageURL, videoURL, kind := mediaSlots(p.MediaURL)

	return &port.PhotoDetailOutput{
		ID:           p.ID,
		Title:        p.Title,
		Caption:      p.Caption,
		Location:     p.Location,
		People:       p.People,
		ImageURL:     imageURL,
		VideoURL:     videoURL,
		MediaType:    kind,
		ThumbnailURL: p.ThumbnailURL,
		Creator:      creator,
		Comments:     views,
		AvgRating:    avg,
	}, nil
}
