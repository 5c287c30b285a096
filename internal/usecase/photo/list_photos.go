package photo

import (
	"context"
	"fmt"

	"github.com/mlegrand/photoshare-go/internal/port"
)

const defaultPageSize = 12

type feedListerSrv struct {
	photos   port.PhotoRepository
	comments port.CommentRepository
	ratings  port.RatingRepository
}

// NewFeedLister returns the use case for listing photos with pagination,
// search and optional creator scoping.
func NewFeedLister(photos port.PhotoRepository, comments port.CommentRepository, ratings port.RatingRepository) port.FeedLister {
	return &feedListerSrv{photos: photos, comments: comments, ratings: ratings}
}

// compile-time check
var _ port.FeedLister = (*feedListerSrv)(nil)

func (s *feedListerSrv) ListPhotos(ctx context.Context, in port.ListPhotosInput) (*port.ListPhotosOutput, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultPageSize
	}

	filter := port.PhotoListFilter{
		Search:    in.Search,
		CreatorID: in.CreatorID,
		Offset:    (page - 1) * limit,
		Limit:     limit,
	}

	total, err := s.photos.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error counting photos: %w", err)
	}

	photos, err := s.photos.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing photos: %w", err)
	}

	items := make([]port.PhotoListItem, 0, len(photos))
	for _, p := range photos {
		commentCount, err := s.comments.CountByPhoto(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("error counting comments for photo #%s: %w", p.ID, err)
		}
		ratingCount, err := s.ratings.CountByPhoto(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("error counting ratings for photo #%s: %w", p.ID, err)
		}

		imageURL, videoURL, kind := mediaSlots(p.MediaURL)
		item := port.PhotoListItem{
			ID:           p.ID,
			Title:        p.Title,
			ImageURL:     imageURL,
			VideoURL:     videoURL,
			MediaType:    kind,
			ThumbnailURL: p.ThumbnailURL,
			Counts: port.PhotoCounts{
				Comments: commentCount,
				Ratings:  ratingCount,
			},
		}
		// A creator-scoped listing is the creator's own dashboard, the
		// creator ref would be redundant there.
		if in.CreatorID == nil {
			item.Creator = &port.CreatorRef{ID: p.CreatorID}
		}
		items = append(items, item)
	}

	pages := 0
	if total > 0 {
		pages = (total + limit - 1) / limit
	}

	return &port.ListPhotosOutput{
		Photos: items,
		Pagination: port.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}
