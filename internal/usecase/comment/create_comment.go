package comment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/mlegrand/photoshare-go/internal/model"
	"github.com/mlegrand/photoshare-go/internal/port"
)

type creatorSrv struct {
	comments port.CommentRepository
	photos   port.PhotoRepository
	cache    port.Cache
	genUUID  port.UUIDGen
}

// NewCommentCreator returns the use case for attaching a comment to a photo.
func NewCommentCreator(comments port.CommentRepository, photos port.PhotoRepository, cache port.Cache, genUUID port.UUIDGen) port.CommentCreator {
	return &creatorSrv{comments: comments, photos: photos, cache: cache, genUUID: genUUID}
}

// compile-time check
var _ port.CommentCreator = (*creatorSrv)(nil)

func (s *creatorSrv) CreateComment(ctx context.Context, in port.CreateCommentInput) (*port.CommentOutput, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	if _, err := s.photos.GetByID(ctx, in.PhotoID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("error getting photo #%s: %w", in.PhotoID, err)
	}

	now := time.Now()
	c := &model.Comment{
		ID:        s.genUUID(),
		PhotoID:   in.PhotoID,
		UserID:    in.UserID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("error creating comment on photo #%s: %w", in.PhotoID, err)
	}

	if err := s.cache.DeletePhotoDetails(ctx, in.PhotoID); err != nil {
		log.Printf("failed to invalidate cache for photo #%s: %v", in.PhotoID, err)
	}

	return &port.CommentOutput{
		ID:        c.ID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}, nil
}
