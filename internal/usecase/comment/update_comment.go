package comment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/mlegrand/photoshare-go/internal/port"
)

type updaterSrv struct {
	comments port.CommentRepository
	cache    port.Cache
}

// NewCommentUpdater returns the use case for editing one's own comment.
func NewCommentUpdater(comments port.CommentRepository, cache port.Cache) port.CommentUpdater {
	return &updaterSrv{comments: comments, cache: cache}
}

// compile-time check
var _ port.CommentUpdater = (*updaterSrv)(nil)

func (s *updaterSrv) UpdateComment(ctx context.Context, in port.UpdateCommentInput) (*port.CommentOutput, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	c, err := s.comments.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting comment #%s: %w", in.ID, err)
	}
	if c.UserID != in.RequesterID {
		return nil, ErrNotAuthor
	}

	c.Text = text
	c.UpdatedAt = time.Now()
	if err := s.comments.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("error updating comment #%s: %w", in.ID, err)
	}

	if err := s.cache.DeletePhotoDetails(ctx, c.PhotoID); err != nil {
		log.Printf("failed to invalidate cache for photo #%s: %v", c.PhotoID, err)
	}

	return &port.CommentOutput{
		ID:        c.ID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}, nil
}
