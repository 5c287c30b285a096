package comment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/mlegrand/photoshare-go/internal/port"
)

type deleterSrv struct {
	comments port.CommentRepository
	cache    port.Cache
}

// NewCommentDeleter returns the use case for removing one's own comment.
func NewCommentDeleter(comments port.CommentRepository, cache port.Cache) port.CommentDeleter {
	return &deleterSrv{comments: comments, cache: cache}
}

// compile-time check
var _ port.CommentDeleter = (*deleterSrv)(nil)

func (s *deleterSrv) DeleteComment(ctx context.Context, in port.DeleteCommentInput) error {
	c, err := s.comments.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("error getting comment #%s: %w", in.ID, err)
	}
	if c.UserID != in.RequesterID {
		return ErrNotAuthor
	}

	if err := s.comments.Delete(ctx, in.ID); err != nil {
		return fmt.Errorf("error deleting comment #%s: %w", in.ID, err)
	}

	if err := s.cache.DeletePhotoDetails(ctx, c.PhotoID); err != nil {
		log.Printf("failed to invalidate cache for photo #%s: %v", c.PhotoID, err)
	}

	return nil
}
