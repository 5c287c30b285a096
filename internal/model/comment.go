package model

import (
	"time"

	"github.com/mlegrand/photoshare-go/internal/db"
)

// Comment is attached to exactly one photo. It is owned by its author, not
// by the photo's creator. Text is never stored empty or whitespace-only.
type Comment struct {
	ID        db.UUID   `json:"id"`
	UserID    db.UUID   `json:"user_id"`
	PhotoID   db.UUID   `json:"photo_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentWithAuthor is a comment joined with its author's public identity.
type CommentWithAuthor struct {
	Comment
	AuthorEmail string
}
