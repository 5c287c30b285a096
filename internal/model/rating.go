package model

import (
	"time"

	"github.com/mlegrand/photoshare-go/internal/db"
)

// Rating is one user's rating of one photo, value in [1,5]. The
// (user_id, photo_id) pair is unique: submitting again upserts.
type Rating struct {
	ID        db.UUID   `json:"id"`
	UserID    db.UUID   `json:"user_id"`
	PhotoID   db.UUID   `json:"photo_id"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
