package port

import (
	"context"

	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/model"
)

// UserRepository defines persistence operations for identities.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id db.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// UsernameTaken reports whether another user (any user but excludeID)
	// already holds the given username. Lookup is exact; callers lowercase
	// the username before storing and checking.
	UsernameTaken(ctx context.Context, username string, excludeID db.UUID) (bool, error)
	// UpdateProfile applies a partial update: only non-nil patch fields are
	// written. A present-but-empty username is stored as NULL.
	UpdateProfile(ctx context.Context, id db.UUID, patch model.ProfilePatch) error
}

// PhotoListFilter narrows and pages a photo listing.
type PhotoListFilter struct {
	// Search is matched case-insensitively as a substring of title,
	// caption or location. Empty matches everything.
	Search    string
	CreatorID *db.UUID
	Offset    int
	Limit     int
}

// PhotoRepository defines persistence operations for photos.
type PhotoRepository interface {
	Create(ctx context.Context, photo *model.Photo) error
	GetByID(ctx context.Context, id db.UUID) (*model.Photo, error)
	List(ctx context.Context, filter PhotoListFilter) ([]model.Photo, error)
	Count(ctx context.Context, filter PhotoListFilter) (int, error)
	Update(ctx context.Context, photo *model.Photo) error
	// DeleteWithDependents removes the photo and every comment and rating
	// referencing it, children first, inside a single transaction.
	DeleteWithDependents(ctx context.Context, id db.UUID) error
	CountByCreator(ctx context.Context, creatorID db.UUID) (int, error)
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id db.UUID) (*model.Comment, error)
	Update(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, id db.UUID) error
	// ListByPhoto returns the photo's comments newest-first, each joined
	// with its author's email.
	ListByPhoto(ctx context.Context, photoID db.UUID) ([]model.CommentWithAuthor, error)
	CountByPhoto(ctx context.Context, photoID db.UUID) (int, error)
}

// RatingRepository defines persistence operations for ratings.
type RatingRepository interface {
	// Upsert inserts the rating or, when the (user, photo) pair already has
	// one, overwrites its value.
	Upsert(ctx context.Context, rating *model.Rating) error
	ListByPhoto(ctx context.Context, photoID db.UUID) ([]model.Rating, error)
	CountByPhoto(ctx context.Context, photoID db.UUID) (int, error)
}
