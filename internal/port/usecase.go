package port

import (
	"context"
	"io"
	"time"

	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/model"
)

type UUIDGen func() db.UUID

// --- auth ---

type RegisterInput struct {
	Email    string
	Password string
	Role     model.Role
}
type AuthUser struct {
	ID    db.UUID    `json:"id"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}
type AuthOutput struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// Registerer creates a new identity and returns a signed token for it.
type Registerer interface {
	Register(ctx context.Context, in RegisterInput) (*AuthOutput, error)
}

type LoginInput struct {
	Email    string
	Password string
}

// Authenticator verifies credentials and returns a signed token.
type Authenticator interface {
	Login(ctx context.Context, in LoginInput) (*AuthOutput, error)
}

// --- feed / listing ---

type ListPhotosInput struct {
	Page   int
	Limit  int
	Search string
	// CreatorID restricts the listing to one creator's posts (the
	// dashboard view); items then omit the creator reference.
	CreatorID *db.UUID
}
type CreatorRef struct {
	ID db.UUID `json:"id"`
}
type PhotoCounts struct {
	Comments int `json:"comments"`
	Ratings  int `json:"ratings"`
}
type PhotoListItem struct {
	ID           db.UUID         `json:"id"`
	Title        string          `json:"title"`
	ImageURL     string          `json:"imageUrl"`
	VideoURL     string          `json:"videoUrl"`
	MediaType    model.MediaKind `json:"mediaType"`
	ThumbnailURL string          `json:"thumbnailUrl"`
	Creator      *CreatorRef     `json:"creator,omitempty"`
	Counts       PhotoCounts     `json:"_count"`
}
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}
type ListPhotosOutput struct {
	Photos     []PhotoListItem `json:"photos"`
	Pagination Pagination      `json:"pagination"`
}

// FeedLister produces paginated, optionally filtered photo listings.
type FeedLister interface {
	ListPhotos(ctx context.Context, in ListPhotosInput) (*ListPhotosOutput, error)
}

// --- detail ---

type UserRef struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
type CommentView struct {
	ID        db.UUID   `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	User      UserRef   `json:"user"`
	Rating    *int      `json:"rating"`
}
type PhotoDetailOutput struct {
	ID           db.UUID         `json:"id"`
	Title        string          `json:"title"`
	Caption      string          `json:"caption"`
	Location     string          `json:"location"`
	People       []string        `json:"people"`
	ImageURL     string          `json:"imageUrl"`
	VideoURL     string          `json:"videoUrl"`
	MediaType    model.MediaKind `json:"mediaType"`
	ThumbnailURL string          `json:"thumbnailUrl"`
	Creator      UserRef         `json:"creator"`
	Comments     []CommentView   `json:"comments"`
	AvgRating    *float64        `json:"avgRating"`
}

// PhotoGetter produces the fully denormalized view of a single photo.
type PhotoGetter interface {
	GetPhoto(ctx context.Context, id db.UUID) (*PhotoDetailOutput, error)
}

// --- mutations ---

type CreatePhotoInput struct {
	CreatorID    db.UUID
	Title        string
	Caption      string
	Location     string
	People       []string
	MediaURL     string
	ThumbnailURL string
}
type CreatePhotoOutput struct {
	ID        db.UUID         `json:"id"`
	Title     string          `json:"title"`
	MediaURL  string          `json:"imageUrl"`
	MediaType model.MediaKind `json:"mediaType"`
}

// PhotoCreator creates a photo record for an already-uploaded media file.
type PhotoCreator interface {
	CreatePhoto(ctx context.Context, in CreatePhotoInput) (*CreatePhotoOutput, error)
}

type UpdatePhotoInput struct {
	ID          db.UUID
	RequesterID db.UUID
	// nil fields were absent from the request and stay untouched
	Title    *string
	Caption  *string
	Location *string
	People   *[]string
}
type UpdatePhotoOutput struct {
	ID       db.UUID  `json:"id"`
	Title    string   `json:"title"`
	Caption  string   `json:"caption"`
	Location string   `json:"location"`
	People   []string `json:"people"`
}

// PhotoUpdater applies a partial update to an owned photo.
type PhotoUpdater interface {
	UpdatePhoto(ctx context.Context, in UpdatePhotoInput) (*UpdatePhotoOutput, error)
}

type DeletePhotoInput struct {
	ID          db.UUID
	RequesterID db.UUID
}

// PhotoDeleter removes an owned photo and cascades to its comments and ratings.
type PhotoDeleter interface {
	DeletePhoto(ctx context.Context, in DeletePhotoInput) error
}

// --- comments ---

type CreateCommentInput struct {
	PhotoID db.UUID
	UserID  db.UUID
	Text    string
}
type CommentOutput struct {
	ID        db.UUID   `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentCreator attaches a comment to a photo.
type CommentCreator interface {
	CreateComment(ctx context.Context, in CreateCommentInput) (*CommentOutput, error)
}

type UpdateCommentInput struct {
	ID          db.UUID
	RequesterID db.UUID
	Text        string
}

// CommentUpdater edits a comment, author-only.
type CommentUpdater interface {
	UpdateComment(ctx context.Context, in UpdateCommentInput) (*CommentOutput, error)
}

type DeleteCommentInput struct {
	ID          db.UUID
	RequesterID db.UUID
}

// CommentDeleter removes a comment, author-only.
type CommentDeleter interface {
	DeleteComment(ctx context.Context, in DeleteCommentInput) error
}

// --- ratings ---

type RatePhotoInput struct {
	PhotoID db.UUID
	UserID  db.UUID
	Value   int
}

// PhotoRater submits or replaces the caller's rating of a photo.
type PhotoRater interface {
	RatePhoto(ctx context.Context, in RatePhotoInput) error
}

// --- profile ---

type ProfileOutput struct {
	ID          db.UUID    `json:"id"`
	Email       string     `json:"email"`
	Role        model.Role `json:"role"`
	Username    string     `json:"username"`
	DisplayName string     `json:"displayName"`
	Bio         string     `json:"bio"`
	AvatarURL   string     `json:"avatarUrl"`
	Website     string     `json:"website"`
	PostCount   int        `json:"postCount"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ProfileGetter returns the caller's own profile with derived post count.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID db.UUID) (*ProfileOutput, error)
}

type UpdateProfileInput struct {
	UserID db.UUID
	Patch  model.ProfilePatch
}

// ProfileUpdater applies a partial update to the caller's own profile.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, in UpdateProfileInput) (*ProfileOutput, error)
}

// --- upload ---

type UploadInput struct {
	FileName    string
	ContentType string
	SizeBytes   int64
	Reader      io.Reader
	// Avatar uploads go to the avatar bucket and only accept images.
	Avatar bool
}
type UploadOutput struct {
	SecureURL    string          `json:"secure_url"`
	MediaType    model.MediaKind `json:"mediaType"`
	ThumbnailURL string          `json:"thumbnailUrl"`
}

// MediaUploader validates and stores an uploaded file, returning its durable URL.
type MediaUploader interface {
	UploadMedia(ctx context.Context, in UploadInput) (*UploadOutput, error)
}
