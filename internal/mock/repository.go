package mock

import (
	"context"

	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/model"
	"github.com/mlegrand/photoshare-go/internal/port"
)

// MockUserRepo implements repository operations for tests.
type MockUserRepo struct {
	UserRecord *model.User

	GetErr           error
	GetByEmailErr    error
	CreateErr        error
	UsernameTakenErr error
	UpdateProfileErr error

	UsernameTakenOut bool

	GetCalled           bool
	GetByEmailCalled    bool
	UsernameTakenCalled bool
	UpdateProfileCalled bool

	Created        *model.User
	CheckedName    string
	UpdatedID      db.UUID
	AppliedPatch   model.ProfilePatch
	RequestedEmail string
}

func (m *MockUserRepo) Create(ctx context.Context, user *model.User) error {
	m.Created = user
	return m.CreateErr
}

func (m *MockUserRepo) GetByID(ctx context.Context, id db.UUID) (*model.User, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.UserRecord, nil
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	m.GetByEmailCalled = true
	m.RequestedEmail = email
	if m.GetByEmailErr != nil {
		return nil, m.GetByEmailErr
	}
	return m.UserRecord, nil
}

func (m *MockUserRepo) UsernameTaken(ctx context.Context, username string, excludeID db.UUID) (bool, error) {
	m.UsernameTakenCalled = true
	m.CheckedName = username
	if m.UsernameTakenErr != nil {
		return false, m.UsernameTakenErr
	}
	return m.UsernameTakenOut, nil
}

func (m *MockUserRepo) UpdateProfile(ctx context.Context, id db.UUID, patch model.ProfilePatch) error {
	m.UpdateProfileCalled = true
	m.UpdatedID = id
	m.AppliedPatch = patch
	return m.UpdateProfileErr
}

// MockPhotoRepo implements repository operations for tests.
type MockPhotoRepo struct {
	PhotoRecord *model.Photo

	GetErr            error
	CreateErr         error
	UpdateErr         error
	DeleteErr         error
	ListErr           error
	CountErr          error
	CountByCreatorErr error

	ListOut           []model.Photo
	CountOut          int
	CountByCreatorOut int

	GetCalled            bool
	ListCalled           bool
	CountCalled          bool
	DeleteCalled         bool
	CountByCreatorCalled bool

	Created    *model.Photo
	Updated    *model.Photo
	DeletedID  db.UUID
	ListFilter port.PhotoListFilter
}

func (m *MockPhotoRepo) Create(ctx context.Context, photo *model.Photo) error {
	m.Created = photo
	return m.CreateErr
}

func (m *MockPhotoRepo) GetByID(ctx context.Context, id db.UUID) (*model.Photo, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.PhotoRecord, nil
}

func (m *MockPhotoRepo) List(ctx context.Context, filter port.PhotoListFilter) ([]model.Photo, error) {
	m.ListCalled = true
	m.ListFilter = filter
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

func (m *MockPhotoRepo) Count(ctx context.Context, filter port.PhotoListFilter) (int, error) {
	m.CountCalled = true
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	return m.CountOut, nil
}

func (m *MockPhotoRepo) Update(ctx context.Context, photo *model.Photo) error {
	m.Updated = photo
	return m.UpdateErr
}

func (m *MockPhotoRepo) DeleteWithDependents(ctx context.Context, id db.UUID) error {
	m.DeleteCalled = true
	m.DeletedID = id
	return m.DeleteErr
}

func (m *MockPhotoRepo) CountByCreator(ctx context.Context, creatorID db.UUID) (int, error) {
	m.CountByCreatorCalled = true
	if m.CountByCreatorErr != nil {
		return 0, m.CountByCreatorErr
	}
	return m.CountByCreatorOut, nil
}

// MockCommentRepo implements repository operations for tests.
type MockCommentRepo struct {
	CommentRecord *model.Comment

	GetErr          error
	CreateErr       error
	UpdateErr       error
	DeleteErr       error
	ListByPhotoErr  error
	CountByPhotoErr error

	ListByPhotoOut  []model.CommentWithAuthor
	CountByPhotoOut int

	GetCalled          bool
	DeleteCalled       bool
	ListByPhotoCalled  bool
	CountByPhotoCalled bool

	Created   *model.Comment
	Updated   *model.Comment
	DeletedID db.UUID
}

func (m *MockCommentRepo) Create(ctx context.Context, comment *model.Comment) error {
	m.Created = comment
	return m.CreateErr
}

func (m *MockCommentRepo) GetByID(ctx context.Context, id db.UUID) (*model.Comment, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.CommentRecord, nil
}

func (m *MockCommentRepo) Update(ctx context.Context, comment *model.Comment) error {
	m.Updated = comment
	return m.UpdateErr
}

func (m *MockCommentRepo) Delete(ctx context.Context, id db.UUID) error {
	m.DeleteCalled = true
	m.DeletedID = id
	return m.DeleteErr
}

func (m *MockCommentRepo) ListByPhoto(ctx context.Context, photoID db.UUID) ([]model.CommentWithAuthor, error) {
	m.ListByPhotoCalled = true
	if m.ListByPhotoErr != nil {
		return nil, m.ListByPhotoErr
	}
	return m.ListByPhotoOut, nil
}

func (m *MockCommentRepo) CountByPhoto(ctx context.Context, photoID db.UUID) (int, error) {
	m.CountByPhotoCalled = true
	if m.CountByPhotoErr != nil {
		return 0, m.CountByPhotoErr
	}
	return m.CountByPhotoOut, nil
}

// MockRatingRepo implements repository operations for tests.
type MockRatingRepo struct {
	UpsertErr       error
	ListByPhotoErr  error
	CountByPhotoErr error

	ListByPhotoOut  []model.Rating
	CountByPhotoOut int

	UpsertCalled       bool
	ListByPhotoCalled  bool
	CountByPhotoCalled bool

	Upserted *model.Rating
}

func (m *MockRatingRepo) Upsert(ctx context.Context, rating *model.Rating) error {
	m.UpsertCalled = true
	m.Upserted = rating
	return m.UpsertErr
}

func (m *MockRatingRepo) ListByPhoto(ctx context.Context, photoID db.UUID) ([]model.Rating, error) {
	m.ListByPhotoCalled = true
	if m.ListByPhotoErr != nil {
		return nil, m.ListByPhotoErr
	}
	return m.ListByPhotoOut, nil
}

func (m *MockRatingRepo) CountByPhoto(ctx context.Context, photoID db.UUID) (int, error) {
	m.CountByPhotoCalled = true
	if m.CountByPhotoErr != nil {
		return 0, m.CountByPhotoErr
	}
	return m.CountByPhotoOut, nil
}
