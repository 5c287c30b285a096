package mock

import (
	"context"

	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/port"
)

// MockRegisterer implements port.Registerer for tests.
type MockRegisterer struct {
	Out    *port.AuthOutput
	Err    error
	Called bool
	In     port.RegisterInput
}

func (m *MockRegisterer) Register(ctx context.Context, in port.RegisterInput) (*port.AuthOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockAuthenticator implements port.Authenticator for tests.
type MockAuthenticator struct {
	Out    *port.AuthOutput
	Err    error
	Called bool
	In     port.LoginInput
}

func (m *MockAuthenticator) Login(ctx context.Context, in port.LoginInput) (*port.AuthOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockFeedLister implements port.FeedLister for tests.
type MockFeedLister struct {
	Out    *port.ListPhotosOutput
	Err    error
	Called bool
	In     port.ListPhotosInput
}

func (m *MockFeedLister) ListPhotos(ctx context.Context, in port.ListPhotosInput) (*port.ListPhotosOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockPhotoGetter implements port.PhotoGetter for tests.
type MockPhotoGetter struct {
	Out    *port.PhotoDetailOutput
	Err    error
	Called bool
	ID     db.UUID
}

func (m *MockPhotoGetter) GetPhoto(ctx context.Context, id db.UUID) (*port.PhotoDetailOutput, error) {
	m.Called = true
	m.ID = id
	return m.Out, m.Err
}

// MockPhotoCreator implements port.PhotoCreator for tests.
type MockPhotoCreator struct {
	Out    *port.CreatePhotoOutput
	Err    error
	Called bool
	In     port.CreatePhotoInput
}

func (m *MockPhotoCreator) CreatePhoto(ctx context.Context, in port.CreatePhotoInput) (*port.CreatePhotoOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockPhotoUpdater implements port.PhotoUpdater for tests.
type MockPhotoUpdater struct {
	Out    *port.UpdatePhotoOutput
	Err    error
	Called bool
	In     port.UpdatePhotoInput
}

func (m *MockPhotoUpdater) UpdatePhoto(ctx context.Context, in port.UpdatePhotoInput) (*port.UpdatePhotoOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockPhotoDeleter implements port.PhotoDeleter for tests.
type MockPhotoDeleter struct {
	Err    error
	Called bool
	In     port.DeletePhotoInput
}

func (m *MockPhotoDeleter) DeletePhoto(ctx context.Context, in port.DeletePhotoInput) error {
	m.Called = true
	m.In = in
	return m.Err
}

// MockCommentCreator implements port.CommentCreator for tests.
type MockCommentCreator struct {
	Out    *port.CommentOutput
	Err    error
	Called bool
	In     port.CreateCommentInput
}

func (m *MockCommentCreator) CreateComment(ctx context.Context, in port.CreateCommentInput) (*port.CommentOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockCommentUpdater implements port.CommentUpdater for tests.
type MockCommentUpdater struct {
	Out    *port.CommentOutput
	Err    error
	Called bool
	In     port.UpdateCommentInput
}

func (m *MockCommentUpdater) UpdateComment(ctx context.Context, in port.UpdateCommentInput) (*port.CommentOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockCommentDeleter implements port.CommentDeleter for tests.
type MockCommentDeleter struct {
	Err    error
	Called bool
	In     port.DeleteCommentInput
}

func (m *MockCommentDeleter) DeleteComment(ctx context.Context, in port.DeleteCommentInput) error {
	m.Called = true
	m.In = in
	return m.Err
}

// MockPhotoRater implements port.PhotoRater for tests.
type MockPhotoRater struct {
	Err    error
	Called bool
	In     port.RatePhotoInput
}

func (m *MockPhotoRater) RatePhoto(ctx context.Context, in port.RatePhotoInput) error {
	m.Called = true
	m.In = in
	return m.Err
}

// MockProfileGetter implements port.ProfileGetter for tests.
type MockProfileGetter struct {
	Out    *port.ProfileOutput
	Err    error
	Called bool
	UserID db.UUID
}

func (m *MockProfileGetter) GetProfile(ctx context.Context, userID db.UUID) (*port.ProfileOutput, error) {
	m.Called = true
	m.UserID = userID
	return m.Out, m.Err
}

// MockProfileUpdater implements port.ProfileUpdater for tests.
type MockProfileUpdater struct {
	Out    *port.ProfileOutput
	Err    error
	Called bool
	In     port.UpdateProfileInput
}

func (m *MockProfileUpdater) UpdateProfile(ctx context.Context, in port.UpdateProfileInput) (*port.ProfileOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockMediaUploader implements port.MediaUploader for tests.
type MockMediaUploader struct {
	Out    *port.UploadOutput
	Err    error
	Called bool
	In     port.UploadInput
}

func (m *MockMediaUploader) UploadMedia(ctx context.Context, in port.UploadInput) (*port.UploadOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}
