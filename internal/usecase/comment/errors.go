package comment

import "errors"

var (
	ErrNotFound      = errors.New("comment: not found")
	ErrNotAuthor     = errors.New("comment: requester is not the author")
	ErrEmptyText     = errors.New("comment: text is empty")
	ErrPhotoNotFound = errors.New("comment: photo not found")
)
