package rating

import "errors"

var (
	ErrInvalidValue  = errors.New("rating: value must be between 1 and 5")
	ErrPhotoNotFound = errors.New("rating: photo not found")
)
