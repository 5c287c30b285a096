package photo

import "errors"

var (
	ErrNotFound = errors.New("photo: not found")
	ErrNotOwner = errors.New("photo: requester does not own this photo")
)
