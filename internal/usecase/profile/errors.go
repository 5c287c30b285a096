package profile

import "errors"

var (
	ErrNotFound        = errors.New("profile: user not found")
	ErrEmptyPatch      = errors.New("profile: no fields to update")
	ErrInvalidUsername = errors.New("profile: username must be 3-30 characters (letters, digits, underscore)")
	ErrUsernameTaken   = errors.New("profile: username is already taken")
	ErrBioTooLong      = errors.New("profile: bio must be 150 characters or fewer")
)
