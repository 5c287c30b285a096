package upload

import "errors"

var (
	ErrUnsupportedType = errors.New("upload: unsupported file type")
	ErrFileTooLarge    = errors.New("upload: file exceeds the size limit")
)
