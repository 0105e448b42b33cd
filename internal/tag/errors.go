package tag

import "errors"

var (
	ErrTagNotFound   = errors.New("tag not found")
	ErrDuplicateName = errors.New("tag name already exists")
)
