package http

import (
	"daily-task-management/internal/tag"
	pkgErrors "daily-task-management/pkg/errors"
)

var (
	errWrongBody = pkgErrors.NewHTTPError(400, "invalid request body")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case tag.ErrTagNotFound:
		return pkgErrors.NewHTTPError(404, "tag not found")
	case tag.ErrDuplicateName:
		return pkgErrors.NewHTTPError(409, "tag name already exists")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
