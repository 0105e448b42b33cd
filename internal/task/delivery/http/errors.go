package http

import (
	"daily-task-management/internal/task"
	pkgErrors "daily-task-management/pkg/errors"
)

var (
	errWrongBody  = pkgErrors.NewHTTPError(400, "invalid request body")
	errWrongQuery = pkgErrors.NewHTTPError(400, "invalid request parameters")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
