package http

import (
	"daily-task-management/internal/stats"
	pkgErrors "daily-task-management/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case stats.ErrInvalidRange:
		return pkgErrors.NewHTTPError(400, "invalid date range")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
