package http

import (
	"daily-task-management/internal/user"
	pkgErrors "daily-task-management/pkg/errors"
)

var (
	errWrongBody = pkgErrors.NewHTTPError(400, "invalid request body")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case user.ErrEmailTaken:
		return pkgErrors.NewHTTPError(409, "email already registered")
	case user.ErrUsernameTaken:
		return pkgErrors.NewHTTPError(409, "username already taken")
	case user.ErrInvalidCredentials:
		return pkgErrors.NewHTTPError(401, "invalid email or password")
	case user.ErrUserNotFound:
		return pkgErrors.NewHTTPError(404, "user not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
