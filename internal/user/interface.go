package user

import (
	"context"

	"daily-task-management/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Register creates an account. The password is stored as a bcrypt hash.
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)

	// Me returns the caller's account.
	Me(ctx context.Context, sc model.Scope) (MeOutput, error)
}
