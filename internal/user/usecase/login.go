package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"daily-task-management/internal/model"
	"daily-task-management/internal/user"
	repo "daily-task-management/internal/user/repository"
)

// Login verifies credentials and issues an access token. Unknown email and
// wrong password return the same error so the response leaks nothing.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	account, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return user.LoginOutput{}, err
	}
	if account.ID == "" {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	token, err := uc.scopes.Generate(account.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login Generate: %v", err)
		return user.LoginOutput{}, err
	}

	return user.LoginOutput{User: account, Token: token}, nil
}

// Me returns the caller's account.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (user.MeOutput, error) {
	account, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me GetOneUser: %v", err)
		return user.MeOutput{}, err
	}
	if account.ID == "" {
		return user.MeOutput{}, user.ErrUserNotFound
	}
	return user.MeOutput{User: account}, nil
}
