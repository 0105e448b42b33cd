package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"daily-task-management/internal/user"
	repo "daily-task-management/internal/user/repository"
)

// Register creates an account after checking email and username uniqueness.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.RegisterOutput, error) {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return user.RegisterOutput{}, err
	}
	if existing.ID != "" {
		return user.RegisterOutput{}, user.ErrEmailTaken
	}

	existing, err = uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Username: input.Username})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return user.RegisterOutput{}, err
	}
	if existing.ID != "" {
		return user.RegisterOutput{}, user.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register bcrypt: %v", err)
		return user.RegisterOutput{}, err
	}

	created, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return user.RegisterOutput{}, err
	}

	uc.l.Infof(ctx, "user registered: %s", created.ID)
	return user.RegisterOutput{User: created}, nil
}
