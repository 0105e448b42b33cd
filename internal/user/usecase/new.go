package usecase

import (
	"daily-task-management/internal/user/repository"
	"daily-task-management/pkg/log"
	"daily-task-management/pkg/scope"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo   repository.Repository
	scopes scope.Manager
	l      log.Logger
}

// New creates a new user UseCase implementation.
func New(repo repository.Repository, scopes scope.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		scopes: scopes,
		l:      l,
	}
}
