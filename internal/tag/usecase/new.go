package usecase

import (
	"daily-task-management/internal/tag/repository"
	"daily-task-management/pkg/log"
)

// implUseCase is the private implementation of tag.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new tag UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}

// coalesce returns the first non-empty string — used for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
