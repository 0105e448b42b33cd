package usecase

import (
	"daily-task-management/internal/stats"
	"daily-task-management/internal/task/repository"
	"daily-task-management/pkg/datemath"
	"daily-task-management/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo    repository.Repository
	statsUC stats.UseCase
	dates   *datemath.Parser
	l       log.Logger
}

// New creates a new task UseCase implementation. Every mutation refreshes
// the daily stats of the affected deadline dates through statsUC.
func New(repo repository.Repository, statsUC stats.UseCase, dates *datemath.Parser, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:    repo,
		statsUC: statsUC,
		dates:   dates,
		l:       l,
	}
}
