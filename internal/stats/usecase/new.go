package usecase

import (
	"daily-task-management/internal/stats"
	"daily-task-management/internal/stats/repository"
	"daily-task-management/pkg/log"
)

// implUseCase is the private implementation of stats.UseCase.
type implUseCase struct {
	repo     repository.Repository
	l        log.Logger
	rng      stats.Rand
	scoreCfg stats.ScoreConfig
}

// New creates a new stats UseCase implementation. The Rand source feeds
// message and center selection; pass a seeded one in tests.
func New(repo repository.Repository, l log.Logger, rng stats.Rand, scoreCfg stats.ScoreConfig) *implUseCase {
	return &implUseCase{
		repo:     repo,
		l:        l,
		rng:      rng,
		scoreCfg: scoreCfg,
	}
}
