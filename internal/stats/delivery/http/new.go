package http

import (
	"daily-task-management/internal/stats"
	"daily-task-management/pkg/log"
)

type handler struct {
	l  log.Logger
	uc stats.UseCase
}

// New creates a new HTTP handler for the stats domain.
func New(l log.Logger, uc stats.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
