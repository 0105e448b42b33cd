package middleware

import (
	"daily-task-management/pkg/log"
	"daily-task-management/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	rateLimit  int // requests per minute per client IP
}

func New(l log.Logger, jwtManager scope.Manager, rateLimitPerMin int) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		rateLimit:  rateLimitPerMin,
	}
}
