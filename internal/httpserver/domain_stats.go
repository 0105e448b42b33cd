package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"daily-task-management/internal/middleware"
	"daily-task-management/internal/stats"
	statsHTTP "daily-task-management/internal/stats/delivery/http"
	statsRepo "daily-task-management/internal/stats/repository/postgre"
	statsUC "daily-task-management/internal/stats/usecase"
)

// setupStatsDomain initializes the stats domain and registers its routes.
// The use case is returned so the task domain can recompute stats after
// each mutation.
func (srv *HTTPServer) setupStatsDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) stats.UseCase {
	repo := statsRepo.New(srv.postgresDB, srv.l)
	uc := statsUC.New(repo, srv.l, srv.rng, srv.scoreCfg)
	h := statsHTTP.New(srv.l, uc)
	statsHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Stats domain registered")
	return uc
}
