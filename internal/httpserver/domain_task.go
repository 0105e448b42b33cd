package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"daily-task-management/internal/middleware"
	"daily-task-management/internal/stats"
	taskHTTP "daily-task-management/internal/task/delivery/http"
	taskRepo "daily-task-management/internal/task/repository/postgre"
	taskUC "daily-task-management/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, statsUseCase stats.UseCase) {
	repo := taskRepo.New(srv.postgresDB, srv.l)
	uc := taskUC.New(repo, statsUseCase, srv.dates, srv.l)
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
}
