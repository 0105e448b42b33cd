package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"daily-task-management/internal/middleware"
	tagHTTP "daily-task-management/internal/tag/delivery/http"
	tagRepo "daily-task-management/internal/tag/repository/postgre"
	tagUC "daily-task-management/internal/tag/usecase"
)

// setupTagDomain initializes the tag domain and registers its routes.
func (srv *HTTPServer) setupTagDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := tagRepo.New(srv.postgresDB, srv.l)
	uc := tagUC.New(repo, srv.l)
	h := tagHTTP.New(srv.l, uc)
	tagHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Tag domain registered")
}
