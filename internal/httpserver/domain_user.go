package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"daily-task-management/internal/middleware"
	userHTTP "daily-task-management/internal/user/delivery/http"
	userRepo "daily-task-management/internal/user/repository/postgre"
	userUC "daily-task-management/internal/user/usecase"
)

// setupUserDomain initializes the user domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := userRepo.New(srv.postgresDB, srv.l)
	uc := userUC.New(repo, srv.scopeManager, srv.l)
	h := userHTTP.New(srv.l, uc)
	userHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "User domain registered")
}
