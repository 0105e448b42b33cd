package http

import (
	"github.com/gin-gonic/gin"

	"daily-task-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Stats are
// written only by recomputation; this surface is read-only.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	dailyStats := rg.Group("/daily-stats")
	{
		dailyStats.GET("", mw.Auth(), h.List)
		dailyStats.GET("/:range", mw.Auth(), h.Range)
	}
}
