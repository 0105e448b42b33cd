package http

import (
	"github.com/gin-gonic/gin"

	"daily-task-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tags := rg.Group("/tags")
	{
		tags.POST("", mw.Auth(), h.Create)
		tags.GET("", mw.Auth(), h.List)
		tags.PUT("/:id", mw.Auth(), h.Update)
		tags.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
