package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"daily-task-management/internal/model"
	"daily-task-management/pkg/response"
)

const scopeContextKey = "scope"

// Auth validates the Bearer token and stores the caller Scope in the gin
// context. Requests without a valid token get 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := m.jwtManager.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeContextKey, model.Scope{UserID: claims.UserID})
		c.Next()
	}
}

// GetScope extracts the caller Scope set by Auth. The zero Scope is
// returned on unauthenticated routes.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeContextKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
