package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"daily-task-management/internal/stats"
	pkgErrors "daily-task-management/pkg/errors"
)

// processRangeReq parses the "start,end" path segment.
func (h *handler) processRangeReq(c *gin.Context) (stats.RangeInput, error) {
	parts := strings.Split(c.Param("range"), ",")
	if len(parts) != 2 {
		return stats.RangeInput{}, pkgErrors.NewHTTPError(400, "range must be start,end")
	}
	return stats.RangeInput{
		Start: strings.TrimSpace(parts[0]),
		End:   strings.TrimSpace(parts[1]),
	}, nil
}
