package http

import (
	"github.com/gin-gonic/gin"

	"daily-task-management/internal/middleware"
	"daily-task-management/pkg/response"
)

// List godoc
// @Summary     List daily stats
// @Description Returns every daily stat of the caller ordered by date ascending.
// @Tags        DailyStats
// @Produce     json
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/daily-stats [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Range godoc
// @Summary     List daily stats in a range
// @Description Returns stats between the first of the start month and the end date, as "start,end".
// @Tags        DailyStats
// @Produce     json
// @Param       range path string true "Range as YYYY-MM-DD,YYYY-MM-DD"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/daily-stats/{range} [GET]
func (h *handler) Range(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processRangeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Range(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Range: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}
