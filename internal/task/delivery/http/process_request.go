package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"daily-task-management/pkg/datemath"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errWrongQuery
	}
	return req, nil
}

// processDateParam validates the :date path parameter.
func (h *handler) processDateParam(c *gin.Context) (string, error) {
	date := c.Param("date")
	if _, err := time.Parse(datemath.DateFormat, date); err != nil {
		return "", errWrongQuery
	}
	return date, nil
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errWrongBody
	}
	return req, nil
}
