package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"oddly-ddd/internal/example"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindError(err)
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, bindError(err)
	}
	return req, req.validate()
}

// processUpdateReq binds the body and takes the id from the path.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	id, err := h.processIDParam(c)
	if err != nil {
		return updateReq{}, err
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindError(err)
	}
	req.ID = id
	return req, nil
}

func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", example.NewValidationError("id", "id is required")
	}
	return id, nil
}
