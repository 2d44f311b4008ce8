package http

import (
	"context"

	"github.com/gin-gonic/gin"

	pkgErrors "oddly-ddd/pkg/errors"
	"oddly-ddd/pkg/response"
	"oddly-ddd/pkg/scope"
)

// Create godoc
// @Summary     Create an example
// @Description Creates an example owned by the caller. Anonymous callers must pass ownerId.
// @Tags        Example
// @Accept      json
// @Produce     json
// @Param       Authorization    header string    false "Bearer token"
// @Param       x-correlation-id header string    false "Correlation id"
// @Param       body             body   createReq true  "Example data"
// @Success     201 {object} exampleResp
// @Failure     400 {object} response.ErrorResp "ValidationFailed"
// @Failure     403 {object} response.ErrorResp "Forbidden"
// @Failure     409 {object} response.ErrorResp "AlreadyExists"
// @Failure     429 {object} response.ErrorResp "TooManyRequests"
// @Failure     500 {object} response.ErrorResp "Unknown"
// @Router      /v1/example [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		h.fail(c, "processCreateReq", err)
		return
	}

	out, err := h.uc.Create(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		h.fail(c, "uc.Create", err)
		return
	}

	response.Created(c, newExampleResp(out.Example))
}

// List godoc
// @Summary     List examples
// @Description Lists examples newest first. Use skip/take or page/pageSize.
// @Tags        Example
// @Produce     json
// @Param       skip     query int    false "Rows to skip, a multiple of take"
// @Param       take     query int    false "Page size"
// @Param       page     query int    false "1-based page (default 1)"
// @Param       pageSize query int    false "Page size (default 20, max 100)"
// @Param       ownerId  query string false "Filter by owner"
// @Param       isActive query bool   false "Filter by activity"
// @Param       q        query string false "Name contains"
// @Success     200 {object} listResp
// @Failure     400 {object} response.ErrorResp "ValidationFailed"
// @Failure     500 {object} response.ErrorResp "Unknown"
// @Router      /v1/example [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		h.fail(c, "processListReq", err)
		return
	}

	out, err := h.uc.List(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		h.fail(c, "uc.List", err)
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get an example
// @Tags        Example
// @Produce     json
// @Param       id path string true "Example ID"
// @Success     200 {object} exampleResp
// @Failure     404 {object} response.ErrorResp "NotFound"
// @Failure     500 {object} response.ErrorResp "Unknown"
// @Router      /v1/example/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		h.fail(c, "processIDParam", err)
		return
	}

	out, err := h.uc.Detail(ctx, scope.GetScopeFromContext(ctx), id)
	if err != nil {
		h.fail(c, "uc.Detail", err)
		return
	}

	response.OK(c, newExampleResp(out.Example))
}

// Update godoc
// @Summary     Update an example
// @Description Partial update guarded by the version the client last read.
// @Tags        Example
// @Accept      json
// @Param       Authorization header string    true "Bearer token"
// @Param       id            path   string    true "Example ID"
// @Param       body          body   updateReq true "Fields to change"
// @Success     204
// @Failure     400 {object} response.ErrorResp "ValidationFailed"
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     403 {object} response.ErrorResp "Forbidden"
// @Failure     404 {object} response.ErrorResp "NotFound"
// @Failure     409 {object} response.ErrorResp "Conflict"
// @Router      /v1/example/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		h.fail(c, "processUpdateReq", err)
		return
	}

	if err := h.uc.Update(ctx, scope.GetScopeFromContext(ctx), req.toInput()); err != nil {
		h.fail(c, "uc.Update", err)
		return
	}

	response.NoContent(c)
}

// Delete godoc
// @Summary     Delete an example
// @Tags        Example
// @Param       Authorization header string true "Bearer token"
// @Param       id            path   string true "Example ID"
// @Success     204
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     403 {object} response.ErrorResp "Forbidden"
// @Failure     404 {object} response.ErrorResp "NotFound"
// @Router      /v1/example/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	h.command(c, "uc.Delete", h.uc.Delete)
}

// Activate godoc
// @Summary     Activate an example
// @Tags        Example
// @Param       Authorization header string true "Bearer token"
// @Param       id            path   string true "Example ID"
// @Success     204
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     403 {object} response.ErrorResp "Forbidden"
// @Failure     404 {object} response.ErrorResp "NotFound"
// @Router      /v1/example/{id}/activate [POST]
func (h *handler) Activate(c *gin.Context) {
	h.command(c, "uc.Activate", h.uc.Activate)
}

// Deactivate godoc
// @Summary     Deactivate an example
// @Tags        Example
// @Param       Authorization header string true "Bearer token"
// @Param       id            path   string true "Example ID"
// @Success     204
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     403 {object} response.ErrorResp "Forbidden"
// @Failure     404 {object} response.ErrorResp "NotFound"
// @Router      /v1/example/{id}/deactivate [POST]
func (h *handler) Deactivate(c *gin.Context) {
	h.command(c, "uc.Deactivate", h.uc.Deactivate)
}

// command runs an id-only use case and answers 204.
func (h *handler) command(c *gin.Context, op string, fn func(ctx context.Context, sc scope.Scope, id string) error) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		h.fail(c, "processIDParam", err)
		return
	}

	if err := fn(ctx, scope.GetScopeFromContext(ctx), id); err != nil {
		h.fail(c, op, err)
		return
	}

	response.NoContent(c)
}

// fail records err on the context so the unit of work rolls back, then renders the envelope.
func (h *handler) fail(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	if pkgErrors.CodeOf(err) == pkgErrors.CodeUnknown {
		h.l.Errorf(ctx, "example.http.%s: %v", op, err)
	} else {
		h.l.Warnf(ctx, "example.http.%s: %v", op, err)
	}

	_ = c.Error(err)
	response.Error(c, err, h.hideInternal)
}
