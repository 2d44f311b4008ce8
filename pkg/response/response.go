package response

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "oddly-ddd/pkg/errors"
	"oddly-ddd/pkg/scope"
)

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends 204 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error renders err as the error envelope with the status mapped from its code.
// When hideInternal is set, Unknown errors lose their message and details.
func Error(c *gin.Context, err error, hideInternal bool) {
	e := pkgErrors.From(err)

	body := ErrorBody{
		Code:      e.Code.String(),
		Message:   e.Message,
		Details:   e.Details,
		Timestamp: DateTime(time.Now()),
		Path:      c.Request.URL.Path,
		RequestID: requestID(c, e),
	}
	if e.Code == pkgErrors.CodeUnknown && hideInternal {
		body.Message = DefaultErrorMessage
		body.Details = nil
	}

	c.JSON(e.HTTPStatus(), ErrorResp{Error: body})
}

// TooManyRequests sends 429 with the error envelope.
func TooManyRequests(c *gin.Context, retryAfter time.Duration) {
	c.Header("Retry-After", formatSeconds(retryAfter))
	c.JSON(http.StatusTooManyRequests, ErrorResp{Error: ErrorBody{
		Code:      CodeTooManyRequests,
		Message:   "rate limit exceeded",
		Timestamp: DateTime(time.Now()),
		Path:      c.Request.URL.Path,
		RequestID: scope.GetScopeFromContext(c.Request.Context()).CorrelationID,
	}})
}

func requestID(c *gin.Context, e *pkgErrors.Error) string {
	if e.CorrelationID != "" {
		return e.CorrelationID
	}
	return scope.GetScopeFromContext(c.Request.Context()).CorrelationID
}

func formatSeconds(d time.Duration) string {
	secs := int64(d.Round(time.Second) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.FormatInt(secs, 10)
}
