package middleware

import (
	"io"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	pkgErrors "oddly-ddd/pkg/errors"
	"oddly-ddd/pkg/response"
)

// Recovery turns a panic into a 500 envelope.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "middleware.Recovery: panic: %v\n%s", recovered, debug.Stack())
		response.Error(c, pkgErrors.Newf(pkgErrors.CodeUnknown, "panic: %v", recovered), m.hideInternal)
		c.Abort()
	})
}
