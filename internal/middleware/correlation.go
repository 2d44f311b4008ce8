package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"oddly-ddd/pkg/scope"
)

// CorrelationHeader carries the correlation id in both directions.
const CorrelationHeader = "x-correlation-id"

const maxCorrelationIDLen = 128

// Correlation reads the caller's correlation id or generates one, echoes it and stores it in the request scope.
func (m Middleware) Correlation() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(CorrelationHeader))
		if id == "" || len(id) > maxCorrelationIDLen {
			id = uuid.NewString()
		}

		ctx := c.Request.Context()
		sc := scope.GetScopeFromContext(ctx)
		sc.CorrelationID = id
		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))
		c.Header(CorrelationHeader, id)

		c.Next()
	}
}
