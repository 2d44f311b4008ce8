package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "oddly-ddd/pkg/errors"
	"oddly-ddd/pkg/response"
	"oddly-ddd/pkg/scope"
)

const bearerPrefix = "Bearer "

// Auth resolves the actor from an optional bearer token.
// Requests without Authorization stay anonymous. A present but invalid token is rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		token, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok || m.jwtManager == nil {
			m.unauthorized(c, "unsupported authorization")
			return
		}

		payload, err := m.jwtManager.Verify(strings.TrimSpace(token))
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: %v", err)
			m.unauthorized(c, "invalid bearer token")
			return
		}

		sc := scope.GetScopeFromContext(ctx)
		sc.UserID = payload.UserID()
		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))

		c.Next()
	}
}

func (m Middleware) unauthorized(c *gin.Context, msg string) {
	response.Error(c, pkgErrors.New(pkgErrors.CodeUnauthorized, msg), m.hideInternal)
	c.Abort()
}
