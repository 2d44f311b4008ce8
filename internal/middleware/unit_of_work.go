package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "oddly-ddd/pkg/errors"
	"oddly-ddd/pkg/response"
	"oddly-ddd/pkg/uow"
)

// errRequestFailed marks a handler exit that must roll back and still send its own response.
var errRequestFailed = errors.New("middleware: request failed")

// UnitOfWork runs a mutating request inside one transaction through uow.Run.
// The response is held back until the outcome is known: it commits when the status is below 400,
// no error was recorded and the request is still live. Everything else rolls back.
// A cancelled request answers with an error envelope in place of the buffered response.
// A panic rolls back and keeps unwinding to Recovery.
func (m Middleware) UnitOfWork() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.uowFactory == nil || !isMutating(c.Request.Method) {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		original := c.Writer
		bw := &bufferedWriter{ResponseWriter: original, status: http.StatusOK}
		defer func() { c.Writer = original }()

		began := false
		err := uow.Run(ctx, m.uowFactory(), func(txCtx context.Context) error {
			began = true
			c.Writer = bw
			c.Request = c.Request.WithContext(txCtx)
			c.Next()
			c.Writer = original
			if bw.status >= http.StatusBadRequest || len(c.Errors) > 0 {
				return errRequestFailed
			}
			return nil
		})

		switch {
		case err == nil, errors.Is(err, errRequestFailed):
			bw.flush()
		case !began:
			m.l.Errorf(ctx, "middleware.UnitOfWork: begin: %v", err)
			response.Error(c, pkgErrors.Wrap(pkgErrors.CodeUnknown, err, "failed to begin transaction"), m.hideInternal)
			c.Abort()
		case ctx.Err() != nil:
			m.l.Warnf(ctx, "middleware.UnitOfWork: rolled back: %v", err)
			response.Error(c, pkgErrors.Wrap(pkgErrors.CodeUnknown, err, "request cancelled"), m.hideInternal)
		default:
			m.l.Errorf(ctx, "middleware.UnitOfWork: commit: %v", err)
			response.Error(c, pkgErrors.Wrap(pkgErrors.CodeUnknown, err, "failed to commit transaction"), m.hideInternal)
		}
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// bufferedWriter holds status and body until flush. Headers go straight to the wrapped writer.
type bufferedWriter struct {
	gin.ResponseWriter
	buf    bytes.Buffer
	status int
	wrote  bool
}

func (w *bufferedWriter) WriteHeader(code int) {
	if code > 0 {
		w.status = code
	}
}

func (w *bufferedWriter) WriteHeaderNow() { w.wrote = true }

func (w *bufferedWriter) Write(b []byte) (int, error) {
	w.wrote = true
	return w.buf.Write(b)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	w.wrote = true
	return w.buf.WriteString(s)
}

func (w *bufferedWriter) Status() int   { return w.status }
func (w *bufferedWriter) Size() int     { return w.buf.Len() }
func (w *bufferedWriter) Written() bool { return w.wrote }

func (w *bufferedWriter) flush() {
	w.ResponseWriter.WriteHeader(w.status)
	if w.buf.Len() > 0 {
		_, _ = w.ResponseWriter.Write(w.buf.Bytes())
	}
}
