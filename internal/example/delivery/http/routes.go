package http

import (
	"github.com/gin-gonic/gin"

	"oddly-ddd/internal/middleware"
)

// RegisterRoutes maps /example under rg. Reads are public.
// Mutations are rate limited and run inside a unit of work.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r := rg.Group("/example")
	{
		r.GET("", h.List)
		r.GET("/:id", h.Detail)
	}

	w := r.Group("", mw.RateLimit(), mw.UnitOfWork())
	{
		w.POST("", h.Create)
		w.PUT("/:id", h.Update)
		w.DELETE("/:id", h.Delete)
		w.POST("/:id/activate", h.Activate)
		w.POST("/:id/deactivate", h.Deactivate)
	}
}
