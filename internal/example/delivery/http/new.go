package http

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"oddly-ddd/internal/example"
	"oddly-ddd/pkg/log"
)

// Handler is the public interface for the example HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Activate(c *gin.Context)
	Deactivate(c *gin.Context)
}

type handler struct {
	l            log.Logger
	uc           example.UseCase
	hideInternal bool
}

var registerValidators sync.Once

// New creates a new HTTP handler for the example domain.
// hideInternal strips details from Unknown errors, which production wants.
func New(l log.Logger, uc example.UseCase, hideInternal bool) Handler {
	registerValidators.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
				panic(err)
			}
		}
	})

	return &handler{
		l:            l,
		uc:           uc,
		hideInternal: hideInternal,
	}
}
