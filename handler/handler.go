// Package handler provides the HTTP surface of the notes service.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ncobase/notes/data"
	"github.com/ncobase/notes/logging/logger"
	"github.com/ncobase/notes/net/resp"
	"github.com/ncobase/notes/service"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Note   *NoteHandler
	data   *data.Data
	logger *logger.Logger
}

// NewHandler creates a new handler instance with all sub-handlers initialized.
func NewHandler(svc *service.Service, d *data.Data, logger *logger.Logger) *Handler {
	return &Handler{
		Note:   NewNoteHandler(svc.Note, logger),
		data:   d,
		logger: logger,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.Use(TraceMiddleware(), LoggingMiddleware(h.logger))

	r.GET("/health", h.Health)

	api := r.Group("/api/v1")
	{
		notes := api.Group("/notes")
		{
			notes.POST("", h.Note.Create)
			notes.GET("", h.Note.List)
			notes.GET("/:note_id", h.Note.Get)
			notes.PUT("/:note_id", h.Note.Update)
			notes.DELETE("/:note_id", h.Note.Delete)
		}
	}
}

// Health reports the state of the service's dependencies.
func (h *Handler) Health(c *gin.Context) {
	resp.Success(c.Writer, h.data.Health(c.Request.Context()))
}
