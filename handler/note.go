package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ncobase/notes/data"
	"github.com/ncobase/notes/data/repository"
	"github.com/ncobase/notes/ecode"
	"github.com/ncobase/notes/logging/logger"
	"github.com/ncobase/notes/net/resp"
	"github.com/ncobase/notes/paging"
	"github.com/ncobase/notes/service"
	"github.com/ncobase/notes/structs"
	"github.com/ncobase/notes/validator"
)

// NoteHandler handles HTTP requests for notes.
type NoteHandler struct {
	svc    *service.NoteService
	logger *logger.Logger
}

// NewNoteHandler creates a new note handler.
func NewNoteHandler(svc *service.NoteService, logger *logger.Logger) *NoteHandler {
	return &NoteHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles note creation.
func (h *NoteHandler) Create(c *gin.Context) {
	var req structs.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn(c.Request.Context(), "invalid request", "error", err)
		resp.Fail(c.Writer, resp.BadRequest("invalid request body", validator.FieldMessages(&req, err)))
		return
	}

	note, err := h.svc.CreateNote(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err, "failed to create note")
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, note)
}

// Get handles note retrieval by ID.
func (h *NoteHandler) Get(c *gin.Context) {
	id := c.Param("note_id")
	note, err := h.svc.GetNote(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to get note")
		return
	}
	resp.Success(c.Writer, note)
}

// List handles paginated note listing. The cursor selects the position
// to resume from; an absent limit falls back to the default page size,
// while an explicit limit is validated strictly and never clamped.
func (h *NoteHandler) List(c *gin.Context) {
	params := paging.Params{
		Cursor: c.Query("cursor"),
		Limit:  paging.DefaultLimit,
	}
	if raw, ok := c.GetQuery("limit"); ok {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			resp.Fail(c.Writer, resp.WithCode(ecode.InvalidPageSize, ""))
			return
		}
		params.Limit = limit
	}

	page, err := h.svc.ListNotes(c.Request.Context(), params)
	if err != nil {
		h.fail(c, err, "failed to list notes")
		return
	}
	resp.Success(c.Writer, page)
}

// Update handles note updates.
func (h *NoteHandler) Update(c *gin.Context) {
	id := c.Param("note_id")

	var req structs.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn(c.Request.Context(), "invalid request", "error", err)
		resp.Fail(c.Writer, resp.BadRequest("invalid request body", validator.FieldMessages(&req, err)))
		return
	}

	note, err := h.svc.UpdateNote(c.Request.Context(), id, &req)
	if err != nil {
		h.fail(c, err, "failed to update note")
		return
	}
	resp.Success(c.Writer, note)
}

// Delete handles note deletion.
func (h *NoteHandler) Delete(c *gin.Context) {
	id := c.Param("note_id")
	if err := h.svc.DeleteNote(c.Request.Context(), id); err != nil {
		h.fail(c, err, "failed to delete note")
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusNoContent)
}

// fail maps service errors onto the response envelope. Cursor and page
// size violations are client errors with their own business codes, an
// open breaker answers 503, anything unrecognized is a 500.
func (h *NoteHandler) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, paging.ErrInvalidCursor):
		resp.Fail(c.Writer, resp.WithCode(ecode.InvalidCursor, ""))
	case errors.Is(err, paging.ErrInvalidLimit):
		resp.Fail(c.Writer, resp.WithCode(ecode.InvalidPageSize, err.Error()))
	case errors.Is(err, repository.ErrNoteNotFound):
		resp.Fail(c.Writer, resp.NotFound("note not found"))
	case errors.Is(err, data.ErrStorageUnavailable):
		resp.Fail(c.Writer, resp.ServiceUnavailable("storage temporarily unavailable"))
	default:
		h.logger.Error(c.Request.Context(), msg, "error", err)
		resp.Fail(c.Writer, resp.InternalServer(msg))
	}
}
