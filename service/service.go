package service

import (
	"github.com/ncobase/notes/data"
	"github.com/ncobase/notes/data/repository"
	"github.com/ncobase/notes/logging/logger"
)

// Service aggregates all business services.
type Service struct {
	Note *NoteService
}

// New creates the service layer on top of the data layer.
func New(d *data.Data, cursorSecret string, log *logger.Logger) *Service {
	repo := repository.NewNoteRepository(d, log)
	return &Service{
		Note: NewNoteService(d, repo, cursorSecret, log),
	}
}
