// Package service holds the note business logic between the HTTP layer
// and the repositories.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/ncobase/notes/cache"
	"github.com/ncobase/notes/data"
	"github.com/ncobase/notes/data/repository"
	"github.com/ncobase/notes/logging/logger"
	"github.com/ncobase/notes/paging"
	"github.com/ncobase/notes/structs"
)

const noteCacheTTL = 5 * time.Minute

// NoteService handles note-related business logic.
type NoteService struct {
	repo   repository.NoteRepository
	codec  *paging.Codec
	cache  *cache.Cache[structs.Note]
	logger *logger.Logger
}

// NewNoteService creates a new note service. The cursor secret enables
// HMAC signing of page tokens when non-empty.
func NewNoteService(d *data.Data, repo repository.NoteRepository, cursorSecret string, log *logger.Logger) *NoteService {
	return &NoteService{
		repo:   repo,
		codec:  paging.NewCodec(cursorSecret),
		cache:  cache.NewCache[structs.Note](d.Redis(), "notes:note", noteCacheTTL),
		logger: log,
	}
}

// CreateNote creates a new note with a generated ID and slug.
func (s *NoteService) CreateNote(ctx context.Context, req *structs.CreateNoteRequest) (*structs.Note, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	n := &structs.Note{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Content:   req.Content,
		Slug:      slug.Make(req.Title),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.repo.Create(ctx, n)
}

// GetNote retrieves a note by ID, reading through the cache.
func (s *NoteService) GetNote(ctx context.Context, id string) (*structs.Note, error) {
	if cached, _ := s.cache.Get(ctx, id); cached != nil {
		return cached, nil
	}

	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, id, n); err != nil {
		s.logger.Warn(ctx, "failed to cache note", "id", id, "error", err)
	}
	return n, nil
}

// ListNotes returns one page of notes, newest first.
func (s *NoteService) ListNotes(ctx context.Context, params paging.Params) (*structs.NoteList, error) {
	result, err := paging.Paginate(ctx, s.codec, params,
		func(ctx context.Context, after *paging.Cursor, fetchLimit int) ([]*structs.Note, error) {
			return s.repo.List(ctx, after, fetchLimit)
		},
		func(n *structs.Note) paging.Cursor {
			return paging.Cursor{CreatedAt: n.CreatedAt, ID: n.ID}
		})
	if err != nil {
		return nil, err
	}
	return &structs.NoteList{
		Items:      result.Items,
		NextCursor: result.NextCursor,
		HasMore:    result.HasMore,
	}, nil
}

// UpdateNote rewrites the title and content of an existing note. The
// slug follows the new title; creation time never changes.
func (s *NoteService) UpdateNote(ctx context.Context, id string, req *structs.UpdateNoteRequest) (*structs.Note, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = req.Title
	existing.Content = req.Content
	existing.Slug = slug.Make(req.Title)
	existing.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.logger.Warn(ctx, "failed to invalidate note cache", "id", id, "error", err)
	}
	return updated, nil
}

// DeleteNote removes a note by ID.
func (s *NoteService) DeleteNote(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.logger.Warn(ctx, "failed to invalidate note cache", "id", id, "error", err)
	}
	return nil
}
