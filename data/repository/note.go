// Package repository provides note persistence over database/sql.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ncobase/notes/data"
	"github.com/ncobase/notes/logging/logger"
	"github.com/ncobase/notes/paging"
	"github.com/ncobase/notes/structs"
)

// ErrNoteNotFound is returned when no note exists for the given ID.
var ErrNoteNotFound = errors.New("note not found")

const noteColumns = "id, title, content, slug, created_at, updated_at"

// NoteRepository defines the interface for note data operations.
type NoteRepository interface {
	Create(ctx context.Context, n *structs.Note) (*structs.Note, error)
	GetByID(ctx context.Context, id string) (*structs.Note, error)
	Update(ctx context.Context, n *structs.Note) (*structs.Note, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, after *paging.Cursor, limit int) ([]*structs.Note, error)
	Count(ctx context.Context) (int, error)
}

type noteRepository struct {
	data   *data.Data
	logger *logger.Logger
}

// NewNoteRepository creates a new note repository instance.
func NewNoteRepository(d *data.Data, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		data:   d,
		logger: logger,
	}
}

// Create inserts a new note.
func (r *noteRepository) Create(ctx context.Context, n *structs.Note) (*structs.Note, error) {
	query := r.rebind(`INSERT INTO notes (id, title, content, slug, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`)

	err := r.data.Guard(func() error {
		_, err := r.data.DB().ExecContext(ctx, query,
			n.ID, n.Title, n.Content, n.Slug,
			n.CreatedAt.UnixMicro(), n.UpdatedAt.UnixMicro())
		return err
	})
	if err != nil {
		r.logger.Error(ctx, "failed to create note", "error", err)
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	r.logger.Info(ctx, "note created", "id", n.ID)
	return n, nil
}

// GetByID retrieves a note by ID.
func (r *noteRepository) GetByID(ctx context.Context, id string) (*structs.Note, error) {
	query := r.rebind("SELECT " + noteColumns + " FROM notes WHERE id = ?")

	// A missing row is an answer, not a storage failure; it must not
	// feed the circuit breaker.
	var n *structs.Note
	err := r.data.Guard(func() error {
		row := r.data.DB().QueryRowContext(ctx, query, id)
		got, err := scanNote(row)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		n = got
		return nil
	})
	if err != nil {
		r.logger.Error(ctx, "failed to get note", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if n == nil {
		return nil, ErrNoteNotFound
	}

	return n, nil
}

// Update rewrites the mutable fields of an existing note.
func (r *noteRepository) Update(ctx context.Context, n *structs.Note) (*structs.Note, error) {
	query := r.rebind(`UPDATE notes SET title = ?, content = ?, slug = ?, updated_at = ?
		WHERE id = ?`)

	var affected int64
	err := r.data.Guard(func() error {
		res, err := r.data.DB().ExecContext(ctx, query,
			n.Title, n.Content, n.Slug, n.UpdatedAt.UnixMicro(), n.ID)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		r.logger.Error(ctx, "failed to update note", "id", n.ID, "error", err)
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	if affected == 0 {
		return nil, ErrNoteNotFound
	}

	r.logger.Info(ctx, "note updated", "id", n.ID)
	return n, nil
}

// Delete removes a note by ID.
func (r *noteRepository) Delete(ctx context.Context, id string) error {
	query := r.rebind("DELETE FROM notes WHERE id = ?")

	var affected int64
	err := r.data.Guard(func() error {
		res, err := r.data.DB().ExecContext(ctx, query, id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		r.logger.Error(ctx, "failed to delete note", "id", id, "error", err)
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	r.logger.Info(ctx, "note deleted", "id", id)
	return nil
}

// List scans notes in (created_at desc, id asc) order, resuming strictly
// after the cursor position when one is given.
//
// The seek predicate is kept in decomposed form rather than a row-value
// comparison so every supported engine can satisfy it from the
// (created_at desc, id asc) index with a single range scan. Rows are
// filtered by position, never by offset, so the page boundary holds even
// when earlier rows have been inserted or deleted since the cursor was
// issued.
func (r *noteRepository) List(ctx context.Context, after *paging.Cursor, limit int) ([]*structs.Note, error) {
	var (
		query string
		args  []any
	)
	if after == nil {
		query = r.rebind("SELECT " + noteColumns + ` FROM notes
			ORDER BY created_at DESC, id ASC
			LIMIT ?`)
		args = []any{limit}
	} else {
		ts := after.CreatedAt.UnixMicro()
		query = r.rebind("SELECT " + noteColumns + ` FROM notes
			WHERE created_at < ? OR (created_at = ? AND id > ?)
			ORDER BY created_at DESC, id ASC
			LIMIT ?`)
		args = []any{ts, ts, after.ID, limit}
	}

	var notes []*structs.Note
	err := r.data.Guard(func() error {
		rows, err := r.data.DB().QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		notes = notes[:0]
		for rows.Next() {
			n, err := scanNote(rows)
			if err != nil {
				return err
			}
			notes = append(notes, n)
		}
		return rows.Err()
	})
	if err != nil {
		r.logger.Error(ctx, "failed to list notes", "error", err)
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return notes, nil
}

// Count returns the total number of notes.
func (r *noteRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.data.Guard(func() error {
		return r.data.DB().QueryRowContext(ctx, "SELECT COUNT(*) FROM notes").Scan(&count)
	})
	if err != nil {
		r.logger.Error(ctx, "failed to count notes", "error", err)
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}
	return count, nil
}

// rebind converts ? placeholders to the $n form postgres expects.
func (r *noteRepository) rebind(query string) string {
	if r.data.DriverName() != "postgres" {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*structs.Note, error) {
	var (
		n                    structs.Note
		createdAt, updatedAt int64
	)
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.Slug, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	n.CreatedAt = time.UnixMicro(createdAt).UTC()
	n.UpdatedAt = time.UnixMicro(updatedAt).UTC()
	return &n, nil
}
