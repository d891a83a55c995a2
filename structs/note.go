// Package structs defines the note entity and its request/response shapes.
package structs

import "time"

// Note is the persisted note entity.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateNoteRequest represents the request to create a note.
type CreateNoteRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Content string `json:"content" binding:"max=65535"`
}

// UpdateNoteRequest represents the request to update a note.
type UpdateNoteRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Content string `json:"content" binding:"max=65535"`
}

// NoteList is the paginated list envelope returned by the list endpoint.
type NoteList struct {
	Items      []*Note `json:"items"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}
