package paging

import (
	"context"
	"fmt"
	"strings"
)

const (
	// DefaultLimit is applied by the transport layer when the client
	// sends no limit at all.
	DefaultLimit = 20
	// MaxLimit bounds the page size a client may request.
	MaxLimit = 100
)

// ErrInvalidLimit is returned for an explicit page size outside [1, MaxLimit].
// The policy is strict: out-of-bounds limits are rejected, never clamped.
var ErrInvalidLimit = fmt.Errorf("limit must be between 1 and %d", MaxLimit)

// Params holds the pagination parameters of one list request.
type Params struct {
	Cursor string `json:"cursor"`
	Limit  int    `json:"limit"`
}

// Validate enforces the strict page size policy.
func (p Params) Validate() error {
	if p.Limit < 1 || p.Limit > MaxLimit {
		return ErrInvalidLimit
	}
	return nil
}

// Result holds one page of items. NextCursor is nil when no further
// page exists.
type Result[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}

// FetchFunc loads up to fetchLimit rows strictly past the cursor key in
// the established order, or from the start when after is nil. A single
// call must be observed at one consistent snapshot.
type FetchFunc[T any] func(ctx context.Context, after *Cursor, fetchLimit int) ([]T, error)

// KeyFunc extracts the sort key of a returned row.
type KeyFunc[T any] func(item T) Cursor

// Paginate runs one stateless pagination step: decode the incoming
// cursor, fetch limit+1 rows as a single range scan, drop the probe row
// and derive the outgoing cursor from the last row kept.
//
// A blank cursor means first page. A malformed cursor aborts before any
// fetch. Storage errors propagate unchanged; no partial page is returned
// alongside an error.
func Paginate[T any](ctx context.Context, codec *Codec, params Params, fetch FetchFunc[T], key KeyFunc[T]) (*Result[T], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var after *Cursor
	if strings.TrimSpace(params.Cursor) != "" {
		cur, err := codec.Decode(params.Cursor)
		if err != nil {
			return nil, err
		}
		after = &cur
	}

	items, err := fetch(ctx, after, params.Limit+1)
	if err != nil {
		return nil, err
	}

	hasMore := len(items) > params.Limit
	if hasMore {
		items = items[:params.Limit]
	}
	if items == nil {
		items = make([]T, 0)
	}

	result := &Result[T]{
		Items:   items,
		HasMore: hasMore,
	}
	if hasMore {
		token := codec.Encode(key(items[len(items)-1]))
		result.NextCursor = &token
	}
	return result, nil
}
