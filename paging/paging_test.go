package paging

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"
)

type row struct {
	ID        string
	CreatedAt time.Time
}

func rowKey(r row) Cursor {
	return Cursor{CreatedAt: r.CreatedAt, ID: r.ID}
}

// memStore mimics a table ordered by (created_at desc, id asc) with a
// keyset range scan.
type memStore struct {
	rows []row
}

func (s *memStore) sortRows() {
	sort.Slice(s.rows, func(i, j int) bool {
		if !s.rows[i].CreatedAt.Equal(s.rows[j].CreatedAt) {
			return s.rows[i].CreatedAt.After(s.rows[j].CreatedAt)
		}
		return s.rows[i].ID < s.rows[j].ID
	})
}

func (s *memStore) fetch(_ context.Context, after *Cursor, fetchLimit int) ([]row, error) {
	s.sortRows()
	out := make([]row, 0, fetchLimit)
	for _, r := range s.rows {
		if after != nil {
			past := r.CreatedAt.Before(after.CreatedAt) ||
				(r.CreatedAt.Equal(after.CreatedAt) && r.ID > after.ID)
			if !past {
				continue
			}
		}
		out = append(out, r)
		if len(out) == fetchLimit {
			break
		}
	}
	return out, nil
}

func fiveRows() *memStore {
	base := time.UnixMicro(1700000000000000).UTC()
	return &memStore{rows: []row{
		{ID: "E", CreatedAt: base.Add(5 * time.Second)},
		{ID: "D", CreatedAt: base.Add(4 * time.Second)},
		{ID: "C", CreatedAt: base.Add(3 * time.Second)},
		{ID: "B", CreatedAt: base.Add(2 * time.Second)},
		{ID: "A", CreatedAt: base.Add(1 * time.Second)},
	}}
}

func ids(rows []row) string {
	s := ""
	for _, r := range rows {
		s += r.ID
	}
	return s
}

func TestPaginateFiveRowScenario(t *testing.T) {
	ctx := context.Background()
	codec := NewCodec("")
	store := fiveRows()

	page1, err := Paginate(ctx, codec, Params{Limit: 2}, store.fetch, rowKey)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if got := ids(page1.Items); got != "ED" {
		t.Fatalf("page 1 items = %q, want ED", got)
	}
	if !page1.HasMore || page1.NextCursor == nil {
		t.Fatalf("page 1 should have a next page, got hasMore=%v cursor=%v", page1.HasMore, page1.NextCursor)
	}
	cur, err := codec.Decode(*page1.NextCursor)
	if err != nil {
		t.Fatalf("decode page 1 cursor: %v", err)
	}
	if cur.ID != "D" {
		t.Errorf("page 1 cursor references %q, want D", cur.ID)
	}

	page2, err := Paginate(ctx, codec, Params{Cursor: *page1.NextCursor, Limit: 2}, store.fetch, rowKey)
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if got := ids(page2.Items); got != "CB" {
		t.Fatalf("page 2 items = %q, want CB", got)
	}
	if !page2.HasMore || page2.NextCursor == nil {
		t.Fatalf("page 2 should have a next page")
	}

	page3, err := Paginate(ctx, codec, Params{Cursor: *page2.NextCursor, Limit: 2}, store.fetch, rowKey)
	if err != nil {
		t.Fatalf("page 3: %v", err)
	}
	if got := ids(page3.Items); got != "A" {
		t.Fatalf("page 3 items = %q, want A", got)
	}
	if page3.HasMore || page3.NextCursor != nil {
		t.Errorf("page 3 must be the last page, got hasMore=%v cursor=%v", page3.HasMore, page3.NextCursor)
	}
}

func TestPaginateExactLimitBoundary(t *testing.T) {
	ctx := context.Background()
	codec := NewCodec("")

	// Exactly limit rows remain: no next page.
	store := fiveRows()
	page, err := Paginate(ctx, codec, Params{Limit: 5}, store.fetch, rowKey)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if len(page.Items) != 5 || page.HasMore || page.NextCursor != nil {
		t.Errorf("exact-limit page: items=%d hasMore=%v cursor=%v", len(page.Items), page.HasMore, page.NextCursor)
	}

	// limit+1 rows remain: next cursor references the limit-th row.
	page, err = Paginate(ctx, codec, Params{Limit: 4}, store.fetch, rowKey)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if len(page.Items) != 4 || !page.HasMore || page.NextCursor == nil {
		t.Fatalf("limit+1 page: items=%d hasMore=%v", len(page.Items), page.HasMore)
	}
	cur, err := codec.Decode(*page.NextCursor)
	if err != nil {
		t.Fatalf("decode cursor: %v", err)
	}
	if cur.ID != "B" {
		t.Errorf("next cursor references %q, want the 4th row B", cur.ID)
	}
}

func TestPaginateWalkIsExactlyOnceUnderMutation(t *testing.T) {
	ctx := context.Background()
	codec := NewCodec("")
	store := fiveRows()
	initial := map[string]bool{"A": true, "B": true, "C": true, "D": true, "E": true}

	seen := make(map[string]int)
	var order []string
	cursor := ""
	for i := 0; ; i++ {
		page, err := Paginate(ctx, codec, Params{Cursor: cursor, Limit: 2}, store.fetch, rowKey)
		if err != nil {
			t.Fatalf("walk step %d: %v", i, err)
		}
		for _, r := range page.Items {
			if initial[r.ID] {
				seen[r.ID]++
				order = append(order, r.ID)
			}
		}

		switch i {
		case 0:
			// A newer row lands ahead of every remaining page.
			store.rows = append(store.rows, row{ID: "F", CreatedAt: time.UnixMicro(1700000100000000)})
		case 1:
			// The cursor row itself is deleted between requests.
			cur, err := codec.Decode(cursor)
			if err != nil {
				t.Fatalf("decode walk cursor: %v", err)
			}
			for j, r := range store.rows {
				if r.ID == cur.ID {
					store.rows = append(store.rows[:j], store.rows[j+1:]...)
					break
				}
			}
		}

		if !page.HasMore {
			break
		}
		cursor = *page.NextCursor
		if i > 10 {
			t.Fatal("walk did not terminate")
		}
	}

	for id := range initial {
		if seen[id] != 1 {
			t.Errorf("row %s returned %d times, want exactly once", id, seen[id])
		}
	}
	want := "EDCBA"
	got := ""
	for _, id := range order {
		got += id
	}
	if got != want {
		t.Errorf("walk order = %q, want %q", got, want)
	}
}

func TestPaginateStrictLimitPolicy(t *testing.T) {
	ctx := context.Background()
	codec := NewCodec("")
	store := fiveRows()

	for _, limit := range []int{0, -1, MaxLimit + 1} {
		if _, err := Paginate(ctx, codec, Params{Limit: limit}, store.fetch, rowKey); !errors.Is(err, ErrInvalidLimit) {
			t.Errorf("limit %d: got %v, want ErrInvalidLimit", limit, err)
		}
	}
}

func TestPaginateBlankCursorIsFirstPage(t *testing.T) {
	ctx := context.Background()
	codec := NewCodec("")
	store := fiveRows()

	for _, cursor := range []string{"", "   "} {
		page, err := Paginate(ctx, codec, Params{Cursor: cursor, Limit: 3}, store.fetch, rowKey)
		if err != nil {
			t.Fatalf("blank cursor %q: %v", cursor, err)
		}
		if got := ids(page.Items); got != "EDC" {
			t.Errorf("blank cursor %q items = %q, want EDC", cursor, got)
		}
	}

	if _, err := Paginate(ctx, codec, Params{Cursor: "@@broken@@", Limit: 3}, store.fetch, rowKey); !errors.Is(err, ErrInvalidCursor) {
		t.Errorf("malformed cursor: got %v, want ErrInvalidCursor", err)
	}
}

func TestPaginateEmptyResult(t *testing.T) {
	ctx := context.Background()
	codec := NewCodec("")
	store := &memStore{}

	page, err := Paginate(ctx, codec, Params{Limit: 10}, store.fetch, rowKey)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if page.Items == nil || len(page.Items) != 0 {
		t.Errorf("empty page items = %#v, want empty non-nil slice", page.Items)
	}
	if page.HasMore || page.NextCursor != nil {
		t.Errorf("empty page must not advertise more results")
	}
}

func TestPaginateStorageErrorPropagates(t *testing.T) {
	ctx := context.Background()
	codec := NewCodec("")
	boom := fmt.Errorf("connection refused")

	fetch := func(context.Context, *Cursor, int) ([]row, error) { return nil, boom }
	page, err := Paginate(ctx, codec, Params{Limit: 5}, fetch, rowKey)
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want wrapped storage error", err)
	}
	if page != nil {
		t.Errorf("no partial page may accompany an error, got %+v", page)
	}
}
