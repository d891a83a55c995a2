// Package paging provides keyset (cursor) pagination for list endpoints
// backed by an ordered composite index.
//
// A cursor names the sort key (created_at desc, id asc) of the last row
// returned to a client, encoded as an opaque URL-safe token. Each request
// independently re-establishes its position from that token; there is no
// server-side iterator state. The planner always fetches limit+1 rows so
// the extra probe row answers "is there another page" without a count
// query, and the next cursor is derived from the last row actually
// returned.
//
// Filtering by "strictly past the last seen key" instead of skipping N
// rows keeps every page an index-backed O(limit) range scan and stays
// correct under concurrent inserts and deletes, including deletion of
// the cursor row itself.
//
// Basic usage:
//
//	codec := paging.NewCodec(cfg.Secret)
//	page, err := paging.Paginate(ctx, codec, paging.Params{Cursor: token, Limit: 20},
//	    repo.List, func(n *structs.Note) paging.Cursor {
//	        return paging.Cursor{CreatedAt: n.CreatedAt, ID: n.ID}
//	    })
//
// Tokens are opaque to clients. With a configured secret they carry an
// HMAC-SHA256 tag, so clients cannot construct arbitrary seek positions.
package paging
