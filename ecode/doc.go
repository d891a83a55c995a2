// Package ecode defines the business error codes carried in API
// responses, their human-readable messages, and their mapping to HTTP
// statuses.
//
// Codes follow the house numbering scheme: 0 is success, negated
// HTTP-like codes mirror their status counterparts (-400, -404, -500),
// and codes below -1000 are application specific (pagination).
//
//	resp.Fail(w, &resp.Exception{
//	    Status:  ecode.ToHTTPStatus(ecode.InvalidCursor),
//	    Code:    ecode.InvalidCursor,
//	    Message: ecode.Text(ecode.InvalidCursor),
//	})
package ecode
