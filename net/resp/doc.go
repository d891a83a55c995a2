// Package resp provides standardized HTTP response helpers for building
// consistent JSON responses.
//
// All failure responses follow a standard structure:
//
//	{
//	  "code": -400,            // Business error code (0 = success)
//	  "message": "...",        // Human-readable message
//	  "errors": {...}          // Error details, e.g. field validation
//	}
//
// Success responses carry the payload directly:
//
//	resp.Success(w, page)
//	resp.WithStatusCode(w, http.StatusCreated, note)
//
// Failure responses are built from exceptions:
//
//	resp.Fail(w, resp.NotFound("note does not exist"))
//	resp.Fail(w, resp.WithCode(ecode.InvalidCursor, ""))
package resp
