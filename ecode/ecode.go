package ecode

import "net/http"

// Common business codes. 0 is success; the negated HTTP-like codes
// mirror their status counterparts. Pagination-specific codes use the
// application range below -1000.
const (
	OK = 0

	RequestErr = -400
	ParamErr   = -401

	NothingFound = -404
	Conflict     = -409

	ServerErr          = -500
	ServiceUnavailable = -503

	InvalidCursor   = -1001
	InvalidPageSize = -1002
)

var messages = map[int]string{
	OK:                 "success",
	RequestErr:         "invalid request",
	ParamErr:           "invalid parameters",
	NothingFound:       "resource not found",
	Conflict:           "resource conflict",
	ServerErr:          "internal server error",
	ServiceUnavailable: "service unavailable",
	InvalidCursor:      "invalid pagination cursor",
	InvalidPageSize:    "invalid page size",
}

// Text returns the human-readable message for a code.
func Text(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[ServerErr]
}

// ToHTTPStatus maps a business code to an HTTP status.
func ToHTTPStatus(code int) int {
	switch code {
	case OK:
		return http.StatusOK
	case RequestErr, ParamErr, InvalidCursor, InvalidPageSize:
		return http.StatusBadRequest
	case NothingFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case ServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
