package resp

import (
	"encoding/json"
	"net/http"

	"github.com/ncobase/notes/ecode"
)

// Exception represents the response structure.
type Exception struct {
	Status  int    `json:"status,omitempty"`  // HTTP status
	Code    int    `json:"code,omitempty"`    // Business code
	Message string `json:"message,omitempty"` // Message
	Errors  any    `json:"errors,omitempty"`  // Validation errors
	Data    any    `json:"data,omitempty"`    // Response data
}

// Success handles success responses.
func Success(w http.ResponseWriter, data ...any) {
	WithStatusCode(w, http.StatusOK, data...)
}

// WithStatusCode handles success responses with custom status code.
// Bodiless statuses (204, 304) write the header only.
func WithStatusCode(w http.ResponseWriter, statusCode int, data ...any) {
	if statusCode == http.StatusNoContent || statusCode == http.StatusNotModified {
		w.WriteHeader(statusCode)
		return
	}

	var payload any
	if len(data) > 0 {
		payload = data[0]
	}
	if payload == nil {
		payload = map[string]any{"message": "ok"}
	}
	writeJSON(w, statusCode, payload)
}

// Fail handles failure responses.
func Fail(w http.ResponseWriter, r *Exception) {
	if r == nil {
		r = &Exception{
			Status:  http.StatusInternalServerError,
			Code:    ecode.ServerErr,
			Message: ecode.Text(ecode.ServerErr),
		}
	}

	status := r.Status
	if status == 0 {
		status = ecode.ToHTTPStatus(r.Code)
	}
	code := r.Code
	if code == 0 {
		code = ecode.RequestErr
	}
	message := r.Message
	if message == "" {
		message = ecode.Text(code)
	}

	writeJSON(w, status, &Exception{
		Code:    code,
		Message: message,
		Errors:  r.Errors,
	})
}

// BadRequest builds a client error exception.
func BadRequest(message string, errs ...any) *Exception {
	return failure(http.StatusBadRequest, ecode.RequestErr, message, errs...)
}

// NotFound builds a resource-not-found exception.
func NotFound(message string, errs ...any) *Exception {
	return failure(http.StatusNotFound, ecode.NothingFound, message, errs...)
}

// InternalServer builds a server error exception.
func InternalServer(message string, errs ...any) *Exception {
	return failure(http.StatusInternalServerError, ecode.ServerErr, message, errs...)
}

// ServiceUnavailable builds a retryable server error exception.
func ServiceUnavailable(message string, errs ...any) *Exception {
	return failure(http.StatusServiceUnavailable, ecode.ServiceUnavailable, message, errs...)
}

// WithCode builds an exception from a business code, deriving the HTTP
// status and default message from ecode.
func WithCode(code int, message string, errs ...any) *Exception {
	if message == "" {
		message = ecode.Text(code)
	}
	return failure(ecode.ToHTTPStatus(code), code, message, errs...)
}

func failure(status, code int, message string, errs ...any) *Exception {
	e := &Exception{
		Status:  status,
		Code:    code,
		Message: message,
	}
	if len(errs) > 0 {
		e.Errors = errs[0]
	}
	return e
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}
