package resp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ncobase/notes/ecode"
)

func TestSuccessWritesPayload(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, map[string]string{"id": "n1"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Content-Type"); !strings.HasPrefix(got, "application/json") {
		t.Fatalf("Content-Type = %q", got)
	}
	if !strings.Contains(w.Body.String(), `"id":"n1"`) {
		t.Fatalf("body = %q", w.Body.String())
	}
}

func TestWithStatusCodeBodilessStatuses(t *testing.T) {
	for _, status := range []int{http.StatusNoContent, http.StatusNotModified} {
		w := httptest.NewRecorder()
		WithStatusCode(w, status)

		if w.Code != status {
			t.Fatalf("status = %d, want %d", w.Code, status)
		}
		if w.Body.Len() != 0 {
			t.Fatalf("status %d carried a body: %q", status, w.Body.String())
		}
		if got := w.Header().Get("Content-Type"); got != "" {
			t.Fatalf("status %d set Content-Type %q", status, got)
		}
	}
}

func TestFailDerivesDefaults(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, WithCode(ecode.InvalidCursor, ""))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"code":-1001`) || !strings.Contains(body, ecode.Text(ecode.InvalidCursor)) {
		t.Fatalf("body = %q", body)
	}
}
