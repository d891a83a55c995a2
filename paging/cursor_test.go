package paging

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCursorRoundTrip(t *testing.T) {
	codec := NewCodec("")
	cursors := []Cursor{
		{CreatedAt: time.UnixMicro(1700000000000000).UTC(), ID: "a1b2c3"},
		{CreatedAt: time.UnixMicro(1).UTC(), ID: "x"},
		{CreatedAt: time.Date(2031, 5, 4, 3, 2, 1, 987654000, time.UTC), ID: "note-with-dashes"},
	}

	for _, want := range cursors {
		token := codec.Encode(want)
		got, err := codec.Decode(token)
		if err != nil {
			t.Fatalf("Decode(%q): %v", token, err)
		}
		if !got.CreatedAt.Equal(want.CreatedAt) || got.ID != want.ID {
			t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
		}
	}
}

func TestCursorEpochTimestamp(t *testing.T) {
	codec := NewCodec("")

	// A row stamped exactly at the unix epoch is a legal position.
	want := Cursor{CreatedAt: time.UnixMicro(0).UTC(), ID: "epoch"}
	got, err := codec.Decode(codec.Encode(want))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) || got.ID != want.ID {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}

	// An explicit null timestamp is still absence.
	null := base64.RawURLEncoding.EncodeToString([]byte(`{"t":null,"id":"a"}`))
	if _, err := codec.Decode(null); !errors.Is(err, ErrInvalidCursor) {
		t.Errorf("Decode(null timestamp) = %v, want ErrInvalidCursor", err)
	}
}

func TestCursorEncodeDeterministic(t *testing.T) {
	codec := NewCodec("secret")
	cur := Cursor{CreatedAt: time.UnixMicro(1700000000000000), ID: "n1"}
	if a, b := codec.Encode(cur), codec.Encode(cur); a != b {
		t.Errorf("encoding is not deterministic: %q != %q", a, b)
	}
}

func TestCursorTokenIsURLSafe(t *testing.T) {
	codec := NewCodec("")
	token := codec.Encode(Cursor{CreatedAt: time.UnixMicro(1699999999999999), ID: "zz"})
	if strings.ContainsAny(token, "+/=\n") {
		t.Errorf("token contains URL-unsafe characters: %q", token)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	codec := NewCodec("")

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"whitespace", "   \t "},
		{"not base64", "!!!not-base64!!!"},
		{"base64 of non-json", base64.RawURLEncoding.EncodeToString([]byte("hello"))},
		{"json missing id", base64.RawURLEncoding.EncodeToString([]byte(`{"t":123}`))},
		{"json missing timestamp", base64.RawURLEncoding.EncodeToString([]byte(`{"id":"a"}`))},
		{"json unknown field", base64.RawURLEncoding.EncodeToString([]byte(`{"t":123,"id":"a","extra":1}`))},
		{"json mistyped field", base64.RawURLEncoding.EncodeToString([]byte(`{"t":"soon","id":"a"}`))},
		{"trailing data", base64.RawURLEncoding.EncodeToString([]byte(`{"t":123,"id":"a"}{"t":4}`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := codec.Decode(tt.token); !errors.Is(err, ErrInvalidCursor) {
				t.Errorf("Decode(%q) = %v, want ErrInvalidCursor", tt.token, err)
			}
		})
	}
}

func TestSignedCursorRejectsTampering(t *testing.T) {
	codec := NewCodec("super-secret")
	token := codec.Encode(Cursor{CreatedAt: time.UnixMicro(1700000000000000), ID: "n1"})

	if _, err := codec.Decode(token); err != nil {
		t.Fatalf("signed round trip failed: %v", err)
	}

	// Payload swapped for a forged position, original tag kept.
	_, tag, _ := strings.Cut(token, ".")
	forged := base64.RawURLEncoding.EncodeToString([]byte(`{"t":1,"id":"other"}`)) + "." + tag
	if _, err := codec.Decode(forged); !errors.Is(err, ErrInvalidCursor) {
		t.Errorf("forged payload accepted: %v", err)
	}

	// Unsigned token against a signing codec.
	unsigned := NewCodec("").Encode(Cursor{CreatedAt: time.UnixMicro(1), ID: "n2"})
	if _, err := codec.Decode(unsigned); !errors.Is(err, ErrInvalidCursor) {
		t.Errorf("unsigned token accepted by signing codec: %v", err)
	}
}
