package paging

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidCursor is returned when a non-empty cursor token fails
// structural decoding or signature verification.
var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor pins a position in the (created_at desc, id asc) ordering.
// It is only ever constructed from a row that was returned to a client.
type Cursor struct {
	CreatedAt time.Time
	ID        string
}

// cursorPayload is the wire form of a cursor. The timestamp travels as
// unix microseconds so encode/decode round-trips are exact. It is a
// pointer so absence is distinguishable from an epoch-exact timestamp.
type cursorPayload struct {
	CreatedAt *int64 `json:"t"`
	ID        string `json:"id"`
}

// Codec encodes cursors into opaque URL-safe tokens and back.
// With a non-empty secret, tokens carry an HMAC-SHA256 tag and decoding
// rejects tokens whose tag is missing or does not verify.
type Codec struct {
	secret []byte
}

// NewCodec creates a cursor codec. An empty secret disables signing.
func NewCodec(secret string) *Codec {
	c := &Codec{}
	if secret != "" {
		c.secret = []byte(secret)
	}
	return c
}

// Encode serializes a cursor to an opaque token.
func (c *Codec) Encode(cur Cursor) string {
	micros := cur.CreatedAt.UnixMicro()
	payload, _ := json.Marshal(cursorPayload{
		CreatedAt: &micros,
		ID:        cur.ID,
	})
	token := base64.RawURLEncoding.EncodeToString(payload)
	if c.secret == nil {
		return token
	}
	return token + "." + c.sign(token)
}

// Decode reverses Encode. Empty or whitespace-only input is rejected;
// callers treat an absent cursor parameter as "first page" and must not
// reach Decode with it.
func (c *Codec) Decode(token string) (Cursor, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Cursor{}, fmt.Errorf("%w: empty token", ErrInvalidCursor)
	}

	if c.secret != nil {
		payload, tag, ok := strings.Cut(token, ".")
		if !ok {
			return Cursor{}, fmt.Errorf("%w: missing signature", ErrInvalidCursor)
		}
		if !hmac.Equal([]byte(tag), []byte(c.sign(payload))) {
			return Cursor{}, fmt.Errorf("%w: signature mismatch", ErrInvalidCursor)
		}
		token = payload
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	var payload cursorPayload
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return Cursor{}, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	if dec.More() {
		return Cursor{}, fmt.Errorf("%w: trailing data", ErrInvalidCursor)
	}
	if payload.CreatedAt == nil || payload.ID == "" {
		return Cursor{}, fmt.Errorf("%w: missing fields", ErrInvalidCursor)
	}

	return Cursor{
		CreatedAt: time.UnixMicro(*payload.CreatedAt).UTC(),
		ID:        payload.ID,
	}, nil
}

func (c *Codec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
