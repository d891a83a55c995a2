// Package ctxutil carries request-scoped values, currently the trace ID
// attached to every log line and response header.
package ctxutil

import (
	"context"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

type contextKey string

const traceIDKey contextKey = "trace_id"

// TraceIDHeader is the HTTP header the trace ID travels in.
const TraceIDHeader = "X-Trace-Id"

const traceIDSize = 16

// GetTraceID gets the trace ID from the context.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// SetTraceID sets a trace ID on the context.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// EnsureTraceID returns the existing trace ID or generates one.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	if traceID := GetTraceID(ctx); traceID != "" {
		return ctx, traceID
	}
	traceID := gonanoid.Must(traceIDSize)
	return SetTraceID(ctx, traceID), traceID
}
