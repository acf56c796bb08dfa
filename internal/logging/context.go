package logging

import (
	"context"
	"maps"
)

type contextKey string

const contextFieldsKey contextKey = "site.logging.fields"

// RequestIDField is the log field carrying the HTTP request id.
const RequestIDField = "request_id"

// ContextWithFields returns a context carrying structured logging fields that
// loggers merge into subsequent entries. Fields already on the context are
// kept unless overridden.
func ContextWithFields(ctx context.Context, fields map[string]any) context.Context {
	if ctx == nil || len(fields) == 0 {
		return ctx
	}

	merged := ContextFields(ctx)
	if merged == nil {
		merged = make(map[string]any, len(fields))
	}
	maps.Copy(merged, fields)
	return context.WithValue(ctx, contextFieldsKey, merged)
}

// ContextFields returns a copy of the logging fields stored on ctx.
func ContextFields(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	fields, ok := ctx.Value(contextFieldsKey).(map[string]any)
	if !ok || len(fields) == 0 {
		return nil
	}
	return maps.Clone(fields)
}

// ContextWithRequestID stores the request id as a logging field.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return ContextWithFields(ctx, map[string]any{RequestIDField: requestID})
}

// RequestIDFromContext returns the request id stored by ContextWithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ContextFields(ctx)[RequestIDField].(string); ok {
		return id
	}
	return ""
}
