package mailer

import (
	"context"
	"log/slog"
)

type dispatchIDKey struct{}

// WithDispatchID stores the identifier of one send attempt in ctx.
func WithDispatchID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, dispatchIDKey{}, id)
}

// DispatchID returns the identifier stored by WithDispatchID.
func DispatchID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(dispatchIDKey{}).(string)
	return id, ok && id != ""
}

// LogDispatchID is a logger context extractor adding dispatch_id to log records.
func LogDispatchID(ctx context.Context) (slog.Attr, bool) {
	if id, ok := DispatchID(ctx); ok {
		return slog.String("dispatch_id", id), true
	}
	return slog.Attr{}, false
}
