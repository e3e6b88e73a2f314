package ctxutil

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey string

const (
	runIDKey    ctxKey = "run_id"
	languageKey ctxKey = "lang"
)

// WithRunID stores the conversion run ID in the context.
func WithRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromCtx extracts the run ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func RunIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(runIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithLanguage stores the target language code in the context.
func WithLanguage(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, languageKey, code)
}

// LanguageFromCtx extracts the target language code from the context.
// Returns an empty string if absent.
func LanguageFromCtx(ctx context.Context) string {
	code, _ := ctx.Value(languageKey).(string)
	return code
}

// Logger returns log annotated with the run ID and language found in ctx.
func Logger(ctx context.Context, log *slog.Logger) *slog.Logger {
	if id, ok := RunIDFromCtx(ctx); ok {
		log = log.With(slog.String("run_id", id.String()))
	}
	if code := LanguageFromCtx(ctx); code != "" {
		log = log.With(slog.String("lang", code))
	}
	return log
}
