package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// StackHandler is a slog handler that extracts the stack trace carried by a
// cockroachdb/errors value logged under ErrAttrKey and re-emits it as a
// separate attribute.
type StackHandler struct {
	handler slog.Handler
}

// WrapByStackHandler wraps a standard slog handler so records carrying an
// error attribute also emit a stacktrace attribute.
func WrapByStackHandler(handler slog.Handler) slog.Handler {
	return &StackHandler{handler: handler}
}

func (sh *StackHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return sh.handler.Enabled(ctx, l)
}

func (sh *StackHandler) Handle(ctx context.Context, r slog.Record) error {
	var stacktrace string
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key == ErrAttrKey {
			err, ok := attr.Value.Any().(error)
			if ok {
				stacktrace = extractStacktrace(err)
			}
			return false
		}
		return true
	})
	if stacktrace != "" {
		r.AddAttrs(slog.String(StacktraceAttrKey, stacktrace))
	}
	return sh.handler.Handle(ctx, r)
}

func (sh *StackHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &StackHandler{handler: sh.handler.WithAttrs(attrs)}
}

func (sh *StackHandler) WithGroup(g string) slog.Handler {
	return &StackHandler{handler: sh.handler.WithGroup(g)}
}

func extractStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}
