package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError attaches slog key-value pairs to err. The message and the error chain
// are unchanged (errors.Is / errors.As see through the annotation); a handler built
// with NewErrorHandler adds the attributes to any record that logs the error.
//
//	return AnnotateError(err, "variable", name, "actual", actual)
//
// Returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	attrs := make([]slog.Attr, 0, r.NumAttrs())

	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)

		return true
	})

	return &slogError{
		err:   err,
		attrs: attrs,
	}
}

// ErrorAttrs returns the attributes attached to err (or to any annotated error in its
// chain) by AnnotateError, outermost first.
func ErrorAttrs(err error) []slog.Attr {
	var attrs []slog.Attr

	for err != nil {
		var se *slogError
		if !errors.As(err, &se) {
			break
		}

		attrs = append(attrs, se.attrs...)
		err = se.err
	}

	return attrs
}

// slogError wraps an error with structured logging attributes.
type slogError struct {
	err   error
	attrs []slog.Attr
}

var _ error = (*slogError)(nil)

func (s *slogError) Error() string {
	return s.err.Error()
}

func (s *slogError) Unwrap() error {
	return s.err
}

// NewErrorHandler decorates inner so that error attributes created by AnnotateError
// are logged together with the attributes they carry.
func NewErrorHandler(inner slog.Handler) slog.Handler {
	return &slogErrorLogger{inner: inner}
}

type slogErrorLogger struct {
	inner slog.Handler
}

var _ slog.Handler = (*slogErrorLogger)(nil)

func (s *slogErrorLogger) Enabled(ctx context.Context, level slog.Level) bool {
	return s.inner.Enabled(ctx, level)
}

// Handle appends the attributes carried by annotated errors to the record. The error
// attribute itself is logged as is, since annotation does not change its message.
// Records without annotated errors pass through.
func (s *slogErrorLogger) Handle(ctx context.Context, record slog.Record) error {
	var errAttrs []slog.Attr

	record.Attrs(func(attr slog.Attr) bool {
		if err, ok := attr.Value.Any().(error); ok {
			errAttrs = append(errAttrs, ErrorAttrs(err)...)
		}

		return true
	})

	if len(errAttrs) == 0 {
		return s.inner.Handle(ctx, record)
	}

	r := record.Clone()
	r.AddAttrs(errAttrs...)

	return s.inner.Handle(ctx, r)
}

func (s *slogErrorLogger) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithAttrs(attrs)}
}

func (s *slogErrorLogger) WithGroup(name string) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithGroup(name)}
}
