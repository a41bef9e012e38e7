package logger

import (
	"context"
	"log/slog"
	"time"
)

// AnnotateError wraps an error with slog key-value pairs. When the returned
// error is logged as an attribute through a handler installed by
// ConfigureLoggingWithOptions, the pairs are lifted into the log record.
//
//	return logger.AnnotateError(err, "index", i, "duck", d.Name())
//
// Returns nil if err is nil. The annotation is transparent to errors.Is and
// errors.As.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	var errAttrs []slog.Attr

	r.Attrs(func(attr slog.Attr) bool {
		errAttrs = append(errAttrs, attr)

		return true
	})

	return &slogError{
		err:   err,
		attrs: errAttrs,
	}
}

type slogError struct {
	err   error
	attrs []slog.Attr
}

func (s *slogError) Error() string {
	return s.err.Error()
}

func (s *slogError) Unwrap() error {
	return s.err
}

var _ error = (*slogError)(nil)

// ErrorAttrs returns every attribute attached by AnnotateError anywhere in
// err's chain, including the branches of a joined error.
func ErrorAttrs(err error) []slog.Attr {
	if err == nil {
		return nil
	}

	var attrs []slog.Attr

	if se, ok := err.(*slogError); ok { //nolint:errorlint
		attrs = append(attrs, se.attrs...)
	}

	switch e := err.(type) { //nolint:errorlint
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			attrs = append(attrs, ErrorAttrs(inner)...)
		}
	case interface{ Unwrap() error }:
		attrs = append(attrs, ErrorAttrs(e.Unwrap())...)
	}

	return attrs
}

// errorAttrHandler decorates another handler, expanding annotated errors
// into their attributes. Attributes that are not annotated pass through.
type errorAttrHandler struct {
	inner slog.Handler
}

var _ slog.Handler = (*errorAttrHandler)(nil)

func (s *errorAttrHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return s.inner.Enabled(ctx, level)
}

func (s *errorAttrHandler) Handle(ctx context.Context, record slog.Record) error {
	var (
		baseAttrs []slog.Attr
		errAttrs  []slog.Attr
	)

	record.Attrs(func(attr slog.Attr) bool {
		baseAttrs = append(baseAttrs, attr)

		if err, ok := attr.Value.Any().(error); ok {
			errAttrs = append(errAttrs, ErrorAttrs(err)...)
		}

		return true
	})

	if len(errAttrs) == 0 {
		return s.inner.Handle(ctx, record)
	}

	r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	r.AddAttrs(baseAttrs...)
	r.AddAttrs(errAttrs...)

	return s.inner.Handle(ctx, r)
}

func (s *errorAttrHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &errorAttrHandler{inner: s.inner.WithAttrs(attrs)}
}

func (s *errorAttrHandler) WithGroup(name string) slog.Handler {
	return &errorAttrHandler{inner: s.inner.WithGroup(name)}
}
