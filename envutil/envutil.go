// Package envutil reads typed configuration from environment variables.
//
//	level := envutil.SlogLevel(ctx, "LOG_LEVEL", envutil.Default(slog.LevelInfo)).ValueOrFatal()
//
// Values can be overridden per context with WithEnvOverride, which is how
// tests configure code without touching the process environment.
package envutil

import (
	"context"
	"log/slog"
	"os"

	"github.com/amp-labs/ducksort/xform"
)

// get returns a Reader for the given key, preferring a context override
// over the process environment.
func get(ctx context.Context, key string) Reader[string] {
	if val, ok := getEnvOverride(ctx, key); ok {
		return Reader[string]{key: key, present: true, value: val}
	}

	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the raw value of key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool returns a Reader that parses key with strconv.ParseBool.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), xform.Bool), opts)
}

// SlogLevel returns a Reader that parses key as a log level. Surrounding
// whitespace and case are ignored.
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	rdr := Map(Map(Map(get(ctx, key), xform.TrimString), xform.ToLower), xform.SlogLevel)

	return apply(rdr, opts)
}
