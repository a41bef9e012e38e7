// Command ducksort prints six ducks, sorts them by weight and then by name,
// and prints them again.
//
// Standard output carries only the twelve duck lines. Logging goes to
// standard error and is configured with LOG_LEVEL, LOG_JSON and LOG_OUTPUT.
package main

import (
	"context"
	"io"
	"os"

	"github.com/amp-labs/ducksort/build"
	"github.com/amp-labs/ducksort/flock"
	"github.com/amp-labs/ducksort/logger"
)

// buildInfo is set at link time:
//
//	go build -ldflags "-X main.buildInfo={\"version\":\"v1.0.0\"}" ./cmd/ducksort
var buildInfo string //nolint:gochecknoglobals

func main() {
	ctx := context.Background()

	logger.ConfigureLogging(ctx, "ducksort")
	logger.Get(ctx).Debug("starting", "build", build.Current(buildInfo))

	if err := run(ctx, os.Stdout); err != nil {
		logger.Fatal("ducksort failed", "error", err)
	}
}

// run writes straight to stdout. A buffer here would hold the duck lines
// back until exit, after every log record, when both streams share a terminal.
func run(ctx context.Context, stdout io.Writer) error {
	return flock.Run(ctx, stdout)
}
