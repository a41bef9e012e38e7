// Package flock holds a sequence of ducks and the driver that displays,
// sorts and displays them again.
package flock

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/amp-labs/ducksort/duck"
	commonErrors "github.com/amp-labs/ducksort/errors"
	"github.com/amp-labs/ducksort/logger"
	"github.com/amp-labs/ducksort/sortable"
)

// ErrInvalidFlock is returned when one or more ducks fail validation.
var ErrInvalidFlock = errors.New("invalid flock")

// Flock is an ordered sequence of ducks. It owns its elements; Sort
// reorders it in place without adding or removing any.
type Flock []duck.Duck

// sorter is shared by every flock so its metrics accumulate per process.
var sorter = sortable.NewSorter[duck.Duck]("flock") //nolint:gochecknoglobals

// Default returns a new flock of the six reference ducks, in their original
// order. Each call returns an independent slice.
func Default() Flock {
	return Flock{
		duck.New("Daffy", 8),
		duck.New("Dewey", 2),
		duck.New("Howard", 7),
		duck.New("Louie", 2),
		duck.New("Donald", 10),
		duck.New("Huey", 2),
	}
}

// Display writes one line per duck, in sequence order.
func Display(w io.Writer, f Flock) error {
	for _, d := range f {
		if _, err := fmt.Fprintln(w, d); err != nil {
			return fmt.Errorf("displaying duck %q: %w", d.Name(), err)
		}
	}

	return nil
}

// Sort orders f in place by ascending weight, then name.
func Sort(ctx context.Context, f Flock) {
	n := sorter.Sort(f)

	logger.Get(ctx).Debug("sorted flock", "ducks", len(f), "comparisons", n)
}

// IsSorted reports whether f is in ascending order.
func IsSorted(f Flock) bool {
	return sortable.IsSorted(f)
}

// Validate checks every duck and reports all failures at once. Each failure
// is annotated with the duck's position for logging.
func Validate(f Flock) error {
	var errs commonErrors.Collection

	for i, d := range f {
		errs.Add(logger.AnnotateError(d.Validate(), "index", i))
	}

	if !errs.HasError() {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidFlock, errs.GetError())
}

// Run displays the default flock, sorts it and displays it again. Exactly
// twelve lines are written to w; the before/after markers go to the log.
func Run(ctx context.Context, w io.Writer) error {
	f := Default()

	logger.Get(ctx).Info("Before sorting")

	if err := Display(w, f); err != nil {
		return err
	}

	Sort(ctx, f)

	logger.Get(ctx).Info("After sorting")

	return Display(w, f)
}
