// Package tests carries per-test metadata through a context.Context.
//
//	func TestSort(t *testing.T) {
//	    ctx := tests.GetUniqueContext(t)
//	    flock.Sort(ctx, f) // logs go to t.Log, tagged with test_id
//	}
package tests

import (
	"context"
	"testing"

	"github.com/amp-labs/ducksort/logger"
	"github.com/google/uuid"
	"github.com/neilotoole/slogt"
)

type contextKey string

const (
	// testIdKey holds a UUID prefixed with "test-".
	testIdKey contextKey = "testId"

	// testNameKey holds t.Name(), including any subtest path.
	testNameKey contextKey = "testName"
)

// GetUniqueContext derives a context from t.Context() that carries a unique
// test ID and the test name. Loggers obtained from it with logger.Get write
// to t.Log and are tagged with test_id, so parallel tests keep separate
// output.
func GetUniqueContext(t *testing.T) context.Context {
	t.Helper()

	id := "test-" + uuid.New().String()

	ctx := context.WithValue(t.Context(), testIdKey, id)
	ctx = context.WithValue(ctx, testNameKey, t.Name())
	ctx = logger.WithLogger(ctx, slogt.New(t))

	return logger.With(ctx, "test_id", id)
}

// GetTestId returns the unique test ID stored by GetUniqueContext.
func GetTestId(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(testIdKey).(string)

	return id, ok
}

// GetTestName returns the test name stored by GetUniqueContext.
func GetTestName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(testNameKey).(string)

	return name, ok
}

// Info is the metadata stored by GetUniqueContext.
type Info struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// GetTestInfo returns both values. The boolean is false when neither is present.
func GetTestInfo(ctx context.Context) (Info, bool) {
	name, nameOk := GetTestName(ctx)
	id, idOk := GetTestId(ctx)

	if !nameOk && !idOk {
		return Info{}, false
	}

	return Info{Id: id, Name: name}, true
}
