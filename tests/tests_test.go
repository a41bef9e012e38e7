package tests

import (
	"context"
	"strings"
	"testing"

	"github.com/amp-labs/ducksort/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUniqueContext(t *testing.T) {
	t.Parallel()

	ctx := GetUniqueContext(t)

	info, ok := GetTestInfo(ctx)
	require.True(t, ok)
	assert.Equal(t, t.Name(), info.Name)
	assert.True(t, strings.HasPrefix(info.Id, "test-"))

	other, ok := GetTestId(GetUniqueContext(t))
	require.True(t, ok)
	assert.NotEqual(t, info.Id, other)

	// Must not panic; output goes to t.Log.
	logger.Get(ctx).Info("hello from the test logger")
}

func TestGetTestInfo_Missing(t *testing.T) {
	t.Parallel()

	_, ok := GetTestInfo(context.Background())
	assert.False(t, ok)
}
