package retry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"threadline/pkg/retry"
)

var errTest = errors.New("test error")

func TestSucceedsAfterRetries(t *testing.T) {
	t.Parallel()

	calls := 0
	wrapped := retry.WrapWithRetry(func() error {
		calls++
		if calls < 3 {
			return errTest
		}
		return nil
	}, func(_ error, attempt int) bool {
		return attempt < 10
	}, 1000)

	require.NoError(t, wrapped())
	require.Equal(t, 3, calls)
}

func TestStopsWhenShouldRetryDeclines(t *testing.T) {
	t.Parallel()

	calls := 0
	wrapped := retry.WrapWithRetry(func() error {
		calls++
		return errTest
	}, func(_ error, attempt int) bool {
		return attempt < 3
	}, 1000)

	require.ErrorIs(t, wrapped(), errTest)
	require.Equal(t, 3, calls)
}

func TestGivesUpAboveErrorRate(t *testing.T) {
	t.Parallel()

	calls := 0
	wrapped := retry.WrapWithRetry(func() error {
		calls++
		return errTest
	}, func(_ error, _ int) bool {
		return true
	}, 2)

	// shouldRetry never declines; only the error-rate guard can stop it.
	require.ErrorIs(t, wrapped(), errTest)
	require.Less(t, calls, 100)
}
