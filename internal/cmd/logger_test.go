package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	for name, want := range cases {
		level, err := parseLevel(name)
		require.NoError(t, err)
		require.Equal(t, want, level)
	}

	_, err := parseLevel("loud")
	require.ErrorIs(t, err, ErrInvalidLogLevel)
}

// The non-terminal handler must honor the configured level too, not just
// the devslog one.
func TestNewLogHandlerHonorsLevelWithoutTerminal(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "log"))
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	handler := newLogHandler(f, slog.LevelWarn)

	require.False(t, handler.Enabled(t.Context(), slog.LevelDebug))
	require.False(t, handler.Enabled(t.Context(), slog.LevelInfo))
	require.True(t, handler.Enabled(t.Context(), slog.LevelWarn))
	require.True(t, handler.Enabled(t.Context(), slog.LevelError))
}
