package xform

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimString(t *testing.T) {
	t.Parallel()

	got, err := TrimString("  \tdebug \n")
	require.NoError(t, err)
	assert.Equal(t, "debug", got)
}

func TestToLower(t *testing.T) {
	t.Parallel()

	got, err := ToLower("WaRn")
	require.NoError(t, err)
	assert.Equal(t, "warn", got)
}

func TestBool(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"1", "t", "true", "TRUE"} {
		got, err := Bool(in)
		require.NoError(t, err, in)
		assert.True(t, got, in)
	}

	for _, in := range []string{"0", "f", "false", "False"} {
		got, err := Bool(in)
		require.NoError(t, err, in)
		assert.False(t, got, in)
	}

	_, err := Bool("yes")
	require.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	for in, want := range tests {
		got, err := SlogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := SlogLevel("DEBUG")
	require.ErrorIs(t, err, ErrInvalidLogLevel)

	_, err = SlogLevel("verbose")
	require.ErrorIs(t, err, ErrInvalidLogLevel)
}
