package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestLFallsBackBeforeInit(t *testing.T) {
	// Must never hand out a nil logger, Init or not.
	require.NotNil(t, L())
}

func TestInitReturnsProcessLogger(t *testing.T) {
	log := Init("debug")
	require.NotNil(t, log)
	assert.Same(t, log, L())
}
