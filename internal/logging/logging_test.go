package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONLinesWithSession(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, closeFn, err := New(Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)
	defer func() { require.NoError(t, closeFn()) }()

	sid := NewSessionID()
	WithSession(l, sid).Info("listing populated", "lost", 2, "found", 2)

	line := strings.TrimSpace(buf.String())
	require.NotEmpty(t, line)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &rec))
	assert.Equal(t, "listing populated", rec["message"])
	assert.Equal(t, sid, rec["session"])
	assert.EqualValues(t, 2, rec["lost"])
}

func TestNew_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, _, err := New(Options{Level: "warn", Writer: &buf})
	require.NoError(t, err)

	l.Info("ignored")
	assert.Empty(t, buf.String())
	l.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_FileSink(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lostfound.log")
	l, closeFn, err := New(Options{File: path})
	require.NoError(t, err)
	l.Error("population failed", "error", "boom")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "population failed")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)

	lvl, err = ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewSessionID_IsUUID(t *testing.T) {
	t.Parallel()

	_, err := uuid.Parse(NewSessionID())
	assert.NoError(t, err)
}
