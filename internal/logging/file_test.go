package logging

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionFilename_RoundTrip(t *testing.T) {
	id := GenerateSessionID()

	got, ok := ParseSessionFilename(SessionFilename(id))
	require.True(t, ok)
	assert.Equal(t, id, got)
	assert.Len(t, ShortSessionID(id), 4)
}

func TestParseSessionFilename(t *testing.T) {
	tests := []struct {
		name   string
		wantID string
		wantOK bool
	}{
		{"session_20251217_205106_a7b3.log", "20251217_205106_a7b3", true},
		{"session_20251217_205106_a7b3.log.2025-12-17-20-51-06.000", "", false},
		{"session_.log", "", false},
		{"webpane.log", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ParseSessionFilename(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestPruneSessionLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"session_20250101_000000_aaaa.log",
		"session_20250101_000000_aaaa.log.2025-01-01-00-00-00.000.gz",
		"session_20250102_000000_bbbb.log",
		"session_20250103_000000_cccc.log",
		"unrelated.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}

	removed, err := PruneSessionLogs(dir, 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"20250101_000000_aaaa"}, removed)
	assert.NoFileExists(t, filepath.Join(dir, "session_20250101_000000_aaaa.log"))
	assert.NoFileExists(t, filepath.Join(dir, "session_20250101_000000_aaaa.log.2025-01-01-00-00-00.000.gz"))
	assert.FileExists(t, filepath.Join(dir, "session_20250103_000000_cccc.log"))
	assert.FileExists(t, filepath.Join(dir, "unrelated.txt"))
}

func TestPruneSessionLogs_MissingDirIsFine(t *testing.T) {
	removed, err := PruneSessionLogs(filepath.Join(t.TempDir(), "nope"), 1)
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestLogRotator_RotatesAndCompresses(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, "test.log", 1, 5, 0, true)
	require.NoError(t, err)

	chunk := []byte(strings.Repeat("a", 700*1024))
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	matches, err := filepath.Glob(filepath.Join(dir, "test.log.*.gz"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	f, err := os.Open(matches[0])
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Len(t, data, len(chunk))

	info, err := os.Stat(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestLogRotator_PrunesBeyondMaxBackups(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, "test.log", 1, 1, 0, false)
	require.NoError(t, err)

	chunk := []byte(strings.Repeat("b", 700*1024))
	for i := 0; i < 4; i++ {
		_, err = r.Write(chunk)
		require.NoError(t, err)
		// Backup names carry millisecond timestamps.
		time.Sleep(5 * time.Millisecond)
	}
	require.NoError(t, r.Close())

	matches, err := filepath.Glob(filepath.Join(dir, "test.log.*"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestNewWithFile_WritesSessionLog(t *testing.T) {
	dir := t.TempDir()
	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.DebugLevel, Format: "json"},
		FileConfig{Enabled: true, LogDir: dir, SessionID: "20250101_000000_abcd", MaxSizeMB: 1},
	)
	require.NoError(t, err)

	logger.Debug().Str("pane_id", "p1").Msg("hello file")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, "session_20250101_000000_abcd.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello file"`)
	assert.Contains(t, string(data), `"session":"abcd"`)
}

func TestNewWithFile_DisabledReturnsPlainLogger(t *testing.T) {
	dir := t.TempDir()
	_, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{LogDir: dir})
	require.NoError(t, err)
	cleanup()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
