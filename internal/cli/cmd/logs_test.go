package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webpane/internal/logging"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatSize(tt.in))
	}
}

func TestListLogSessions_NewestFirstIgnoresBackups(t *testing.T) {
	dir := t.TempDir()
	older := "20250101_100000_aaaa"
	newer := "20250102_100000_bbbb"
	for _, name := range []string{
		logging.SessionFilename(older),
		logging.SessionFilename(newer),
		logging.SessionFilename(older) + ".2025-01-01-10-00-00.000.gz",
		"unrelated.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	sessions, err := listLogSessions(dir)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, newer, sessions[0].ID)
	assert.Equal(t, older, sessions[1].ID)
}

func TestListLogSessions_MissingDir(t *testing.T) {
	sessions, err := listLogSessions(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
