package logging

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	sessionPrefix = "session_"
	sessionSuffix = ".log"
)

// GenerateSessionID creates a unique session identifier.
// Format: YYYYMMDD_HHMMSS_xxxx (timestamp + 4 random hex chars)
func GenerateSessionID() string {
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return time.Now().Format("20060102_150405") + "_" + hex.EncodeToString(random)
}

// ShortSessionID returns the random suffix of a session ID.
// "20251217_205106_a7b3" -> "a7b3"
func ShortSessionID(sessionID string) string {
	if i := strings.LastIndexByte(sessionID, '_'); i >= 0 {
		return sessionID[i+1:]
	}
	return sessionID
}

// SessionFilename returns the log file name of a session.
func SessionFilename(sessionID string) string {
	return sessionPrefix + sessionID + sessionSuffix
}

// ParseSessionFilename extracts the session ID from a log file name.
// Rotated backups (session_<id>.log.<timestamp>) are not matched.
func ParseSessionFilename(filename string) (sessionID string, ok bool) {
	if !strings.HasPrefix(filename, sessionPrefix) || !strings.HasSuffix(filename, sessionSuffix) {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(filename, sessionPrefix), sessionSuffix)
	if id == "" {
		return "", false
	}
	return id, true
}

// PruneSessionLogs keeps the newest keep session logs in dir, together with
// their rotated backups, and removes the rest. It returns the removed session IDs.
func PruneSessionLogs(dir string, keep int) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var sessions []string
	for _, e := range entries {
		if id, ok := ParseSessionFilename(e.Name()); ok && !e.IsDir() {
			sessions = append(sessions, id)
		}
	}
	if len(sessions) <= keep {
		return nil, nil
	}

	// Session IDs start with a timestamp, so lexical order is chronological.
	sort.Strings(sessions)
	stale := sessions[:len(sessions)-keep]
	for _, id := range stale {
		name := SessionFilename(id)
		for _, e := range entries {
			if e.Name() == name || strings.HasPrefix(e.Name(), name+".") {
				_ = os.Remove(filepath.Join(dir, e.Name()))
			}
		}
	}
	return stale, nil
}
