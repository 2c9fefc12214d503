package database

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormLogger "gorm.io/gorm/logger"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestGormLogger_WritesThroughZerolog(t *testing.T) {
	buf := captureLogs(t)
	l := newGormLogger(gormLogger.Info)
	ctx := context.Background()
	sql := func() (string, int64) { return "SELECT * FROM assessments", 3 }

	l.Error(ctx, "connection lost: %s", "eof")
	l.Warn(ctx, "retrying")
	l.Trace(ctx, time.Now(), sql, nil)
	l.Trace(ctx, time.Now(), sql, errors.New("no such table"))
	l.Trace(ctx, time.Now().Add(-time.Second), sql, nil)

	entries := logLines(t, buf)
	require.Len(t, entries, 5)
	wantLevels := []string{"error", "warn", "debug", "error", "warn"}
	for i, entry := range entries {
		assert.Equal(t, "gorm", entry["component"])
		assert.Equal(t, wantLevels[i], entry["level"], "entry %d: %v", i, entry["message"])
	}
	assert.Contains(t, entries[0]["message"], "connection lost: eof")
	assert.Contains(t, entries[2]["message"], "SELECT * FROM assessments")
	assert.Contains(t, entries[4]["message"], "SLOW SQL")
}

func TestGormLogger_RespectsLogMode(t *testing.T) {
	buf := captureLogs(t)
	l := newGormLogger(gormLogger.Warn)

	l.Info(context.Background(), "migrating")
	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)
	assert.Empty(t, strings.TrimSpace(buf.String()))
}
