package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapLogger_GetLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := NewIsolatedLogger(path)

	l.Info("AUTH", "user signed up", map[string]interface{}{"user_id": "u1"})
	l.Warn("CONSULTATION", "model output was not json", nil)
	l.Info("AUTH", "user logged in", nil)
	require.NoError(t, l.Sync())

	all, err := l.GetLogs(LogFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "user logged in", all[0].Message, "newest first")

	warns, err := l.GetLogs(LogFilter{Level: "WARN"})
	require.NoError(t, err)
	require.Len(t, warns, 1)
	assert.Equal(t, "CONSULTATION", warns[0].Module)

	auth, err := l.GetLogs(LogFilter{Module: "AUTH", Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, auth, 1)
	assert.Equal(t, "user signed up", auth[0].Message)

	got, err := l.GetLogById(auth[0].Id)
	require.NoError(t, err)
	assert.Equal(t, auth[0].Message, got.Message)

	_, err = l.GetLogById("missing")
	assert.ErrorIs(t, err, ErrLogNotFound)
}

func TestZapLogger_MissingFile(t *testing.T) {
	l := &ZapLogger{logger: NewNopLogger().logger, filePath: filepath.Join(t.TempDir(), "none.log")}
	logs, err := l.GetLogs(LogFilter{})
	require.NoError(t, err)
	assert.Empty(t, logs)
}
