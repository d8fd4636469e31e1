package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Defaults(t *testing.T) {
	l, err := New(LogOption{})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(LogOption{Format: "xml"})
	assert.Error(t, err)

	_, err = New(LogOption{Level: "loud"})
	assert.Error(t, err)
}

func TestNew_FileSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	l, err := New(LogOption{Format: "json", LogDir: dir, Level: "debug"})
	require.NoError(t, err)

	l.Info("hello")
	_ = l.Sync()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}
