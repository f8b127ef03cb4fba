package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/01moynul/umkm-web-golang/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Console(t *testing.T) {
	log, err := New(config.LoggerConfig{Level: "debug", Encoding: "console", Type: "console"}, true)
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Debug("console logger ready")
}

func TestNew_FileWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := New(config.LoggerConfig{
		Level:      "info",
		Encoding:   "json",
		Type:       "file",
		FilePath:   path,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	}, false)
	require.NoError(t, err)

	log.Info("hello from file logger")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello from file logger"`)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(config.LoggerConfig{Level: "loud", Encoding: "console", Type: "console"}, false)
	assert.Error(t, err)

	_, err = New(config.LoggerConfig{Level: "info", Encoding: "xml", Type: "console"}, false)
	assert.Error(t, err)

	_, err = New(config.LoggerConfig{Level: "info", Encoding: "json", Type: "file"}, false)
	assert.Error(t, err)

	_, err = New(config.LoggerConfig{Level: "info", Encoding: "json", Type: "syslog"}, false)
	assert.Error(t, err)
}
