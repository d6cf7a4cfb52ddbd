package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "DEBUG", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: " Warn ", want: slog.LevelWarn},
		{in: "ERROR", want: slog.LevelError},
		{in: "TRACE", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_WritesToOutputAndFile(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "iiwa-config.log")

	log, closeFn, err := New(&out, path, "INFO")
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("Configuration loaded.", "robot_name", "iiwa")
	closeFn()

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "robot_name=iiwa")
	assert.Regexp(t, regexp.MustCompile(`time="?\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}"?`), out.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out.String(), string(data))
}

func TestNew_NoFile(t *testing.T) {
	var out bytes.Buffer
	log, closeFn, err := New(&out, "", "DEBUG")
	require.NoError(t, err)
	defer closeFn()

	log.Debug("visible")
	assert.Contains(t, out.String(), "visible")
}

func TestNew_Errors(t *testing.T) {
	_, _, err := New(&bytes.Buffer{}, "", "LOUD")
	assert.Error(t, err)

	_, _, err = New(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing", "x.log"), "INFO")
	assert.ErrorContains(t, err, "open log file")
}
