package testutils

import (
	"bytes"
	"log/slog"
	"strings"
)

// SetupTestLogger returns a DEBUG-level text logger that writes into the
// returned buffer so tests can assert on log output.
func SetupTestLogger() (*slog.Logger, *bytes.Buffer) {
	var logBuf bytes.Buffer
	handler := slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), &logBuf
}

// Config returns the text of a config file built from "key: value" lines.
func Config(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
