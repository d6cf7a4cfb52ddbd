package main

import (
	"bytes"
	"context"
	"errors"
	"iiwa-config/config"
	"iiwa-config/internal/models"
	"iiwa-config/internal/parser"
	"iiwa-config/internal/testutils"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.txt")
	require.NoError(t, os.WriteFile(path, []byte(testutils.Config(lines...)), 0o600))
	return path
}

func TestExecute_TextOutput(t *testing.T) {
	logger, _ := testutils.SetupTestLogger()
	path := writeConfig(t,
		"robot_name: iiwa",
		"master_ip: 192.168.1.50",
		"master_port: 11311",
		"robot_ip: 192.168.1.23",
		"ntp_with_host: true",
	)

	var out bytes.Buffer
	cfg := &config.Config{ConfigFile: path, Enumerator: "net", Format: "text", Timeout: time.Second}
	require.NoError(t, execute(context.Background(), cfg, logger, &out))

	raw, err := parser.Parse(&out)
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.23", raw["robot_ip"])
	assert.Equal(t, "11311", raw["master_port"])
}

func TestExecute_OutputFile(t *testing.T) {
	logger, _ := testutils.SetupTestLogger()
	path := writeConfig(t,
		"robot_name: iiwa",
		"master_ip: 192.168.1.50",
		"master_port: 11311",
		"robot_ip: 192.168.1.23",
		"ntp_with_host: false",
	)
	outPath := filepath.Join(t.TempDir(), "resolved.toml")

	cfg := &config.Config{ConfigFile: path, Enumerator: "net", Format: "toml", OutputFile: outPath, Timeout: time.Second}
	require.NoError(t, execute(context.Background(), cfg, logger, &bytes.Buffer{}))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[configuration]")
	assert.Regexp(t, `robot_name = ['"]iiwa['"]`, string(data))
}

func TestExecute_RequireRobotIP(t *testing.T) {
	logger, _ := testutils.SetupTestLogger()
	// TEST-NET-3 is never assigned to a local interface.
	path := writeConfig(t,
		"robot_name: iiwa",
		"master_ip: 203.0.113.7",
		"master_port: 11311",
		"ntp_with_host: false",
	)

	cfg := &config.Config{ConfigFile: path, Enumerator: "net", Format: "text", RequireRobotIP: true, Timeout: time.Second}
	err := execute(context.Background(), cfg, logger, &bytes.Buffer{})
	assert.ErrorContains(t, err, "203.0.113.7/24")

	cfg.RequireRobotIP = false
	assert.NoError(t, execute(context.Background(), cfg, logger, &bytes.Buffer{}))
}

func TestExecute_MissingKey(t *testing.T) {
	logger, _ := testutils.SetupTestLogger()
	path := writeConfig(t, "robot_name: iiwa", "master_ip: 192.168.1.50")

	cfg := &config.Config{ConfigFile: path, Enumerator: "net", Format: "text", Timeout: time.Second}
	err := execute(context.Background(), cfg, logger, &bytes.Buffer{})
	assert.ErrorIs(t, err, models.ErrConfig)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolved.txt")

	err := writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "robot_name: iiwa\n")
		return err
	})
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "robot_name: iiwa\n", string(data))

	boom := errors.New("encoder failed")
	assert.ErrorIs(t, writeFile(path, func(io.Writer) error { return boom }), boom)

	err = writeFile(filepath.Join(t.TempDir(), "missing", "out.txt"), func(io.Writer) error { return nil })
	assert.ErrorContains(t, err, "create output file")
}
