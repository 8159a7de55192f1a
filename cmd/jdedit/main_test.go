package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/jdedit/internal/config"
)

type captured struct {
	cfg   *config.Config
	files []string
	calls int
}

func (c *captured) edit(cfg *config.Config, files []string) error {
	c.cfg = cfg
	c.files = files
	c.calls++
	return nil
}

func execute(t *testing.T, args ...string) (*captured, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	c := &captured{}
	cmd := newRootCmd(c.edit)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return c, out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCmd_Defaults(t *testing.T) {
	c, _, err := execute(t, "a.txt", "b.c")
	require.NoError(t, err)

	require.Equal(t, 1, c.calls)
	assert.Equal(t, []string{"a.txt", "b.c"}, c.files)
	assert.Equal(t, config.Default(), c.cfg)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
[editor]
tab_stop = 8
message_timeout = "2s"

[log]
level = "debug"
`)
	c, _, err := execute(t, "--config", path)
	require.NoError(t, err)

	assert.Equal(t, 8, c.cfg.Editor.TabStop)
	assert.Equal(t, 2*time.Second, c.cfg.Editor.MessageTimeout.Duration)
	assert.Equal(t, "debug", c.cfg.Log.Level)
	assert.Empty(t, c.files)
}

func TestRootCmd_FlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"
file = "/tmp/from-config.log"
`)
	c, _, err := execute(t, "-c", path, "--log-level", "warn", "--log-file", "/tmp/x.log", "--no-line-numbers")
	require.NoError(t, err)

	assert.Equal(t, "warn", c.cfg.Log.Level)
	assert.Equal(t, "/tmp/x.log", c.cfg.Log.File)
	assert.False(t, c.cfg.Editor.LineNumbers)
}

func TestRootCmd_EnvironmentLayer(t *testing.T) {
	path := writeConfig(t, "[editor]\ntab_stop = 8\n")
	t.Setenv("JDEDIT_TAB_STOP", "2")

	c, _, err := execute(t, "-c", path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.cfg.Editor.TabStop)
}

func TestRootCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
	}{
		{"missing explicit config", func(t *testing.T) []string {
			return []string{"-c", filepath.Join(t.TempDir(), "nope.toml")}
		}},
		{"invalid log level flag", func(t *testing.T) []string {
			return []string{"--log-level", "loud"}
		}},
		{"unknown config key", func(t *testing.T) []string {
			return []string{"-c", writeConfig(t, "[editor]\ntabstop = 2\n")}
		}},
		{"unknown flag", func(t *testing.T) []string {
			return []string{"--readonly"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, err := execute(t, tt.args(t)...)
			assert.Error(t, err)
			assert.Zero(t, c.calls)
		})
	}
}

func TestRootCmd_Version(t *testing.T) {
	c, out, err := execute(t, "--version")
	require.NoError(t, err)

	assert.Contains(t, out, "dev (commit: unknown, built: unknown)")
	assert.Zero(t, c.calls)
}

func TestRun_ExitCode(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var stdout, stderr bytes.Buffer

	code := run([]string{"--log-level", "loud"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error: invalid configuration")
}
