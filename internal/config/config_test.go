package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/logging"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hostfs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileIsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	t.Setenv("HOSTFS_TEST_LEVEL", "debug")

	cfg, err := Load(writeConfig(t, `
logging:
  level: $(HOSTFS_TEST_LEVEL)
  format: json
directories:
  mode: "0700"
files:
  mode: 0o600
  maxReadSize: 1048576
install:
  parallelism: 4
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, Mode(0o700), cfg.Directories.Mode)
	assert.Equal(t, os.FileMode(0o600), cfg.Files.Mode.FileMode())
	assert.Equal(t, 1048576, cfg.Files.MaxReadSize)
	assert.Equal(t, 4, cfg.Install.Parallelism)

	logCfg := cfg.LogConfig()
	assert.Equal(t, logging.LogLevelDebug, logCfg.Level)
	assert.Equal(t, "json", logCfg.Format)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "files:\n  maxReadSize: 10\n"))
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Files.MaxReadSize)
	assert.Equal(t, Mode(0o644), cfg.Files.Mode)
	assert.Equal(t, Mode(0o755), cfg.Directories.Mode)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "logging: [unclosed"},
		{"bad level", "logging:\n  level: loud\n"},
		{"bad format", "logging:\n  format: xml\n"},
		{"bad mode", "directories:\n  mode: \"0999\"\n"},
		{"mode too wide", "directories:\n  mode: \"01777\"\n"},
		{"negative read size", "files:\n  maxReadSize: -1\n"},
		{"negative parallelism", "install:\n  parallelism: -2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
		})
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("HOSTFS_A", "x")

	assert.Equal(t, "x-/-", expandEnvVars("$(HOSTFS_A)-/-$(HOSTFS_UNSET_VAR)"))
	assert.Equal(t, "$HOSTFS_A", expandEnvVars("$HOSTFS_A"))
}

func TestModeMarshal(t *testing.T) {
	out, err := Mode(0o750).MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "0750", out)
}
