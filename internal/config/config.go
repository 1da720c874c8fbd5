// Package config loads the hostfs command configuration.
package config

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/hostfs/logging"
)

type Config struct {
	Logging     LoggingConfig     `yaml:"logging"`
	Directories DirectoriesConfig `yaml:"directories"`
	Files       FilesConfig       `yaml:"files"`
	Install     InstallConfig     `yaml:"install"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "text", "json"
}

type DirectoriesConfig struct {
	Mode Mode `yaml:"mode"` // e.g. "0755"
}

type FilesConfig struct {
	Mode        Mode `yaml:"mode"`
	MaxReadSize int  `yaml:"maxReadSize"` // 0 = unbounded
}

type InstallConfig struct {
	Parallelism int `yaml:"parallelism"` // 0 = GOMAXPROCS
}

// Mode is a permission mode written in octal, with or without a 0 or 0o
// prefix.
type Mode fs.FileMode

func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	s := strings.TrimPrefix(strings.ToLower(value.Value), "0o")
	n, err := strconv.ParseUint(s, 8, 32)
	if err != nil || n > 0o777 {
		return fmt.Errorf("line %d: invalid mode %q: want an octal value up to 0777", value.Line, value.Value)
	}
	*m = Mode(n)
	return nil
}

func (m Mode) MarshalYAML() (interface{}, error) {
	return fmt.Sprintf("%04o", uint32(m)), nil
}

func (m Mode) FileMode() fs.FileMode {
	return fs.FileMode(m)
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Logging:     LoggingConfig{Level: "info", Format: "text"},
		Directories: DirectoriesConfig{Mode: 0o755},
		Files:       FilesConfig{Mode: 0o644},
	}
}

// LogConfig converts the logging section. Validate first.
func (c *Config) LogConfig() logging.LogConfig {
	level, _ := logging.ParseLogLevel(c.Logging.Level)
	cfg := logging.DefaultLogConfig()
	cfg.Level = level
	cfg.Format = c.Logging.Format
	return cfg
}
