package config

import (
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/logging"
)

// matches $(VAR_NAME)
var envPattern = regexp.MustCompile(`\$\(([A-Za-z0-9_]+)\)`)

// replaces $(VAR) with os.Getenv(VAR)
func expandEnvVars(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(m string) string {
		key := mapEnvKey(envPattern.FindStringSubmatch(m)[1])
		return os.Getenv(key)
	})
}

// Load reads the YAML file at path over the defaults. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.WithContext(
			errors.Wrap(err, errors.CodeForOS(err), "reading config file"), "path", path)
	}

	if err := Parse([]byte(expandEnvVars(string(data))), cfg); err != nil {
		return nil, errors.WithContext(err, "path", path)
	}
	return cfg, nil
}

// Parse unmarshals data into cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfig, "unmarshalling yaml")
	}
	return cfg.Validate()
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := logging.ParseLogLevel(c.Logging.Level); err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfig, "logging.level")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return errors.Newf(errors.CodeInvalidConfig, "logging.format: unknown format %q", c.Logging.Format)
	}
	if c.Files.MaxReadSize < 0 {
		return errors.New(errors.CodeInvalidConfig, "files.maxReadSize must not be negative")
	}
	if c.Install.Parallelism < 0 {
		return errors.New(errors.CodeInvalidConfig, "install.parallelism must not be negative")
	}
	return nil
}
