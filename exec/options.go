package exec

import (
	"context"
	"io"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/jmgilman/go/hostfs/logging"
)

// settings is one layer of configuration. Command keeps a global layer from
// New and a local layer that is rebuilt from it after every run.
type settings struct {
	env         map[string]string
	dir         string
	inheritEnv  bool
	passthrough bool
	timeout     time.Duration
	stdin       io.Reader
	extraFiles  []*os.File
}

func (s settings) clone() settings {
	s.env = maps.Clone(s.env)
	if s.env == nil {
		s.env = map[string]string{}
	}
	s.extraFiles = slices.Clone(s.extraFiles)
	return s
}

// environ returns the child environment. It is never nil, so a child only
// sees the parent's variables through WithInheritEnv.
func (s settings) environ() []string {
	env := []string{}
	if s.inheritEnv {
		env = os.Environ()
	}
	for _, k := range slices.Sorted(maps.Keys(s.env)) {
		env = append(env, k+"="+s.env[k])
	}
	return env
}

// Option configures the global settings of a Command.
type Option func(*Command)

// WithEnv returns an Option that sets global environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		maps.Copy(c.global.env, env)
	}
}

// WithDir returns an Option that sets the global working directory.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.global.dir = dir
	}
}

// WithContext returns an Option that sets the base context.
func WithContext(ctx context.Context) Option {
	return func(c *Command) {
		c.ctx = ctx
	}
}

// WithTimeout returns an Option that bounds every run.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Command) {
		c.global.timeout = timeout
	}
}

// WithInheritEnv returns an Option that globally enables environment inheritance.
func WithInheritEnv() Option {
	return func(c *Command) {
		c.global.inheritEnv = true
	}
}

// WithStdout returns an Option that sets the passthrough stdout writer.
func WithStdout(w io.Writer) Option {
	return func(c *Command) {
		c.stdout = w
	}
}

// WithStderr returns an Option that sets the passthrough stderr writer.
func WithStderr(w io.Writer) Option {
	return func(c *Command) {
		c.stderr = w
	}
}

// WithPassthrough returns an Option that globally enables output passthrough.
func WithPassthrough() Option {
	return func(c *Command) {
		c.global.passthrough = true
	}
}

// WithLogger returns an Option that logs each run.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Command) {
		c.logger = logger
	}
}
