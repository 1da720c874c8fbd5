package exec

import (
	"context"
	"io"
	"os"
	osexec "os/exec"
	"time"

	"github.com/jmgilman/go/hostfs/logging"
)

// Command is the os/exec backed Executor. It is not safe for concurrent
// use; Clone it per goroutine.
type Command struct {
	ctx    context.Context
	stdout io.Writer
	stderr io.Writer
	logger *logging.Logger

	global settings
	local  settings
}

var _ Executor = (*Command)(nil)

// New creates a Command. Options set global defaults.
func New(opts ...Option) *Command {
	c := &Command{
		ctx:    context.Background(),
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: logging.NewNopLogger(),
		global: settings{env: map[string]string{}},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.local = c.global.clone()
	return c
}

func (c *Command) WithEnv(env map[string]string) Executor {
	for k, v := range env {
		c.local.env[k] = v
	}
	return c
}

func (c *Command) WithDir(dir string) Executor {
	c.local.dir = dir
	return c
}

func (c *Command) WithContext(ctx context.Context) Executor {
	c.ctx = ctx
	return c
}

func (c *Command) WithTimeout(timeout time.Duration) Executor {
	c.local.timeout = timeout
	return c
}

func (c *Command) WithInheritEnv() Executor {
	c.local.inheritEnv = true
	return c
}

func (c *Command) WithStdin(r io.Reader) Executor {
	c.local.stdin = r
	return c
}

func (c *Command) WithStdout(w io.Writer) Executor {
	c.stdout = w
	return c
}

func (c *Command) WithStderr(w io.Writer) Executor {
	c.stderr = w
	return c
}

func (c *Command) WithPassthrough() Executor {
	c.local.passthrough = true
	return c
}

func (c *Command) WithExtraFiles(files ...*os.File) Executor {
	c.local.extraFiles = append(c.local.extraFiles, files...)
	return c
}

// Run executes the command and waits for it. Local settings are reset
// afterwards whatever the outcome.
func (c *Command) Run(args ...string) (*Result, error) {
	s := c.local
	c.local = c.global.clone()

	if len(args) == 0 {
		return nil, executionFailed(&ExecError{ExitCode: -1, Err: osexec.ErrNotFound})
	}

	ctx := c.ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	cmd := osexec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = s.dir
	cmd.Env = s.environ()
	cmd.Stdin = s.stdin
	cmd.ExtraFiles = s.extraFiles

	var stdout, stderr *capture
	if s.passthrough {
		stdout, stderr = newCapture(c.stdout), newCapture(c.stderr)
	} else {
		stdout, stderr = newCapture(nil), newCapture(nil)
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	c.logger.Debug(ctx, "running command", "command", args, "dir", s.dir, "extra_files", len(s.extraFiles))

	start := time.Now()
	err := cmd.Run()
	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
		Duration: time.Since(start),
	}

	if err != nil {
		c.logger.Warn(ctx, "command failed", "command", args, "exit_code", result.ExitCode, "error", err.Error())
		return result, executionFailed(&ExecError{
			Command:  args,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			Err:      err,
		})
	}
	c.logger.Debug(ctx, "command finished", "command", args, "duration_ms", result.Duration.Milliseconds())
	return result, nil
}

// Clone returns a Command with the same global settings and writers.
func (c *Command) Clone() Executor {
	return &Command{
		ctx:    c.ctx,
		stdout: c.stdout,
		stderr: c.stderr,
		logger: c.logger,
		global: c.global.clone(),
		local:  c.global.clone(),
	}
}
