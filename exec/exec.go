package exec

import (
	"context"
	"io"
	"os"
	"time"
)

// Executor runs commands with a fluent configuration API.
type Executor interface {
	// WithEnv adds environment variables for the next run.
	WithEnv(env map[string]string) Executor

	// WithDir sets the working directory for the next run.
	WithDir(dir string) Executor

	// WithContext sets the context the next run is bound to.
	WithContext(ctx context.Context) Executor

	// WithTimeout bounds the next run. Zero means no limit.
	WithTimeout(timeout time.Duration) Executor

	// WithInheritEnv starts the child from the parent's environment.
	WithInheritEnv() Executor

	WithStdin(r io.Reader) Executor
	WithStdout(w io.Writer) Executor
	WithStderr(w io.Writer) Executor

	// WithPassthrough streams output to the stdout and stderr writers while
	// still capturing it.
	WithPassthrough() Executor

	// WithExtraFiles passes open files to the child after stdin, stdout and
	// stderr.
	WithExtraFiles(files ...*os.File) Executor

	// Run executes args[0] with the remaining arguments.
	Run(args ...string) (*Result, error)

	// Clone returns an independent executor with the same global settings.
	Clone() Executor
}

// Result is the outcome of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}
