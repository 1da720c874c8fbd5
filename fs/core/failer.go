package core

import (
	"context"
	"fmt"
	"os"

	"github.com/jmgilman/go/hostfs/logging"
)

// ExitCode is the process exit status reported for unrecoverable failures.
type ExitCode int

const (
	// ExitSuccess is a clean exit.
	ExitSuccess ExitCode = 0
	// ExitFailure is a recoverable operation failure surfaced by a CLI.
	ExitFailure ExitCode = 1
	// ExitLocalEnvironmentalError reports a problem with the host (disk, permissions).
	ExitLocalEnvironmentalError ExitCode = 36
	// ExitInternalError reports a condition that should be impossible.
	ExitInternalError ExitCode = 37
)

// Failer aborts the process. Fail never returns.
type Failer interface {
	Fail(code ExitCode, message string)
}

// FailerFunc adapts a function to Failer. The function must not return.
type FailerFunc func(code ExitCode, message string)

// Fail implements Failer.
func (f FailerFunc) Fail(code ExitCode, message string) {
	f(code, message)
}

// ExitFailer prints the message to stderr, logs it at error level and exits
// with code.
type ExitFailer struct {
	Logger *logging.Logger
}

// NewExitFailer returns an ExitFailer writing to logger.
func NewExitFailer(logger *logging.Logger) *ExitFailer {
	return &ExitFailer{Logger: logger}
}

// Fail implements Failer.
func (f *ExitFailer) Fail(code ExitCode, message string) {
	fmt.Fprintf(os.Stderr, "FATAL: %s\n", message)
	f.Logger.Error(context.Background(), "fatal", "exit_code", int(code), "message", message)
	os.Exit(int(code))
}
