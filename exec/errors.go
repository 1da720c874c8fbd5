package exec

import (
	"fmt"
	"strings"

	"github.com/jmgilman/go/hostfs/errors"
)

// ExecError describes a failed run. It is wrapped in an EXECUTION_FAILED
// PlatformError; use errors.As to reach it.
type ExecError struct {
	Command  []string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("command %q failed with exit code %d: %v", strings.Join(e.Command, " "), e.ExitCode, e.Err)
	}
	return fmt.Sprintf("command %q failed with exit code %d", strings.Join(e.Command, " "), e.ExitCode)
}

// Unwrap returns the underlying error.
func (e *ExecError) Unwrap() error {
	return e.Err
}

func executionFailed(e *ExecError) error {
	return errors.WrapWithContext(e, errors.CodeExecutionFailed, "command failed", map[string]interface{}{
		"command":   strings.Join(e.Command, " "),
		"exit_code": e.ExitCode,
	})
}
