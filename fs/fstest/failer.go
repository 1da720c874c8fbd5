package fstest

import (
	"fmt"
	"testing"

	"github.com/jmgilman/go/hostfs/fs/core"
)

// FatalError is the panic value raised by PanicFailer.
type FatalError struct {
	Code    core.ExitCode
	Message string
}

func (e FatalError) Error() string {
	return fmt.Sprintf("fatal (%d): %s", e.Code, e.Message)
}

// PanicFailer is a core.Failer for tests. It panics with a FatalError
// instead of exiting.
type PanicFailer struct{}

// Fail implements core.Failer.
func (PanicFailer) Fail(code core.ExitCode, message string) {
	panic(FatalError{Code: code, Message: message})
}

// CatchFatal runs fn and returns the FatalError it raised through a
// PanicFailer, or nil if fn returned normally. Other panics propagate.
func CatchFatal(fn func()) (fatal *FatalError) {
	defer func() {
		if r := recover(); r != nil {
			fe, ok := r.(FatalError)
			if !ok {
				panic(r)
			}
			fatal = &fe
		}
	}()
	fn()
	return nil
}

// RequireFatal fails the test unless fn raises a FatalError with code.
func RequireFatal(t *testing.T, code core.ExitCode, fn func()) {
	t.Helper()
	fatal := CatchFatal(fn)
	if fatal == nil {
		t.Fatalf("expected fatal exit %d, got normal return", code)
	}
	if fatal.Code != code {
		t.Fatalf("fatal exit code = %d, want %d (%s)", fatal.Code, code, fatal.Message)
	}
}
