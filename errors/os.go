package errors

import (
	"io/fs"
	"os"
	"syscall"
)

// CodeForOS classifies an error returned by the os package or a raw system
// call. PlatformErrors keep their own code. Anything unrecognised is CodeIO.
func CodeForOS(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var platformErr PlatformError
	if As(err, &platformErr) {
		return platformErr.Code()
	}

	var errno syscall.Errno
	if As(err, &errno) {
		if code, ok := codeForErrno(errno); ok {
			return code
		}
	}

	switch {
	case Is(err, fs.ErrNotExist):
		return CodeNotFound
	case Is(err, fs.ErrExist):
		return CodeAlreadyExists
	case Is(err, fs.ErrPermission):
		return CodeForbidden
	case Is(err, fs.ErrClosed), Is(err, os.ErrClosed):
		return CodeClosed
	case Is(err, fs.ErrInvalid):
		return CodeInvalidInput
	}

	return CodeIO
}

// WrapOS wraps an OS-level failure with its classified code, a message naming
// the operation, and "op"/"path" context. Returns nil if err is nil.
//
//	if err := os.Remove(native); err != nil {
//	    return errors.WrapOS(err, "unlink", p.AsPrintablePath())
//	}
func WrapOS(err error, op, path string) PlatformError {
	if err == nil {
		return nil
	}

	ctx := map[string]interface{}{"op": op}
	if path != "" {
		ctx["path"] = path
	}
	return WrapWithContext(err, CodeForOS(err), op+" failed", ctx)
}
