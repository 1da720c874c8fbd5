// Package errors provides structured error handling for host filesystem work.
//
// Every fallible operation in this module reports a PlatformError: an error
// code (NOT_FOUND, NOT_EMPTY, BROKEN_PIPE, ...), a retry classification, a
// human-readable message, optional context such as the operation name and
// the printable path, and the wrapped OS error. The standard library
// helpers (errors.Is, errors.As, errors.Unwrap) see through the wrapper, so
// errors.Is(err, fs.ErrNotExist) keeps working.
//
// # Creating errors
//
//	err := errors.New(errors.CodeInvalidInput, "path is empty")
//	err := errors.Newf(errors.CodeInvalidInput, "buffer of %d bytes exceeds limit", n)
//
// # Wrapping OS errors
//
// WrapOS classifies an error returned by the os package or a raw syscall and
// attaches "op" and "path" context:
//
//	if err := os.Mkdir(native, mode); err != nil {
//	    return errors.WrapOS(err, "mkdir", printable)
//	}
//
// CodeForOS exposes the classification alone.
//
// # Retry decisions
//
// Only CodeInterrupted and CodeWouldBlock are retryable by default:
//
//	if errors.IsRetryable(err) {
//	    continue
//	}
//
// # JSON
//
// ToJSON flattens an error into an ErrorResponse for the CLI's --json mode.
// The cause chain is omitted.
package errors
