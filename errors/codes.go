package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Existence errors.

	// CodeNotFound indicates the path (or one of its ancestors) does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates an entry already occupies the path.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Shape errors.

	// CodeNotDirectory indicates a directory was required but something else was found.
	CodeNotDirectory ErrorCode = "NOT_DIRECTORY"

	// CodeIsDirectory indicates a non-directory was required but a directory was found.
	CodeIsDirectory ErrorCode = "IS_DIRECTORY"

	// CodeNotEmpty indicates a directory still has entries.
	CodeNotEmpty ErrorCode = "NOT_EMPTY"

	// Permission errors.

	// CodeForbidden indicates a permission or ownership check failed.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// CodeReadOnly indicates the backing filesystem is mounted read-only.
	CodeReadOnly ErrorCode = "READ_ONLY"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// I/O errors.

	// CodeInterrupted indicates a blocking call was interrupted before transferring data.
	CodeInterrupted ErrorCode = "INTERRUPTED"

	// CodeWouldBlock indicates a non-blocking handle had no data available.
	CodeWouldBlock ErrorCode = "WOULD_BLOCK"

	// CodeBrokenPipe indicates the reading end of a pipe has gone away.
	CodeBrokenPipe ErrorCode = "BROKEN_PIPE"

	// CodeIO indicates a read, write, flush or close failed.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeClosed indicates an operation on a handle that was already released.
	CodeClosed ErrorCode = "CLOSED"

	// Integrity errors.

	// CodeTampered indicates an install base file lost its integrity marker.
	CodeTampered ErrorCode = "TAMPERED"

	// Execution errors.

	// CodeExecutionFailed indicates a child process failed.
	CodeExecutionFailed ErrorCode = "EXECUTION_FAILED"

	// System errors.

	// CodeUnsupported indicates the backend cannot perform the operation.
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// CodeInternal indicates an internal system error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
