package errors

// PlatformError extends the standard error interface with the structured
// information filesystem callers need to react to a failure without parsing
// messages or consulting a global last-error value.
//
// A PlatformError carries a code for categorization, a classification for
// retry decisions, contextual metadata (operation, path), and the wrapped OS
// error so errors.Is(err, fs.ErrNotExist) and friends keep working.
type PlatformError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	Unwrap() error
}
