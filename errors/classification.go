package errors

// ErrorClassification indicates whether an error should trigger a retry.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: interrupted reads, non-blocking handles with no data yet.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: missing paths, permission denials, non-empty rename targets.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeInterrupted: ClassificationRetryable,
	CodeWouldBlock:  ClassificationRetryable,

	CodeNotFound:        ClassificationPermanent,
	CodeAlreadyExists:   ClassificationPermanent,
	CodeNotDirectory:    ClassificationPermanent,
	CodeIsDirectory:     ClassificationPermanent,
	CodeNotEmpty:        ClassificationPermanent,
	CodeForbidden:       ClassificationPermanent,
	CodeReadOnly:        ClassificationPermanent,
	CodeInvalidInput:    ClassificationPermanent,
	CodeInvalidConfig:   ClassificationPermanent,
	CodeBrokenPipe:      ClassificationPermanent,
	CodeIO:              ClassificationPermanent,
	CodeClosed:          ClassificationPermanent,
	CodeTampered:        ClassificationPermanent,
	CodeExecutionFailed: ClassificationPermanent,
	CodeUnsupported:     ClassificationPermanent,
	CodeInternal:        ClassificationPermanent,
	CodeUnknown:         ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Unknown codes are permanent.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
