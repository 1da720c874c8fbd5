package core

// RenameOutcome is the result of RenameDirectory.
type RenameOutcome int

const (
	// RenameSuccess indicates the directory was moved.
	RenameSuccess RenameOutcome = iota
	// RenameFailureNotEmpty indicates the destination exists and has entries.
	RenameFailureNotEmpty
	// RenameFailureOtherError covers every other failure.
	RenameFailureOtherError
)

// String returns a string representation of the RenameOutcome.
func (r RenameOutcome) String() string {
	switch r {
	case RenameSuccess:
		return "success"
	case RenameFailureNotEmpty:
		return "not-empty"
	default:
		return "error"
	}
}

// ReadResult classifies the outcome of a single read.
type ReadResult int

const (
	// ReadSuccess indicates the read returned zero or more bytes.
	ReadSuccess ReadResult = iota
	// ReadInterrupted indicates the call was interrupted before any data arrived.
	ReadInterrupted
	// ReadAgain indicates a non-blocking handle had nothing to read.
	ReadAgain
	// ReadOtherError covers every other failure.
	ReadOtherError
)

// String returns a string representation of the ReadResult.
func (r ReadResult) String() string {
	switch r {
	case ReadSuccess:
		return "success"
	case ReadInterrupted:
		return "interrupted"
	case ReadAgain:
		return "again"
	default:
		return "error"
	}
}

// Retryable reports whether the same read may be attempted again.
func (r ReadResult) Retryable() bool {
	return r == ReadInterrupted || r == ReadAgain
}

// WriteResult classifies the outcome of WriteToStdOutErr.
type WriteResult int

const (
	// WriteSuccess indicates every byte was written.
	WriteSuccess WriteResult = iota
	// WriteBrokenPipe indicates the reader went away.
	WriteBrokenPipe
	// WriteOtherError covers every other failure.
	WriteOtherError
)

// String returns a string representation of the WriteResult.
func (w WriteResult) String() string {
	switch w {
	case WriteSuccess:
		return "success"
	case WriteBrokenPipe:
		return "broken-pipe"
	default:
		return "error"
	}
}

// FSType represents the underlying type of a Tree implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates the host filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}
