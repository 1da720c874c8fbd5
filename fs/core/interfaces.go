package core

import (
	"io/fs"
	"os"
)

// Tree is the contract shared by every backend: directory lifecycle, walks,
// whole-file I/O and integrity stamps. It is what install-base workflows and
// the conformance suite are written against.
type Tree interface {
	DirectoryTree
	DirectoryWalker
	FileIO
	IntegrityClock
	Stater

	// Type returns the underlying filesystem type.
	Type() FSType
}

// Platform is a Tree backed by the real host, adding raw handles, pipes and
// inspection of the process environment.
type Platform interface {
	Tree
	HandleIO
	PipeFactory
	Inspector
}

// DirectoryTree creates, removes and moves directory trees.
type DirectoryTree interface {
	// MakeDirectories creates path and any missing ancestors, like mkdir -p.
	//
	// When path already exists it must be a directory owned by the current
	// user; its permission bits are corrected to mode after the umask is
	// applied. Ancestors are created without permission checks. An empty
	// path or a filesystem root fails with a FORBIDDEN error.
	MakeDirectories(path Path, mode fs.FileMode) error

	// RemoveRecursively removes path and everything below it. A missing path
	// is success. Symlinks and junctions are removed as single entries and
	// never followed. The first failing child aborts the removal.
	RemoveRecursively(path Path) error

	// RenameDirectory moves oldPath to newPath with a single OS call.
	// A destination that exists and has entries yields RenameFailureNotEmpty.
	RenameDirectory(oldPath, newPath Path) (RenameOutcome, error)

	// CreateSiblingTempDir creates a uniquely named directory next to other
	// and returns it. The parent of other is created if needed. Failure is
	// fatal.
	CreateSiblingTempDir(other Path) Path
}

// DirectoryEntryConsumer receives the immediate children of a directory.
type DirectoryEntryConsumer interface {
	Consume(path Path, isDirectory bool)
}

// DirectoryEntryFunc adapts a function to DirectoryEntryConsumer.
type DirectoryEntryFunc func(path Path, isDirectory bool)

// Consume implements DirectoryEntryConsumer.
func (f DirectoryEntryFunc) Consume(path Path, isDirectory bool) {
	f(path, isDirectory)
}

// DirectoryWalker enumerates directories.
type DirectoryWalker interface {
	// ForEachDirectoryEntry calls consume once for every child of path,
	// skipping the self and parent entries. Symlinks and junctions are
	// reported as non-directories. A directory that cannot be opened
	// produces no callbacks.
	ForEachDirectoryEntry(path Path, consume DirectoryEntryConsumer)

	// GetAllFilesUnder returns every non-directory below path, recursively.
	GetAllFilesUnder(path Path) []Path
}

// FileIO reads and writes whole files.
type FileIO interface {
	// ReadFile returns the contents of path. maxSize <= 0 means unbounded;
	// otherwise at most maxSize bytes are returned. The null device yields
	// no bytes without being opened.
	ReadFile(path Path, maxSize int) ([]byte, error)

	// ReadFileInto fills buf exactly from the start of path. A file shorter
	// than buf is an IO_ERROR.
	ReadFileInto(path Path, buf []byte) error

	// WriteFile replaces path with data. Any existing entry is unlinked
	// first. Writing to the null device always succeeds.
	WriteFile(data []byte, path Path, perm fs.FileMode) error

	// UnlinkPath removes a single non-directory entry.
	UnlinkPath(path Path) error
}

// IntegrityClock stamps and checks modification-time markers.
type IntegrityClock interface {
	SetMtimeToNow(path Path) error

	// SetMtimeToNowIfPossible is SetMtimeToNow except that a read-only
	// filesystem or a permission denial is reported as success.
	SetMtimeToNowIfPossible(path Path) error

	SetMtimeToDistantFuture(path Path) error

	// IsUntampered reports whether path's mtime is at or beyond the near
	// future marker. Directories are always untampered; a path that cannot
	// be stat'ed is not.
	IsUntampered(path Path) bool
}

// Stater answers existence questions.
type Stater interface {
	// PathExists follows symlinks.
	PathExists(path Path) bool

	// IsDirectory follows symlinks.
	IsDirectory(path Path) bool
}

// Handle is an exclusively owned OS file handle. Close releases it once;
// later calls return an error wrapping ErrClosed.
type Handle interface {
	Fd() uintptr
	Close() error
}

// HandleIO wraps single OS read and write calls.
type HandleIO interface {
	OpenFileForReading(path Path) (Handle, error)

	// ReadFromHandle performs one read. On failure n is -1 and the result
	// classifies the failure.
	ReadFromHandle(h Handle, buf []byte) (n int, result ReadResult, err error)

	// WriteToStdOutErr writes data to stdout or stderr.
	WriteToStdOutErr(data []byte, toStdout bool) WriteResult
}

// PipeChannel is a byte pipe with a receive and a send endpoint.
type PipeChannel interface {
	// Send writes all of p in one call. A short write is an error.
	Send(p []byte) error

	// Receive performs one read into p. On failure n is -1 and the result
	// classifies the failure.
	Receive(p []byte) (n int, result ReadResult, err error)

	// Inheritable reports whether child processes inherit the endpoints.
	Inheritable() bool

	// ReceiveFile returns a duplicate of the receive endpoint, suitable for
	// passing to a child process. The caller owns it.
	ReceiveFile() (*os.File, error)

	// SendFile returns a duplicate of the send endpoint.
	SendFile() (*os.File, error)

	// Close releases both endpoints.
	Close() error
}

// PipeFactory creates pipes. Failure to create a pipe is fatal.
type PipeFactory interface {
	CreatePipe() PipeChannel
}

// Inspector answers questions about the host and the process environment.
type Inspector interface {
	CanReadFile(path Path) bool
	CanExecuteFile(path Path) bool
	CanAccessDirectory(path Path) bool

	// MakeCanonical resolves symlinks and returns the absolute real path.
	MakeCanonical(path Path) (Path, error)

	// ReadDirectorySymlink returns the target of a symlink or junction.
	ReadDirectorySymlink(path Path) (string, error)

	// SyncFile flushes path to stable storage. Failure is fatal.
	SyncFile(path Path)

	GetCwd() (Path, error)
	ChangeDirectory(path Path) error
}
