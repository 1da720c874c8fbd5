// Package core defines the operating-system-independent contract for host
// filesystem work: directory lifecycle, byte-exact file I/O, inter-process
// pipes and install-directory integrity checking.
//
// # Interface Hierarchy
//
// Small focused interfaces compose into two larger contracts:
//
//   - DirectoryTree: MakeDirectories, RemoveRecursively, RenameDirectory, CreateSiblingTempDir
//   - DirectoryWalker: ForEachDirectoryEntry, GetAllFilesUnder
//   - FileIO: ReadFile, ReadFileInto, WriteFile, UnlinkPath
//   - IntegrityClock: SetMtimeToNow, SetMtimeToNowIfPossible, SetMtimeToDistantFuture, IsUntampered
//   - Stater: PathExists, IsDirectory
//
// Tree is the union of the above and is what both the local backend and the
// go-billy backend implement. Platform extends Tree with the operations that
// only make sense against the real host: HandleIO, PipeFactory and Inspector.
//
// # Paths
//
// Path is an immutable value holding an absolute, cleaned location. Backends
// use AsNativePath when talking to the OS and AsPrintablePath in messages:
//
//	p := core.NewPath("/opt/app/install")
//	if err := tree.MakeDirectories(p, 0o755); err != nil {
//	    return err
//	}
//
// # Failures
//
// Recoverable failures are returned as errors from the errors package.
// Conditions with no safe continuation (a staging directory that cannot be
// created, an entry that cannot be stat'ed mid-walk) go to a Failer, which
// never returns.
//
// # Provider Implementations
//
//   - github.com/jmgilman/go/hostfs/fs/local - the host OS, POSIX and Windows
//   - github.com/jmgilman/go/hostfs/fs/billy - go-billy-backed trees (memory or rooted OS)
package core
