// Package local implements core.Platform on the host operating system.
//
// The package has one shared half and two OS halves selected by build tags:
// files ending in _unix.go use golang.org/x/sys/unix and files ending in
// _windows.go use golang.org/x/sys/windows. The build tag is the only
// selection point; callers always see the same *Platform type.
//
// # Usage
//
//	p := local.New(local.WithLogger(logger))
//
//	target := core.NewPath("/var/lib/app/install")
//	staging := p.CreateSiblingTempDir(target)
//	if err := p.WriteFile(data, staging.GetRelative("bin"), 0o755); err != nil {
//	    return err
//	}
//	outcome, err := p.RenameDirectory(staging, target)
//
// # Fatal conditions
//
// CreateSiblingTempDir, CreatePipe, SyncFile and ForEachDirectoryEntry have
// no error return. When they hit a condition with no safe continuation they
// hand off to the configured core.Failer, which by default logs the message
// and exits the process with status 36 or 37.
//
// # Platform differences
//
//   - MakeDirectories enforces mode bits and ownership on POSIX only.
//   - Pipes are close-on-exec on POSIX and inheritable on Windows.
//   - CanExecuteFile on Windows checks for a .exe, .com, .cmd or .bat suffix.
//   - SyncFile is a no-op on Windows.
package local
