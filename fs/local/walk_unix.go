//go:build !windows

package local

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/hostfs/fs/core"
)

// forEachEntry takes the entry type from the directory stream and falls
// back to lstat when the filesystem does not report one. Anything that is
// not an openable directory yields no callbacks; a failed lstat is fatal.
func (p *Platform) forEachEntry(path core.Path, consume core.DirectoryEntryConsumer) {
	native := path.AsNativePath()
	fd, err := unix.Open(native, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		p.debug("directory not opened", "path", native, "error", err.Error())
		return
	}
	dir := os.NewFile(uintptr(fd), native)
	defer dir.Close()

	entries, err := dir.ReadDir(-1)
	for _, entry := range entries {
		consume.Consume(path.GetRelative(entry.Name()), entry.Type().IsDir())
	}
	if err != nil {
		p.fail(core.ExitInternalError, "stat failed for entry under '%s': %v", path.AsPrintablePath(), err)
	}
}
