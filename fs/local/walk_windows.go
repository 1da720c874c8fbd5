//go:build windows

package local

import (
	"golang.org/x/sys/windows"

	"github.com/jmgilman/go/hostfs/fs/core"
)

func (p *Platform) forEachEntry(path core.Path, consume core.DirectoryEntryConsumer) {
	_ = findEntries(path.AsNativePath(), func(name string, attrs uint32) bool {
		isDir := attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0
		isJunction := attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0
		consume.Consume(path.GetRelative(name), isDir && !isJunction)
		return true
	})
}

// findEntries enumerates the children of the native directory dir, skipping
// "." and "..". Enumeration stops when visit returns false. A directory that
// cannot be opened returns the FindFirstFile error.
func findEntries(dir string, visit func(name string, attrs uint32) bool) error {
	pattern, err := windows.UTF16PtrFromString(dir + `\*`)
	if err != nil {
		return err
	}

	var data windows.Win32finddata
	h, err := windows.FindFirstFile(pattern, &data)
	if err != nil {
		return err
	}
	defer windows.FindClose(h)

	for {
		name := windows.UTF16ToString(data.FileName[:])
		if name != "." && name != ".." {
			if !visit(name, data.FileAttributes) {
				return nil
			}
		}
		if err := windows.FindNextFile(h, &data); err != nil {
			if err == windows.ERROR_NO_MORE_FILES {
				return nil
			}
			return err
		}
	}
}
