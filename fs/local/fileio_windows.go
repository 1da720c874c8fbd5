//go:build windows

package local

import (
	"golang.org/x/sys/windows"

	"github.com/jmgilman/go/hostfs/errors"
)

func sysUnlink(native string) error {
	attrs, err := fileAttributes(native)
	if err != nil {
		return err
	}
	if attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0 {
		if attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT == 0 {
			return errors.New(errors.CodeIsDirectory, "cannot unlink a directory")
		}
		return removeDirectory(native)
	}

	name, err := windows.UTF16PtrFromString(native)
	if err != nil {
		return err
	}
	return windows.DeleteFile(name)
}
