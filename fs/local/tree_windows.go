//go:build windows

package local

import (
	"io/fs"
	"os"
	"strconv"

	"golang.org/x/sys/windows"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

// MakeDirectories creates path and its ancestors. mode is accepted but not
// enforced. A directory or junction already at path is success.
func (p *Platform) MakeDirectories(path core.Path, mode fs.FileMode) error {
	if path.IsEmpty() {
		return errRefuseTarget(path)
	}

	native := path.AsNativePath()
	if path.IsRoot() || isDirectoryOrJunction(native) {
		return nil
	}

	if err := p.MakeDirectories(path.GetParent(), mode); err != nil {
		return err
	}

	name, err := windows.UTF16PtrFromString(native)
	if err != nil {
		return errors.WrapOS(err, "mkdir", path.AsPrintablePath())
	}
	if err := windows.CreateDirectory(name, nil); err != nil {
		if err == windows.ERROR_ALREADY_EXISTS {
			if isDirectoryOrJunction(native) {
				p.debug("directory appeared concurrently", "path", path.AsPrintablePath())
				return nil
			}
			return errors.WrapWithContext(err, errors.CodeNotDirectory, "mkdir failed",
				map[string]interface{}{"op": "mkdir", "path": path.AsPrintablePath()})
		}
		return errors.WrapOS(err, "mkdir", path.AsPrintablePath())
	}

	p.debug("directory created", "path", path.AsPrintablePath())
	return nil
}

// RemoveRecursively removes path. Junctions are removed as single entries.
func (p *Platform) RemoveRecursively(path core.Path) error {
	native := path.AsNativePath()
	attrs, err := fileAttributes(native)
	if err != nil {
		if errors.CodeForOS(err) == errors.CodeNotFound {
			return nil
		}
		return errors.WrapOS(err, "stat", path.AsPrintablePath())
	}

	if attrs&windows.FILE_ATTRIBUTE_DIRECTORY == 0 {
		return p.UnlinkPath(path)
	}
	if attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT == 0 {
		if err := p.removeContents(path); err != nil {
			return err
		}
	}
	if err := removeDirectory(native); err != nil {
		return errors.WrapOS(err, "rmdir", path.AsPrintablePath())
	}
	return nil
}

func (p *Platform) removeContents(path core.Path) error {
	var childErr error
	err := findEntries(path.AsNativePath(), func(name string, _ uint32) bool {
		childErr = p.RemoveRecursively(path.GetRelative(name))
		return childErr == nil
	})
	if childErr != nil {
		return childErr
	}
	if err != nil && errors.CodeForOS(err) != errors.CodeNotFound {
		return errors.WrapOS(err, "readdir", path.AsPrintablePath())
	}
	return nil
}

// RenameDirectory moves with a single MoveFileEx call.
func (p *Platform) RenameDirectory(oldPath, newPath core.Path) (core.RenameOutcome, error) {
	from, err := windows.UTF16PtrFromString(oldPath.AsNativePath())
	if err != nil {
		return renameFailure(err, false, oldPath, newPath)
	}
	to, err := windows.UTF16PtrFromString(newPath.AsNativePath())
	if err != nil {
		return renameFailure(err, false, oldPath, newPath)
	}

	flags := uint32(windows.MOVEFILE_COPY_ALLOWED | windows.MOVEFILE_FAIL_IF_NOT_TRACKABLE | windows.MOVEFILE_WRITE_THROUGH)
	if err := windows.MoveFileEx(from, to, flags); err != nil {
		return renameFailure(err, err == windows.ERROR_ALREADY_EXISTS, oldPath, newPath)
	}
	return core.RenameSuccess, nil
}

// CreateSiblingTempDir creates "<other>.tmp.<pid>".
func (p *Platform) CreateSiblingTempDir(other core.Path) core.Path {
	path := other.GetParent().GetRelative(other.GetBaseName() + ".tmp." + strconv.Itoa(os.Getpid()))
	if err := p.MakeDirectories(path, 0o777); err != nil {
		p.fail(core.ExitInternalError, "couldn't create '%s': %v", path.AsPrintablePath(), err)
		return core.Path{}
	}
	return path
}

func fileAttributes(native string) (uint32, error) {
	name, err := windows.UTF16PtrFromString(native)
	if err != nil {
		return 0, err
	}
	return windows.GetFileAttributes(name)
}

func isDirectoryOrJunction(native string) bool {
	attrs, err := fileAttributes(native)
	return err == nil && attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0
}

func removeDirectory(native string) error {
	name, err := windows.UTF16PtrFromString(native)
	if err != nil {
		return err
	}
	return windows.RemoveDirectory(name)
}
