//go:build windows

package local

import (
	"strings"

	"golang.org/x/sys/windows"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

// maxLongPath is the longest path GetFinalPathNameByHandle can return,
// plus the terminator.
const maxLongPath = 0x8000

var executableExtensions = []string{".exe", ".com", ".cmd", ".bat"}

// openFollowing opens native for querying, following junctions, so a
// dangling junction fails.
func openFollowing(native string, access uint32) (windows.Handle, error) {
	name, err := windows.UTF16PtrFromString(native)
	if err != nil {
		return windows.InvalidHandle, err
	}
	return windows.CreateFile(name, access, shareAll, nil, windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS, 0)
}

func (p *Platform) PathExists(path core.Path) bool {
	if path.IsEmpty() {
		return false
	}
	if path.IsNull() {
		return true
	}
	h, err := openFollowing(path.AsNativePath(), 0)
	if err != nil {
		return false
	}
	windows.CloseHandle(h)
	return true
}

func (p *Platform) IsDirectory(path core.Path) bool {
	if path.IsEmpty() || path.IsNull() {
		return false
	}
	return openedIsDirectory(path.AsNativePath(), 0)
}

func openedIsDirectory(native string, access uint32) bool {
	h, err := openFollowing(native, access)
	if err != nil {
		return false
	}
	defer windows.CloseHandle(h)

	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(h, &info); err != nil {
		return false
	}
	return info.FileAttributes&windows.FILE_ATTRIBUTE_DIRECTORY != 0
}

func (p *Platform) CanReadFile(path core.Path) bool {
	if path.IsEmpty() {
		return false
	}
	h, err := sysOpenRead(path.AsNativePath())
	if err != nil {
		return false
	}
	sysClose(h)
	return true
}

// CanExecuteFile reports a readable file with a .exe, .com, .cmd or .bat
// extension.
func (p *Platform) CanExecuteFile(path core.Path) bool {
	native := strings.ToLower(path.AsNativePath())
	for _, ext := range executableExtensions {
		if strings.HasSuffix(native, ext) {
			return p.CanReadFile(path)
		}
	}
	return false
}

func (p *Platform) CanAccessDirectory(path core.Path) bool {
	if path.IsEmpty() || path.IsNull() {
		return false
	}
	return openedIsDirectory(path.AsNativePath(), windows.GENERIC_READ|windows.GENERIC_WRITE)
}

// finalPath resolves every junction and symlink in native.
func finalPath(native string) (string, error) {
	h, err := openFollowing(native, 0)
	if err != nil {
		return "", err
	}
	defer windows.CloseHandle(h)

	buf := make([]uint16, maxLongPath)
	n, err := windows.GetFinalPathNameByHandle(h, &buf[0], uint32(len(buf)), 0)
	if err != nil {
		return "", err
	}
	if n == 0 || n >= maxLongPath {
		return "", windows.ERROR_FILENAME_EXCED_RANGE
	}
	return strings.TrimPrefix(windows.UTF16ToString(buf[:n]), `\\?\`), nil
}

// MakeCanonical returns the lower-cased real path.
func (p *Platform) MakeCanonical(path core.Path) (core.Path, error) {
	if path.IsNull() {
		return path, nil
	}
	if path.IsEmpty() {
		return core.Path{}, errors.New(errors.CodeInvalidInput, "path is empty")
	}
	resolved, err := finalPath(path.AsNativePath())
	if err != nil {
		return core.Path{}, errors.WrapOS(err, "realpath", path.AsPrintablePath())
	}
	return core.NewPath(strings.ToLower(resolved)), nil
}

func (p *Platform) ReadDirectorySymlink(path core.Path) (string, error) {
	resolved, err := finalPath(path.AsNativePath())
	if err != nil {
		return "", errors.WrapOS(err, "readlink", path.AsPrintablePath())
	}
	return resolved, nil
}

// SyncFile is a no-op on Windows.
func (p *Platform) SyncFile(path core.Path) {}

func normalizeCwd(cwd string) string {
	return strings.ToLower(cwd)
}
