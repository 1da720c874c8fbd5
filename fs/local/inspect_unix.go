//go:build !windows

package local

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

func (p *Platform) PathExists(path core.Path) bool {
	if path.IsEmpty() {
		return false
	}
	return unix.Access(path.AsNativePath(), unix.F_OK) == nil
}

func (p *Platform) IsDirectory(path core.Path) bool {
	if path.IsEmpty() || path.IsNull() {
		return false
	}
	var st unix.Stat_t
	return unix.Stat(path.AsNativePath(), &st) == nil && uint32(st.Mode)&unix.S_IFMT == unix.S_IFDIR
}

func (p *Platform) CanReadFile(path core.Path) bool {
	return !p.IsDirectory(path) && canAccess(path, unix.R_OK)
}

func (p *Platform) CanExecuteFile(path core.Path) bool {
	return !p.IsDirectory(path) && canAccess(path, unix.X_OK)
}

func (p *Platform) CanAccessDirectory(path core.Path) bool {
	return p.IsDirectory(path) && canAccess(path, unix.R_OK|unix.W_OK|unix.X_OK)
}

func canAccess(path core.Path, mode uint32) bool {
	if path.IsEmpty() {
		return false
	}
	return unix.Access(path.AsNativePath(), mode) == nil
}

func (p *Platform) MakeCanonical(path core.Path) (core.Path, error) {
	if path.IsEmpty() {
		return core.Path{}, errors.New(errors.CodeInvalidInput, "path is empty")
	}
	resolved, err := filepath.EvalSymlinks(path.AsNativePath())
	if err != nil {
		return core.Path{}, errors.WrapOS(err, "realpath", path.AsPrintablePath())
	}
	return core.NewPath(resolved), nil
}

func (p *Platform) ReadDirectorySymlink(path core.Path) (string, error) {
	target, err := os.Readlink(path.AsNativePath())
	if err != nil {
		return "", errors.WrapOS(err, "readlink", path.AsPrintablePath())
	}
	return target, nil
}

// SyncFile fsyncs path. Failure is fatal.
func (p *Platform) SyncFile(path core.Path) {
	fd, err := unix.Open(path.AsNativePath(), unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		p.fail(core.ExitLocalEnvironmentalError, "failed to open '%s' for syncing: %v", path.AsPrintablePath(), err)
		return
	}
	defer unix.Close(fd)

	if err := unix.Fsync(fd); err != nil {
		p.fail(core.ExitLocalEnvironmentalError, "failed to sync '%s': %v", path.AsPrintablePath(), err)
	}
}

func normalizeCwd(cwd string) string {
	return cwd
}
