//go:build !windows

package local

import (
	"io/fs"
	"os"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

// MakeDirectories is mkdir -p with a final permission guarantee. The target
// must end up a directory owned by the effective user whose mode equals mode
// minus the umask. Ancestors are only required to be directories.
func (p *Platform) MakeDirectories(path core.Path, mode fs.FileMode) error {
	return p.makeDirectories(path, uint32(mode.Perm()), true)
}

func (p *Platform) makeDirectories(path core.Path, mode uint32, childmost bool) error {
	if path.IsEmpty() || path.IsRoot() {
		return errRefuseTarget(path)
	}

	native := path.AsNativePath()
	err := p.checkDirectory(native, mode, childmost)
	if err == nil {
		return nil
	}
	if err != unix.ENOENT {
		return errors.WrapOS(err, "mkdir", path.AsPrintablePath())
	}

	if err := p.makeDirectories(path.GetParent(), mode, false); err != nil {
		return err
	}

	if err := unix.Mkdir(native, mode); err != nil {
		if err != unix.EEXIST {
			return errors.WrapOS(err, "mkdir", path.AsPrintablePath())
		}
		// Another caller created it first. Ancestors are accepted as they
		// are; a non-directory there fails one level down.
		p.debug("directory appeared concurrently", "path", path.AsPrintablePath(), "childmost", childmost)
		if !childmost {
			return nil
		}
		if err := p.checkDirectory(native, mode, true); err != nil {
			return errors.WrapOS(err, "mkdir", path.AsPrintablePath())
		}
		return nil
	}

	p.debug("directory created", "path", path.AsPrintablePath())
	return nil
}

// checkDirectory stats native and requires a directory. With checkPerms it
// also requires the entry itself (not a symlink target) to be owned by the
// effective user and corrects the mode. Errors are raw errnos.
func (p *Platform) checkDirectory(native string, mode uint32, checkPerms bool) error {
	var st unix.Stat_t
	if err := unix.Stat(native, &st); err != nil {
		return err
	}
	if uint32(st.Mode)&unix.S_IFMT != unix.S_IFDIR {
		return unix.ENOTDIR
	}
	if !checkPerms {
		return nil
	}

	var link unix.Stat_t
	if err := unix.Lstat(native, &link); err != nil {
		return err
	}
	if int(link.Uid) != unix.Geteuid() {
		return unix.EACCES
	}

	want := mode &^ currentUmask()
	if uint32(st.Mode)&0o777 != want {
		if err := unix.Chmod(native, want); err != nil {
			return err
		}
		p.debug("directory permissions corrected", "path", native, "mode", want)
	}
	return nil
}

// RemoveRecursively removes path. Symlinks to directories are unlinked,
// never followed.
func (p *Platform) RemoveRecursively(path core.Path) error {
	native := path.AsNativePath()

	var st unix.Stat_t
	if err := unix.Lstat(native, &st); err != nil {
		if err == unix.ENOENT {
			return nil
		}
		return errors.WrapOS(err, "lstat", path.AsPrintablePath())
	}

	if uint32(st.Mode)&unix.S_IFMT != unix.S_IFDIR {
		return p.UnlinkPath(path)
	}

	dir, err := os.Open(native)
	if err != nil {
		return errors.WrapOS(err, "opendir", path.AsPrintablePath())
	}
	names, err := dir.Readdirnames(-1)
	closeErr := dir.Close()
	if err != nil {
		return errors.WrapOS(err, "readdir", path.AsPrintablePath())
	}
	if closeErr != nil {
		return errors.WrapOS(closeErr, "closedir", path.AsPrintablePath())
	}

	for _, name := range names {
		if err := p.RemoveRecursively(path.GetRelative(name)); err != nil {
			return err
		}
	}

	if err := unix.Rmdir(native); err != nil {
		return errors.WrapOS(err, "rmdir", path.AsPrintablePath())
	}
	return nil
}

// RenameDirectory renames with a single rename(2).
func (p *Platform) RenameDirectory(oldPath, newPath core.Path) (core.RenameOutcome, error) {
	err := unix.Rename(oldPath.AsNativePath(), newPath.AsNativePath())
	if err == nil {
		return core.RenameSuccess, nil
	}
	return renameFailure(err, err == unix.ENOTEMPTY || err == unix.EEXIST, oldPath, newPath)
}

// CreateSiblingTempDir creates "<other>.tmp.<random>" with mode 0777 minus
// the umask.
func (p *Platform) CreateSiblingTempDir(other core.Path) core.Path {
	parent := other.GetParent()
	if !p.PathExists(parent) {
		if err := p.MakeDirectories(parent, 0o777); err != nil {
			p.fail(core.ExitInternalError, "couldn't create '%s': %v", parent.AsPrintablePath(), err)
			return core.Path{}
		}
	}

	dir, err := os.MkdirTemp(parent.AsNativePath(), other.GetBaseName()+".tmp.*")
	if err != nil {
		p.fail(core.ExitLocalEnvironmentalError,
			"could not create temporary directory under %s to extract install base into (%v)",
			parent.AsPrintablePath(), err)
		return core.Path{}
	}

	if err := unix.Chmod(dir, 0o777&^currentUmask()); err != nil {
		p.debug("could not widen staging directory mode", "path", dir, "error", err)
	}
	return core.NewPath(dir)
}
