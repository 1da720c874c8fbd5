package billy

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/util"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

// MakeDirectories creates path and its missing ancestors one level at a
// time, so a regular file anywhere on the way fails with NOT_DIRECTORY.
func (t *Tree) MakeDirectories(path core.Path, mode fs.FileMode) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.makeDirectories(path, mode.Perm())
}

func (t *Tree) makeDirectories(path core.Path, mode fs.FileMode) error {
	if path.IsEmpty() || path.IsRoot() || path.IsNull() {
		return errors.WithContext(
			errors.New(errors.CodeForbidden, "refusing to create an empty or root directory"),
			"path", path.AsPrintablePath())
	}

	info, err := t.stat(path)
	if err == nil {
		if !info.IsDir() {
			return errors.WithContext(
				errors.New(errors.CodeNotDirectory, "path exists and is not a directory"),
				"path", path.AsPrintablePath())
		}
		return nil
	}
	if errors.GetCode(err) != errors.CodeNotFound {
		return err
	}

	if parent := path.GetParent(); !parent.IsRoot() {
		if err := t.makeDirectories(parent, mode); err != nil {
			return err
		}
	}

	name, err := t.name(path)
	if err != nil {
		return err
	}
	if err := t.bfs.MkdirAll(name, mode); err != nil {
		return errors.WrapOS(err, "mkdir", path.AsPrintablePath())
	}
	t.debug("directory created", "path", path.AsPrintablePath())
	return nil
}

// RemoveRecursively removes path depth first. Symlinks are removed, never
// followed.
func (t *Tree) RemoveRecursively(path core.Path) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.removeRecursively(path)
}

func (t *Tree) removeRecursively(path core.Path) error {
	info, err := t.lstat(path)
	if err != nil {
		if errors.GetCode(err) == errors.CodeNotFound {
			return nil
		}
		return err
	}

	if info.IsDir() {
		children, err := t.readDir(path)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err := t.removeRecursively(path.GetRelative(child.Name())); err != nil {
				return err
			}
		}
	}

	return t.remove(path)
}

func (t *Tree) remove(path core.Path) error {
	name, err := t.name(path)
	if err != nil {
		return err
	}
	if err := t.bfs.Remove(name); err != nil {
		return errors.WrapOS(err, "remove", path.AsPrintablePath())
	}
	return nil
}

func (t *Tree) readDir(path core.Path) ([]fs.FileInfo, error) {
	name, err := t.name(path)
	if err != nil {
		return nil, err
	}
	infos, err := t.bfs.ReadDir(name)
	if err != nil {
		return nil, errors.WrapOS(err, "readdir", path.AsPrintablePath())
	}
	return infos, nil
}

// RenameDirectory moves oldPath to newPath. A non-empty directory at newPath
// yields RenameFailureNotEmpty. On OS trees this is a single rename, which
// also replaces an empty directory at newPath. Memory trees copy the subtree
// and then remove the source, because memfs renames entries one at a time
// in map order and drops nested directories from listings.
func (t *Tree) RenameDirectory(oldPath, newPath core.Path) (core.RenameOutcome, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fail := func(code errors.ErrorCode, err error) (core.RenameOutcome, error) {
		ctx := map[string]interface{}{
			"op":     "rename",
			"path":   oldPath.AsPrintablePath(),
			"target": newPath.AsPrintablePath(),
		}
		if code == errors.CodeNotEmpty {
			return core.RenameFailureNotEmpty, errors.WrapWithContext(err, code, "rename target is not empty", ctx)
		}
		return core.RenameFailureOtherError, errors.WrapWithContext(err, code, "rename failed", ctx)
	}

	oldName, err := t.name(oldPath)
	if err != nil {
		return fail(errors.CodeInvalidInput, err)
	}
	newName, err := t.name(newPath)
	if err != nil {
		return fail(errors.CodeInvalidInput, err)
	}

	if _, err := t.lstat(oldPath); err != nil {
		return fail(errors.GetCode(err), err)
	}
	if oldName == newName {
		return core.RenameSuccess, nil
	}

	var existing fs.FileInfo
	if info, err := t.lstat(newPath); err == nil {
		if !info.IsDir() {
			return fail(errors.CodeNotDirectory, errors.New(errors.CodeNotDirectory, "rename target is not a directory"))
		}
		children, err := t.readDir(newPath)
		if err != nil {
			return fail(errors.GetCode(err), err)
		}
		if len(children) > 0 {
			return fail(errors.CodeNotEmpty, errors.New(errors.CodeNotEmpty, "directory not empty"))
		}
		existing = info
	}

	if t.fsType != core.FSTypeMemory {
		if err := t.bfs.Rename(oldName, newName); err != nil {
			code := errors.CodeForOS(err)
			if code == errors.CodeAlreadyExists {
				code = errors.CodeNotEmpty
			}
			return fail(code, err)
		}
		return core.RenameSuccess, nil
	}

	if strings.HasPrefix(newName, strings.TrimSuffix(oldName, "/")+"/") {
		return fail(errors.CodeInvalidInput, errors.New(errors.CodeInvalidInput, "cannot move a directory into itself"))
	}
	if parent := newPath.GetParent(); !parent.IsRoot() && !t.isDirectory(parent) {
		return fail(errors.CodeNotFound, errors.New(errors.CodeNotFound, "rename target parent does not exist"))
	}

	if err := t.copyTree(oldPath, newPath); err != nil {
		// Put newPath back the way it was.
		if rmErr := t.removeRecursively(newPath); rmErr == nil && existing != nil {
			_ = t.bfs.MkdirAll(newName, existing.Mode().Perm())
		}
		return fail(errors.CodeForOS(err), err)
	}
	if err := t.removeRecursively(oldPath); err != nil {
		return fail(errors.CodeForOS(err), err)
	}
	return core.RenameSuccess, nil
}

// copyTree recreates src at dst, parents before children. Symlinks are
// copied as links.
func (t *Tree) copyTree(src, dst core.Path) error {
	info, err := t.lstat(src)
	if err != nil {
		return err
	}
	srcName, err := t.name(src)
	if err != nil {
		return err
	}
	dstName, err := t.name(dst)
	if err != nil {
		return err
	}

	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		target, err := t.bfs.Readlink(srcName)
		if err != nil {
			return errors.WrapOS(err, "readlink", src.AsPrintablePath())
		}
		if err := t.bfs.Symlink(target, dstName); err != nil {
			return errors.WrapOS(err, "symlink", dst.AsPrintablePath())
		}
		return nil

	case info.IsDir():
		if err := t.bfs.MkdirAll(dstName, info.Mode().Perm()); err != nil {
			return errors.WrapOS(err, "mkdir", dst.AsPrintablePath())
		}
		children, err := t.readDir(src)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err := t.copyTree(src.GetRelative(child.Name()), dst.GetRelative(child.Name())); err != nil {
				return err
			}
		}
		return nil

	default:
		return t.copyFile(srcName, dstName, info.Mode().Perm(), dst)
	}
}

func (t *Tree) copyFile(srcName, dstName string, perm fs.FileMode, dst core.Path) error {
	in, err := t.bfs.Open(srcName)
	if err != nil {
		return errors.WrapOS(err, "open", srcName)
	}
	defer in.Close()

	out, err := t.bfs.OpenFile(dstName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return errors.WrapOS(err, "open", dst.AsPrintablePath())
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.WrapOS(err, "write", dst.AsPrintablePath())
	}
	if err := out.Close(); err != nil {
		return errors.WrapOS(err, "close", dst.AsPrintablePath())
	}
	return nil
}

// CreateSiblingTempDir creates "<other>.tmp.<random>" next to other.
func (t *Tree) CreateSiblingTempDir(other core.Path) core.Path {
	t.mu.Lock()
	defer t.mu.Unlock()

	parent := other.GetParent()
	if !parent.IsRoot() && !t.isDirectory(parent) {
		if err := t.makeDirectories(parent, 0o777); err != nil {
			t.fail(core.ExitInternalError, "couldn't create '%s': %v", parent.AsPrintablePath(), err)
			return core.Path{}
		}
	}

	dir, err := t.name(parent)
	if err == nil {
		var created string
		created, err = util.TempDir(t.bfs, dir, other.GetBaseName()+".tmp.")
		if err == nil {
			return parent.GetRelative(filepath.Base(created))
		}
	}
	t.fail(core.ExitLocalEnvironmentalError,
		"could not create temporary directory under %s to extract install base into (%v)",
		parent.AsPrintablePath(), err)
	return core.Path{}
}
