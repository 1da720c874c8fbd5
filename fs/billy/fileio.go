package billy

import (
	"io"
	"io/fs"
	"os"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

func (t *Tree) ReadFile(path core.Path, maxSize int) ([]byte, error) {
	if path.IsNull() {
		return []byte{}, nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	name, err := t.name(path)
	if err != nil {
		return nil, err
	}
	f, err := t.bfs.Open(name)
	if err != nil {
		return nil, errors.WrapOS(err, "open", path.AsPrintablePath())
	}
	defer f.Close()

	var r io.Reader = f
	if maxSize > 0 {
		r = io.LimitReader(f, int64(maxSize))
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapOS(err, "read", path.AsPrintablePath())
	}
	return content, nil
}

func (t *Tree) ReadFileInto(path core.Path, buf []byte) error {
	if path.IsNull() {
		if len(buf) == 0 {
			return nil
		}
		return errShortRead(path, 0, len(buf))
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	name, err := t.name(path)
	if err != nil {
		return err
	}
	f, err := t.bfs.Open(name)
	if err != nil {
		return errors.WrapOS(err, "open", path.AsPrintablePath())
	}
	defer f.Close()

	n, err := io.ReadFull(f, buf)
	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		return errShortRead(path, n, len(buf))
	case err != nil:
		return errors.WrapOS(err, "read", path.AsPrintablePath())
	}
	return nil
}

func errShortRead(path core.Path, got, want int) error {
	return errors.WithContext(
		errors.Newf(errors.CodeIO, "file ended after %d of %d bytes", got, want),
		"path", path.AsPrintablePath())
}

// WriteFile replaces path with data. The parent directory must already
// exist; billy filesystems would otherwise create it silently.
func (t *Tree) WriteFile(data []byte, path core.Path, perm fs.FileMode) error {
	if path.IsEmpty() {
		return errors.New(errors.CodeInvalidInput, "path is empty")
	}
	if path.IsNull() {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	name, err := t.name(path)
	if err != nil {
		return err
	}
	if parent := path.GetParent(); !parent.IsRoot() && !t.isDirectory(parent) {
		return errors.WithContext(
			errors.New(errors.CodeNotFound, "parent directory does not exist"),
			"path", path.AsPrintablePath())
	}

	if info, err := t.lstat(path); err == nil {
		if info.IsDir() {
			return errors.WithContext(errors.New(errors.CodeIsDirectory, "path is a directory"),
				"path", path.AsPrintablePath())
		}
		if err := t.remove(path); err != nil {
			return err
		}
	}

	f, err := t.bfs.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return errors.WrapOS(err, "open", path.AsPrintablePath())
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.WrapOS(err, "write", path.AsPrintablePath())
	}
	if err := f.Close(); err != nil {
		return errors.WrapOS(err, "close", path.AsPrintablePath())
	}
	return nil
}

// UnlinkPath removes a single file or symlink. Directories are refused.
func (t *Tree) UnlinkPath(path core.Path) error {
	if path.IsEmpty() || path.IsNull() {
		return errors.WithContext(
			errors.New(errors.CodeInvalidInput, "refusing to unlink an empty path or the null device"),
			"path", path.AsPrintablePath())
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	info, err := t.lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return errors.WithContext(errors.New(errors.CodeIsDirectory, "refusing to unlink a directory"),
			"path", path.AsPrintablePath())
	}
	return t.remove(path)
}
