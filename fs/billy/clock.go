package billy

import (
	"context"
	"time"

	"github.com/go-git/go-billy/v5"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

func (t *Tree) setMtime(path core.Path, mtime time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.stat(path); err != nil {
		return err
	}

	change, ok := t.bfs.(billy.Change)
	if !ok {
		return errors.WithContext(
			errors.New(errors.CodeUnsupported, "filesystem cannot set modification times"),
			"path", path.AsPrintablePath())
	}

	name, err := t.name(path)
	if err != nil {
		return err
	}
	if err := change.Chtimes(name, mtime, mtime); err != nil {
		return errors.WrapOS(err, "set mtime", path.AsPrintablePath())
	}
	return nil
}

func (t *Tree) SetMtimeToNow(path core.Path) error {
	return t.setMtime(path, t.clock.Now())
}

// SetMtimeToNowIfPossible treats a read-only filesystem, a permission
// denial or a filesystem without modification times as success.
func (t *Tree) SetMtimeToNowIfPossible(path core.Path) error {
	err := t.SetMtimeToNow(path)
	if err == nil {
		return nil
	}

	switch errors.GetCode(err) {
	case errors.CodeReadOnly, errors.CodeForbidden, errors.CodeUnsupported:
		t.logger.Warn(context.Background(), "mtime not writable, continuing",
			"path", path.AsPrintablePath(), "error", err.Error())
		return nil
	}
	return err
}

func (t *Tree) SetMtimeToDistantFuture(path core.Path) error {
	return t.setMtime(path, t.markers.DistantFuture)
}

func (t *Tree) IsUntampered(path core.Path) bool {
	if path.IsEmpty() || path.IsNull() {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	info, err := t.stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return true
	}
	return !info.ModTime().Before(t.markers.NearFuture)
}
