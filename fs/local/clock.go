package local

import (
	"context"
	"os"
	"time"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

func (p *Platform) setMtime(path core.Path, mtime time.Time) error {
	if err := os.Chtimes(path.AsNativePath(), mtime, mtime); err != nil {
		return errors.WrapOS(err, "set mtime", path.AsPrintablePath())
	}
	return nil
}

func (p *Platform) SetMtimeToNow(path core.Path) error {
	return p.setMtime(path, p.clock.Now())
}

// SetMtimeToNowIfPossible treats a read-only filesystem or a permission
// denial as success.
func (p *Platform) SetMtimeToNowIfPossible(path core.Path) error {
	err := p.SetMtimeToNow(path)
	if err == nil {
		return nil
	}

	switch errors.GetCode(err) {
	case errors.CodeReadOnly, errors.CodeForbidden:
		p.logger.Warn(context.Background(), "mtime not writable, continuing",
			"path", path.AsPrintablePath(), "error", err.Error())
		return nil
	}
	return err
}

func (p *Platform) SetMtimeToDistantFuture(path core.Path) error {
	return p.setMtime(path, p.markers.DistantFuture)
}

// IsUntampered compares against the near-future marker so a stamp that
// lost precision still passes.
func (p *Platform) IsUntampered(path core.Path) bool {
	if path.IsEmpty() || path.IsNull() {
		return false
	}

	info, err := os.Stat(path.AsNativePath())
	if err != nil {
		return false
	}
	if info.IsDir() {
		return true
	}
	return !info.ModTime().Before(p.markers.NearFuture)
}
