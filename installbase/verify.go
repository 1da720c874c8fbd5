package installbase

import (
	"context"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

// Report is the outcome of Verify.
type Report struct {
	Target  core.Path
	Checked int
	// Tampered is sorted by path.
	Tampered []core.Path
}

// OK reports whether every checked file carries the marker.
func (r Report) OK() bool {
	return len(r.Tampered) == 0
}

// Verify checks every file under target with IsUntampered.
func (i *Installer) Verify(ctx context.Context, target core.Path) (Report, error) {
	if !i.tree.IsDirectory(target) {
		return Report{}, errors.WithContext(
			errors.New(errors.CodeNotFound, "install base does not exist"),
			"path", target.AsPrintablePath())
	}

	files := i.tree.GetAllFilesUnder(target)

	var (
		mu       sync.Mutex
		tampered []core.Path
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.parallelism)
	for _, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if i.tree.IsUntampered(file) {
				return nil
			}
			mu.Lock()
			tampered = append(tampered, file)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, errors.Wrap(err, errors.CodeInterrupted, "verification cancelled")
	}

	slices.SortFunc(tampered, func(a, b core.Path) int {
		return strings.Compare(a.AsPrintablePath(), b.AsPrintablePath())
	})
	if len(tampered) > 0 {
		i.logger.Warn(ctx, "install base modified", "path", target.AsPrintablePath(), "tampered", len(tampered))
	}
	return Report{Target: target, Checked: len(files), Tampered: tampered}, nil
}
