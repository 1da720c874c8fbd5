package installbase

import (
	"context"
	"io/fs"
	"path"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
	"github.com/jmgilman/go/hostfs/logging"
)

// Installer extracts and verifies install bases on a Tree.
type Installer struct {
	tree        core.Tree
	logger      *logging.Logger
	dirMode     fs.FileMode
	fileMode    fs.FileMode
	parallelism int
}

// Option configures an Installer.
type Option func(*Installer)

// WithLogger sets the logger.
func WithLogger(logger *logging.Logger) Option {
	return func(i *Installer) {
		i.logger = logger
	}
}

// WithDirMode sets the mode of created directories. Default 0755.
func WithDirMode(mode fs.FileMode) Option {
	return func(i *Installer) {
		i.dirMode = mode
	}
}

// WithFileMode sets the mode of files written by Extract. Default 0644.
// ExtractFS keeps the source permissions.
func WithFileMode(mode fs.FileMode) Option {
	return func(i *Installer) {
		i.fileMode = mode
	}
}

// WithParallelism bounds concurrent checks in Verify. Default GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(i *Installer) {
		if n > 0 {
			i.parallelism = n
		}
	}
}

// New creates an Installer over tree.
func New(tree core.Tree, opts ...Option) *Installer {
	i := &Installer{
		tree:        tree,
		logger:      logging.NewNopLogger(),
		dirMode:     0o755,
		fileMode:    0o644,
		parallelism: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Result describes a finished extraction.
type Result struct {
	Target core.Path
	// Files is the number of files written. Zero when AlreadyInstalled.
	Files int
	// AlreadyInstalled is set when another extraction populated Target
	// first. The staged copy has been removed.
	AlreadyInstalled bool
}

// Extract installs files at target. Keys are slash-separated paths relative
// to target; they may not be absolute or climb out of it.
func (i *Installer) Extract(ctx context.Context, target core.Path, files map[string][]byte) (Result, error) {
	names := make([]string, 0, len(files))
	byClean := make(map[string][]byte, len(files))
	for name, data := range files {
		clean, err := cleanName(name)
		if err != nil {
			return Result{}, err
		}
		if _, dup := byClean[clean]; dup {
			return Result{}, errors.WithContext(
				errors.Newf(errors.CodeInvalidInput, "more than one entry names %q", clean),
				"name", name)
		}
		byClean[clean] = data
		names = append(names, clean)
	}
	slices.Sort(names)

	return i.install(ctx, "extract", target, func(staging core.Path) error {
		for _, name := range names {
			dest := staging.GetRelative(filepath.FromSlash(name))
			if parent := dest.GetParent(); parent != staging {
				if err := i.tree.MakeDirectories(parent, i.dirMode); err != nil {
					return err
				}
			}
			if err := i.tree.WriteFile(byClean[name], dest, i.fileMode); err != nil {
				return err
			}
		}
		return nil
	})
}

// ExtractFS installs every regular file under root in src at target.
func (i *Installer) ExtractFS(ctx context.Context, target core.Path, src fs.FS, root string) (Result, error) {
	return i.install(ctx, "extract_fs", target, func(staging core.Path) error {
		return core.CopyFromFS(src, root, i.tree, staging, i.dirMode)
	})
}

func (i *Installer) install(ctx context.Context, op string, target core.Path, populate func(staging core.Path) error) (result Result, err error) {
	if target.IsEmpty() || target.IsNull() {
		return Result{}, errors.New(errors.CodeInvalidInput, "install target is empty")
	}

	start := time.Now()
	defer func() {
		logging.LogOperation(ctx, i.logger, op, target.AsPrintablePath(), time.Since(start), err)
	}()

	staging := i.tree.CreateSiblingTempDir(target)
	discard := func() {
		if rmErr := i.tree.RemoveRecursively(staging); rmErr != nil {
			i.logger.Warn(ctx, "could not remove staging directory",
				"path", staging.AsPrintablePath(), "error", rmErr.Error())
		}
	}

	if err := populate(staging); err != nil {
		discard()
		err = errors.Wrap(err, errors.CodeForOS(err), "could not populate staging directory")
		return Result{}, errors.WithContext(err, "staging", staging.AsPrintablePath())
	}
	if err := ctx.Err(); err != nil {
		discard()
		return Result{}, errors.Wrap(err, errors.CodeInterrupted, "extraction cancelled")
	}

	written := i.tree.GetAllFilesUnder(staging)
	for _, file := range written {
		if err := i.tree.SetMtimeToDistantFuture(file); err != nil {
			if errors.GetCode(err) != errors.CodeUnsupported {
				discard()
				return Result{}, err
			}
			i.logger.Debug(ctx, "backend cannot stamp files", "path", file.AsPrintablePath())
		}
	}

	outcome, err := i.tree.RenameDirectory(staging, target)
	switch outcome {
	case core.RenameSuccess:
		return Result{Target: target, Files: len(written)}, nil
	case core.RenameFailureNotEmpty:
		i.logger.Info(ctx, "install base already present", "path", target.AsPrintablePath())
		discard()
		return Result{Target: target, AlreadyInstalled: true}, nil
	default:
		discard()
		return Result{}, err
	}
}

func cleanName(name string) (string, error) {
	clean := path.Clean(name)
	if name == "" || path.IsAbs(name) || clean == "." || clean == ".." || strings.HasPrefix(clean, "../") ||
		filepath.VolumeName(filepath.FromSlash(name)) != "" {
		return "", errors.WithContext(
			errors.New(errors.CodeInvalidInput, "file name must be relative and stay inside the install base"),
			"name", name)
	}
	return clean, nil
}
