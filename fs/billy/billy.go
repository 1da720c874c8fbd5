package billy

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
	"github.com/jmgilman/go/hostfs/logging"
)

// Tree adapts a billy.Filesystem to core.Tree.
type Tree struct {
	mu  sync.Mutex
	bfs billy.Filesystem

	// root is the host directory the billy root stands for. Empty for memory
	// trees, whose names are the printable path with any volume removed.
	root   string
	fsType core.FSType

	logger  *logging.Logger
	failer  core.Failer
	clock   core.Clock
	markers core.Markers
}

var _ core.Tree = (*Tree)(nil)

// Option configures a Tree.
type Option func(*Tree)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *logging.Logger) Option {
	return func(t *Tree) {
		t.logger = logger
	}
}

// WithClock replaces the wall clock and derives the integrity markers from it.
func WithClock(clock core.Clock) Option {
	return func(t *Tree) {
		t.clock = clock
		t.markers = core.NewMarkers(clock.Now())
	}
}

// WithFailer sets the collaborator invoked on fatal conditions.
func WithFailer(failer core.Failer) Option {
	return func(t *Tree) {
		t.failer = failer
	}
}

// NewMemory creates an empty in-memory tree. Any absolute path is valid.
func NewMemory(opts ...Option) *Tree {
	return newTree(memfs.New(), "", core.FSTypeMemory, opts)
}

// NewOS creates a tree confined to the host directory root. Paths outside
// root are rejected with INVALID_INPUT.
//
// osfs creates every directory with mode 0755 and offers no chmod, so the
// mode passed to MakeDirectories is ignored and staging directories from
// CreateSiblingTempDir are 0755 rather than 0777 minus the umask. Use
// fs/local when directory modes matter.
func NewOS(root string, opts ...Option) (*Tree, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeInvalidInput, "invalid root %q", root)
	}
	return newTree(osfs.New(abs), abs, core.FSTypeLocal, opts), nil
}

func newTree(bfs billy.Filesystem, root string, fsType core.FSType, opts []Option) *Tree {
	t := &Tree{
		bfs:     bfs,
		root:    root,
		fsType:  fsType,
		logger:  logging.NewNopLogger(),
		clock:   core.SystemClock{},
		markers: core.ProcessMarkers(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.failer == nil {
		t.failer = core.NewExitFailer(t.logger)
	}
	return t
}

// Unwrap returns the underlying billy.Filesystem.
// Calls made on it directly bypass the Tree's lock.
func (t *Tree) Unwrap() billy.Filesystem {
	return t.bfs
}

// Type returns the filesystem type.
func (t *Tree) Type() core.FSType {
	return t.fsType
}

// Markers returns the integrity markers this Tree stamps and checks.
func (t *Tree) Markers() core.Markers {
	return t.markers
}

// name converts path into the slash-separated name billy expects.
func (t *Tree) name(path core.Path) (string, error) {
	if path.IsEmpty() {
		return "", errors.New(errors.CodeInvalidInput, "path is empty")
	}
	p := path.AsPrintablePath()

	if t.root == "" {
		return filepath.ToSlash(strings.TrimPrefix(p, filepath.VolumeName(p))), nil
	}

	rel, err := filepath.Rel(t.root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		err := errors.WithContext(errors.New(errors.CodeInvalidInput, "path is outside the tree"), "path", p)
		return "", errors.WithContext(err, "root", t.root)
	}
	return filepath.ToSlash(rel), nil
}

func (t *Tree) stat(path core.Path) (fs.FileInfo, error) {
	name, err := t.name(path)
	if err != nil {
		return nil, err
	}
	info, err := t.bfs.Stat(name)
	if err != nil {
		return nil, errors.WrapOS(err, "stat", path.AsPrintablePath())
	}
	return info, nil
}

func (t *Tree) lstat(path core.Path) (fs.FileInfo, error) {
	name, err := t.name(path)
	if err != nil {
		return nil, err
	}
	info, err := t.bfs.Lstat(name)
	if err != nil {
		return nil, errors.WrapOS(err, "lstat", path.AsPrintablePath())
	}
	return info, nil
}

func (t *Tree) PathExists(path core.Path) bool {
	if path.IsNull() {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	_, err := t.stat(path)
	return err == nil
}

func (t *Tree) IsDirectory(path core.Path) bool {
	if path.IsNull() {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.isDirectory(path)
}

func (t *Tree) isDirectory(path core.Path) bool {
	info, err := t.stat(path)
	return err == nil && info.IsDir()
}

func (t *Tree) fail(code core.ExitCode, format string, args ...any) {
	t.failer.Fail(code, fmt.Sprintf(format, args...))
}

func (t *Tree) debug(msg string, args ...any) {
	t.logger.Debug(context.Background(), msg, args...)
}
