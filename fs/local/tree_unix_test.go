//go:build !windows

package local

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
	"github.com/jmgilman/go/hostfs/fs/fstest"
)

func modeOf(t *testing.T, path string) os.FileMode {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return info.Mode().Perm()
}

func TestMakeDirectories_CorrectsMode(t *testing.T) {
	p := newTestPlatform()
	dir := filepath.Join(t.TempDir(), "perm")
	require.NoError(t, os.Mkdir(dir, 0o700))

	require.NoError(t, p.MakeDirectories(core.NewPath(dir), 0o755))

	want := os.FileMode(0o755 &^ currentUmask())
	require.Equal(t, want, modeOf(t, dir))
}

func TestMakeDirectories_IdempotentMode(t *testing.T) {
	p := newTestPlatform()
	dir := core.NewPath(filepath.Join(t.TempDir(), "a", "b"))

	require.NoError(t, p.MakeDirectories(dir, 0o750))
	first := modeOf(t, dir.AsNativePath())
	require.NoError(t, p.MakeDirectories(dir, 0o750))
	require.Equal(t, first, modeOf(t, dir.AsNativePath()))
}

func TestMakeDirectories_AncestorsUnchecked(t *testing.T) {
	p := newTestPlatform()
	root := t.TempDir()
	parent := filepath.Join(root, "parent")
	require.NoError(t, os.Mkdir(parent, 0o700))

	require.NoError(t, p.MakeDirectories(core.NewPath(filepath.Join(parent, "child")), 0o755))
	require.Equal(t, os.FileMode(0o700), modeOf(t, parent))
}

const foreignUID = 65534

func TestMakeDirectories_ForeignOwner(t *testing.T) {
	if os.Geteuid() != 0 {
		t.Skip("changing ownership requires root")
	}
	p := newTestPlatform()
	dir := filepath.Join(t.TempDir(), "theirs")
	require.NoError(t, os.Mkdir(dir, 0o755))
	require.NoError(t, os.Chown(dir, foreignUID, foreignUID))

	err := p.MakeDirectories(core.NewPath(dir), 0o755)
	require.Equal(t, errors.CodeForbidden, errors.GetCode(err))
}

func TestMakeDirectories_ForeignOwnedAncestor(t *testing.T) {
	if os.Geteuid() != 0 {
		t.Skip("changing ownership requires root")
	}
	p := newTestPlatform()
	parent := filepath.Join(t.TempDir(), "theirs")
	require.NoError(t, os.Mkdir(parent, 0o755))
	require.NoError(t, os.Chown(parent, foreignUID, foreignUID))

	child := filepath.Join(parent, "mine")
	require.NoError(t, p.MakeDirectories(core.NewPath(child), 0o755))
	require.DirExists(t, child)
}

func TestForEachDirectoryEntry_RegularFileNotFatal(t *testing.T) {
	p := newTestPlatform()
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	calls := 0
	p.ForEachDirectoryEntry(core.NewPath(file), core.DirectoryEntryFunc(func(core.Path, bool) {
		calls++
	}))
	require.Zero(t, calls)
	require.Empty(t, p.GetAllFilesUnder(core.NewPath(file)))
}

func TestMakeDirectories_RootRefused(t *testing.T) {
	err := newTestPlatform().MakeDirectories(core.NewPath("/"), 0o755)
	require.Equal(t, errors.CodeForbidden, errors.GetCode(err))
}

func TestMakeDirectories_ThroughSymlink(t *testing.T) {
	p := newTestPlatform()
	root := t.TempDir()
	real := filepath.Join(root, "real")
	link := filepath.Join(root, "link")
	require.NoError(t, os.Mkdir(real, 0o755))
	require.NoError(t, os.Symlink(real, link))

	// The link is ours, so the symlinked directory is accepted.
	require.NoError(t, p.MakeDirectories(core.NewPath(link), 0o755))
}

func TestRemoveRecursively_DoesNotFollowSymlink(t *testing.T) {
	p := newTestPlatform()
	root := t.TempDir()
	outside := filepath.Join(root, "outside")
	require.NoError(t, os.Mkdir(outside, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(outside, "keep"), []byte("x"), 0o644))

	tree := filepath.Join(root, "tree")
	require.NoError(t, os.Mkdir(tree, 0o755))
	require.NoError(t, os.Symlink(outside, filepath.Join(tree, "escape")))

	require.NoError(t, p.RemoveRecursively(core.NewPath(tree)))

	_, err := os.Stat(tree)
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(outside, "keep"))
	require.NoError(t, err)
}

func TestRemoveRecursively_StopsAtFirstFailure(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	p := newTestPlatform()
	root := t.TempDir()
	locked := filepath.Join(root, "tree", "locked")
	require.NoError(t, os.MkdirAll(locked, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(locked, "f"), nil, 0o644))
	require.NoError(t, os.Chmod(locked, 0o555))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	err := p.RemoveRecursively(core.NewPath(filepath.Join(root, "tree")))
	require.Equal(t, errors.CodeForbidden, errors.GetCode(err))
	require.DirExists(t, locked)
}

func TestCreateSiblingTempDir_Mode(t *testing.T) {
	p := newTestPlatform()
	target := core.NewPath(filepath.Join(t.TempDir(), "install"))

	staging := p.CreateSiblingTempDir(target)

	require.True(t, strings.HasPrefix(staging.GetBaseName(), "install.tmp."))
	require.Equal(t, os.FileMode(0o777&^currentUmask()), modeOf(t, staging.AsNativePath()))
}

func TestCreateSiblingTempDir_FatalWhenParentBlocked(t *testing.T) {
	p := newTestPlatform()
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	target := core.NewPath(filepath.Join(blocker, "sub", "install"))
	fstest.RequireFatal(t, core.ExitInternalError, func() {
		p.CreateSiblingTempDir(target)
	})
}

func TestCreateSiblingTempDir_FatalWhenParentUnwritable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	p := newTestPlatform()
	parent := filepath.Join(t.TempDir(), "ro")
	require.NoError(t, os.Mkdir(parent, 0o555))
	t.Cleanup(func() { _ = os.Chmod(parent, 0o755) })

	fstest.RequireFatal(t, core.ExitLocalEnvironmentalError, func() {
		p.CreateSiblingTempDir(core.NewPath(filepath.Join(parent, "install")))
	})
}

func TestForEachDirectoryEntry_SymlinkIsNotDirectory(t *testing.T) {
	p := newTestPlatform()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "real"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "real", "inner"), nil, 0o644))
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")))

	got := map[string]bool{}
	p.ForEachDirectoryEntry(core.NewPath(root), core.DirectoryEntryFunc(func(path core.Path, isDirectory bool) {
		got[path.GetBaseName()] = isDirectory
	}))
	require.Equal(t, map[string]bool{"real": true, "link": false}, got)

	files := p.GetAllFilesUnder(core.NewPath(root))
	require.Len(t, files, 2)
}

func TestRenameDirectory_OntoFile(t *testing.T) {
	p := newTestPlatform()
	root := t.TempDir()
	src := filepath.Join(root, "src")
	dst := filepath.Join(root, "dst")
	require.NoError(t, os.Mkdir(src, 0o755))
	require.NoError(t, os.WriteFile(dst, nil, 0o644))

	outcome, err := p.RenameDirectory(core.NewPath(src), core.NewPath(dst))
	require.Equal(t, core.RenameFailureOtherError, outcome)
	require.Equal(t, errors.CodeNotDirectory, errors.GetCode(err))
}
