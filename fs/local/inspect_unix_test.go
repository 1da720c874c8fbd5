//go:build !windows

package local

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
	"github.com/jmgilman/go/hostfs/fs/fstest"
)

func TestInspector_Access(t *testing.T) {
	p := newTestPlatform()
	root := t.TempDir()
	script := filepath.Join(root, "run.sh")
	plain := filepath.Join(root, "data.txt")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.WriteFile(plain, []byte("x"), 0o644))

	require.True(t, p.PathExists(core.NewPath(script)))
	require.False(t, p.PathExists(core.NewPath(filepath.Join(root, "absent"))))
	require.False(t, p.PathExists(core.Path{}))
	require.True(t, p.PathExists(core.NewPath(os.DevNull)))

	require.True(t, p.IsDirectory(core.NewPath(root)))
	require.False(t, p.IsDirectory(core.NewPath(plain)))

	require.True(t, p.CanReadFile(core.NewPath(plain)))
	require.False(t, p.CanReadFile(core.NewPath(root)))

	require.True(t, p.CanExecuteFile(core.NewPath(script)))
	require.False(t, p.CanExecuteFile(core.NewPath(plain)))
	require.False(t, p.CanExecuteFile(core.NewPath(root)))

	require.True(t, p.CanAccessDirectory(core.NewPath(root)))
	require.False(t, p.CanAccessDirectory(core.NewPath(plain)))
}

func TestInspector_Symlinks(t *testing.T) {
	p := newTestPlatform()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	real := filepath.Join(root, "real")
	link := filepath.Join(root, "link")
	require.NoError(t, os.Mkdir(real, 0o755))
	require.NoError(t, os.Symlink(real, link))

	canonical, err := p.MakeCanonical(core.NewPath(link))
	require.NoError(t, err)
	require.Equal(t, real, canonical.AsPrintablePath())

	target, err := p.ReadDirectorySymlink(core.NewPath(link))
	require.NoError(t, err)
	require.Equal(t, real, target)

	_, err = p.ReadDirectorySymlink(core.NewPath(real))
	require.Error(t, err)

	_, err = p.MakeCanonical(core.NewPath(filepath.Join(root, "absent")))
	require.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestInspector_WorkingDirectory(t *testing.T) {
	p := newTestPlatform()
	original, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(original) })

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, p.ChangeDirectory(core.NewPath(dir)))
	cwd, err := p.GetCwd()
	require.NoError(t, err)
	require.Equal(t, dir, cwd.AsPrintablePath())

	err = p.ChangeDirectory(core.NewPath(filepath.Join(dir, "absent")))
	require.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestSyncFile(t *testing.T) {
	p := newTestPlatform()
	file := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	require.Nil(t, fstest.CatchFatal(func() { p.SyncFile(core.NewPath(file)) }))

	fstest.RequireFatal(t, core.ExitLocalEnvironmentalError, func() {
		p.SyncFile(core.NewPath(filepath.Join(t.TempDir(), "absent")))
	})
}
