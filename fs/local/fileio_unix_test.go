//go:build !windows

package local

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

func TestWriteFile_Permissions(t *testing.T) {
	p := newTestPlatform()
	file := filepath.Join(t.TempDir(), "secret")

	require.NoError(t, p.WriteFile([]byte("x"), core.NewPath(file), 0o600))
	require.Equal(t, os.FileMode(0o600&^currentUmask()), modeOf(t, file))
}

func TestWriteFile_ReplacesSymlinkInsteadOfFollowing(t *testing.T) {
	p := newTestPlatform()
	root := t.TempDir()
	target := filepath.Join(root, "target")
	link := filepath.Join(root, "link")
	require.NoError(t, os.WriteFile(target, []byte("original"), 0o644))
	require.NoError(t, os.Symlink(target, link))

	require.NoError(t, p.WriteFile([]byte("new"), core.NewPath(link), 0o644))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, "original", string(got))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	require.True(t, info.Mode().IsRegular())
}

func TestWriteFile_MissingParent(t *testing.T) {
	err := newTestPlatform().WriteFile([]byte("x"), core.NewPath(filepath.Join(t.TempDir(), "no", "file")), 0o644)
	require.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestWriteFile_EmptyPath(t *testing.T) {
	err := newTestPlatform().WriteFile([]byte("x"), core.Path{}, 0o644)
	require.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}
