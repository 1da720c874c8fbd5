package local

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

type foreignHandle struct{}

func (foreignHandle) Fd() uintptr  { return 0 }
func (foreignHandle) Close() error { return nil }

func TestReadFromHandle(t *testing.T) {
	p := newTestPlatform()
	file := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(file, []byte("hello world"), 0o644))

	h, err := p.OpenFileForReading(core.NewPath(file))
	require.NoError(t, err)

	buf := make([]byte, 5)
	n, result, err := p.ReadFromHandle(h, buf)
	require.NoError(t, err)
	require.Equal(t, core.ReadSuccess, result)
	require.Equal(t, 5, n)
	require.Equal(t, "hello", string(buf))

	require.NoError(t, h.Close())

	n, result, err = p.ReadFromHandle(h, buf)
	require.Equal(t, -1, n)
	require.Equal(t, core.ReadOtherError, result)
	require.Equal(t, errors.CodeClosed, errors.GetCode(err))
}

func TestHandle_CloseTwice(t *testing.T) {
	p := newTestPlatform()
	file := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	h, err := p.OpenFileForReading(core.NewPath(file))
	require.NoError(t, err)

	require.NoError(t, h.Close())
	err = h.Close()
	require.Error(t, err)
	require.True(t, errors.Is(err, core.ErrClosed))
}

func TestReadFromHandle_Foreign(t *testing.T) {
	n, result, err := newTestPlatform().ReadFromHandle(foreignHandle{}, make([]byte, 1))
	require.Equal(t, -1, n)
	require.Equal(t, core.ReadOtherError, result)
	require.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestOpenFileForReading_Errors(t *testing.T) {
	p := newTestPlatform()

	_, err := p.OpenFileForReading(core.Path{})
	require.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	_, err = p.OpenFileForReading(core.NewPath(filepath.Join(t.TempDir(), "missing")))
	require.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestWriteToStdOutErr_Empty(t *testing.T) {
	p := newTestPlatform()
	require.Equal(t, core.WriteSuccess, p.WriteToStdOutErr(nil, true))
	require.Equal(t, core.WriteSuccess, p.WriteToStdOutErr([]byte{}, false))
}
