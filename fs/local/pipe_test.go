package local

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

func TestPipe_SendReceive(t *testing.T) {
	ch := newTestPlatform().CreatePipe()
	defer ch.Close()

	require.NoError(t, ch.Send([]byte("hello")))

	buf := make([]byte, 16)
	n, result, err := ch.Receive(buf)
	require.NoError(t, err)
	require.Equal(t, core.ReadSuccess, result)
	require.Equal(t, 5, n)
	require.Equal(t, "hello", string(buf[:n]))
}

func TestPipe_Inheritable(t *testing.T) {
	ch := newTestPlatform().CreatePipe()
	defer ch.Close()

	require.Equal(t, runtime.GOOS == "windows", ch.Inheritable())
}

func TestPipe_DuplicatedEndpoints(t *testing.T) {
	ch := newTestPlatform().CreatePipe()
	defer ch.Close()

	send, err := ch.SendFile()
	require.NoError(t, err)
	_, err = send.Write([]byte("via dup"))
	require.NoError(t, err)
	require.NoError(t, send.Close())

	buf := make([]byte, 16)
	n, _, err := ch.Receive(buf)
	require.NoError(t, err)
	require.Equal(t, "via dup", string(buf[:n]))

	recv, err := ch.ReceiveFile()
	require.NoError(t, err)
	require.NoError(t, recv.Close())
}

func TestPipe_EndOfStream(t *testing.T) {
	ch := newTestPlatform().CreatePipe().(*pipeChannel)
	defer ch.recv.Close()

	require.NoError(t, ch.Send([]byte("x")))
	require.NoError(t, ch.send.Close())

	buf := make([]byte, 4)
	n, _, err := ch.Receive(buf)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	n, result, err := ch.Receive(buf)
	require.NoError(t, err)
	require.Equal(t, core.ReadSuccess, result)
	require.Equal(t, 0, n)
}

func TestPipe_AfterClose(t *testing.T) {
	ch := newTestPlatform().CreatePipe()
	require.NoError(t, ch.Close())

	n, result, err := ch.Receive(make([]byte, 1))
	require.Equal(t, -1, n)
	require.Equal(t, core.ReadOtherError, result)
	require.Equal(t, errors.CodeClosed, errors.GetCode(err))

	require.Error(t, ch.Send([]byte("x")))
	_, err = ch.SendFile()
	require.Error(t, err)
	require.Error(t, ch.Close())
}
