package local

import (
	"math"
	"os"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

// pipeChannel owns the two endpoints of an OS pipe.
type pipeChannel struct {
	recv        *fileHandle
	send        *fileHandle
	inheritable bool
}

var _ core.PipeChannel = (*pipeChannel)(nil)

// CreatePipe creates an OS pipe. On POSIX both endpoints are close-on-exec;
// on Windows both are inheritable. Failure is fatal.
func (p *Platform) CreatePipe() core.PipeChannel {
	recv, send, inheritable, err := sysPipe()
	if err != nil {
		p.fail(core.ExitLocalEnvironmentalError, "pipe() failed: %v", err)
		return nil
	}

	p.debug("pipe created", "inheritable", inheritable)
	return &pipeChannel{
		recv:        newFileHandle(recv, "pipe:recv"),
		send:        newFileHandle(send, "pipe:send"),
		inheritable: inheritable,
	}
}

func (c *pipeChannel) Send(buf []byte) error {
	if len(buf) > math.MaxInt32 {
		return errBufferTooLarge("send", len(buf))
	}

	n, err := c.send.write(buf)
	if err != nil {
		return errors.WrapOS(err, "send", "")
	}
	if n != len(buf) {
		return errors.Newf(errors.CodeIO, "short write to pipe: %d of %d bytes", n, len(buf))
	}
	return nil
}

// Receive reports ReadInterrupted for an interrupted read and
// ReadOtherError for every other failure.
func (c *pipeChannel) Receive(buf []byte) (int, core.ReadResult, error) {
	if len(buf) > math.MaxInt32 {
		return -1, core.ReadOtherError, errBufferTooLarge("receive", len(buf))
	}

	n, err := c.recv.read(buf)
	if err != nil {
		result := core.ReadOtherError
		if errors.CodeForOS(err) == errors.CodeInterrupted {
			result = core.ReadInterrupted
		}
		return -1, result, errors.WrapOS(err, "receive", "")
	}
	return n, core.ReadSuccess, nil
}

func (c *pipeChannel) Inheritable() bool {
	return c.inheritable
}

func (c *pipeChannel) ReceiveFile() (*os.File, error) {
	return dupFile(c.recv)
}

func (c *pipeChannel) SendFile() (*os.File, error) {
	return dupFile(c.send)
}

// Close releases both endpoints and returns the first failure. The send
// side goes first so a Receive blocked in another goroutine sees end of
// stream.
func (c *pipeChannel) Close() error {
	sendErr := c.send.Close()
	recvErr := c.recv.Close()
	if sendErr != nil {
		return sendErr
	}
	return recvErr
}

func dupFile(h *fileHandle) (*os.File, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, errors.WrapOS(core.ErrClosed, "dup", h.name)
	}
	dup, err := sysDup(h.raw)
	if err != nil {
		return nil, errors.WrapOS(err, "dup", h.name)
	}
	return os.NewFile(uintptr(dup), h.name), nil
}
