package local

import (
	"math"
	"sync"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

// fileHandle owns one OS handle. Close releases it exactly once; reads and
// writes after Close fail without reaching the OS. A Close that races an
// in-flight read or write only marks the handle closed, and the last call
// to finish releases the OS handle, so the number is never reused while a
// syscall still holds it.
type fileHandle struct {
	mu       sync.Mutex
	raw      rawHandle
	name     string
	closed   bool
	inflight int
}

var _ core.Handle = (*fileHandle)(nil)

func newFileHandle(raw rawHandle, name string) *fileHandle {
	return &fileHandle{raw: raw, name: name}
}

func (h *fileHandle) Fd() uintptr {
	return uintptr(h.raw)
}

func (h *fileHandle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return errors.WrapOS(core.ErrClosed, "close", h.name)
	}
	h.closed = true
	if h.inflight > 0 {
		return nil
	}
	if err := sysClose(h.raw); err != nil {
		return errors.WrapOS(err, "close", h.name)
	}
	return nil
}

func (h *fileHandle) acquire() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return core.ErrClosed
	}
	h.inflight++
	return nil
}

func (h *fileHandle) release() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.inflight--
	if h.closed && h.inflight == 0 {
		_ = sysClose(h.raw)
	}
}

func (h *fileHandle) read(buf []byte) (int, error) {
	if err := h.acquire(); err != nil {
		return 0, err
	}
	defer h.release()
	return sysRead(h.raw, buf)
}

func (h *fileHandle) write(buf []byte) (int, error) {
	if err := h.acquire(); err != nil {
		return 0, err
	}
	defer h.release()
	return sysWrite(h.raw, buf)
}

// readResultFor classifies a failed read.
func readResultFor(err error) core.ReadResult {
	switch errors.CodeForOS(err) {
	case errors.CodeInterrupted:
		return core.ReadInterrupted
	case errors.CodeWouldBlock:
		return core.ReadAgain
	default:
		return core.ReadOtherError
	}
}

func errBufferTooLarge(op string, n int) error {
	return errors.WithContext(
		errors.Newf(errors.CodeInvalidInput, "buffer of %d bytes exceeds %d", n, math.MaxInt32),
		"op", op)
}

// OpenFileForReading opens path for reading. The caller must Close the handle.
func (p *Platform) OpenFileForReading(path core.Path) (core.Handle, error) {
	if path.IsEmpty() {
		return nil, errors.New(errors.CodeInvalidInput, "path is empty")
	}
	raw, err := sysOpenRead(path.AsNativePath())
	if err != nil {
		return nil, errors.WrapOS(err, "open", path.AsPrintablePath())
	}
	return newFileHandle(raw, path.AsPrintablePath()), nil
}

// ReadFromHandle performs a single read on h, which must have been opened
// by a Platform.
func (p *Platform) ReadFromHandle(h core.Handle, buf []byte) (int, core.ReadResult, error) {
	fh, ok := h.(*fileHandle)
	if !ok {
		return -1, core.ReadOtherError, errors.New(errors.CodeInvalidInput, "handle was not opened by this platform")
	}
	if len(buf) > math.MaxInt32 {
		return -1, core.ReadOtherError, errBufferTooLarge("read", len(buf))
	}

	n, err := fh.read(buf)
	if err != nil {
		return -1, readResultFor(err), errors.WrapOS(err, "read", fh.name)
	}
	return n, core.ReadSuccess, nil
}

// WriteToStdOutErr writes data to stdout or stderr with a single call.
func (p *Platform) WriteToStdOutErr(data []byte, toStdout bool) core.WriteResult {
	h, err := stdHandle(toStdout)
	if err != nil {
		return core.WriteOtherError
	}

	n, err := sysWrite(h, data)
	if err != nil {
		if errors.CodeForOS(err) == errors.CodeBrokenPipe {
			return core.WriteBrokenPipe
		}
		return core.WriteOtherError
	}
	if n != len(data) {
		return core.WriteOtherError
	}
	return core.WriteSuccess
}
