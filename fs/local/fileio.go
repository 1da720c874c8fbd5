package local

import (
	"io/fs"
	"math"
	"os"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

const readChunkSize = 4096

func (p *Platform) openForReading(path core.Path) (*fileHandle, error) {
	h, err := p.OpenFileForReading(path)
	if err != nil {
		return nil, err
	}
	return h.(*fileHandle), nil
}

// ReadFile reads path in 4 KiB chunks, retrying interrupted reads, until
// end of file or maxSize bytes.
func (p *Platform) ReadFile(path core.Path, maxSize int) ([]byte, error) {
	if path.IsNull() {
		return []byte{}, nil
	}

	h, err := p.openForReading(path)
	if err != nil {
		return nil, err
	}
	defer h.Close()

	content := []byte{}
	buf := make([]byte, readChunkSize)
	for maxSize <= 0 || len(content) < maxSize {
		want := len(buf)
		if maxSize > 0 && maxSize-len(content) < want {
			want = maxSize - len(content)
		}

		n, err := h.read(buf[:want])
		if err != nil {
			if readResultFor(err).Retryable() {
				continue
			}
			return nil, errors.WrapOS(err, "read", path.AsPrintablePath())
		}
		if n == 0 {
			break
		}
		content = append(content, buf[:n]...)
	}
	return content, nil
}

// ReadFileInto fills buf from the start of path.
func (p *Platform) ReadFileInto(path core.Path, buf []byte) error {
	if path.IsNull() {
		if len(buf) == 0 {
			return nil
		}
		return errShortRead(path, 0, len(buf))
	}

	h, err := p.openForReading(path)
	if err != nil {
		return err
	}
	defer h.Close()

	filled := 0
	for filled < len(buf) {
		end := min(len(buf), filled+readChunkSize)
		n, err := h.read(buf[filled:end])
		if err != nil {
			if readResultFor(err).Retryable() {
				continue
			}
			return errors.WrapOS(err, "read", path.AsPrintablePath())
		}
		if n == 0 {
			return errShortRead(path, filled, len(buf))
		}
		filled += n
	}
	return nil
}

func errShortRead(path core.Path, got, want int) error {
	return errors.WithContext(
		errors.Newf(errors.CodeIO, "file ended after %d of %d bytes", got, want),
		"path", path.AsPrintablePath())
}

// WriteFile unlinks path, then creates it and writes data in chunks no
// larger than math.MaxInt32. A failing close is reported.
func (p *Platform) WriteFile(data []byte, path core.Path, perm fs.FileMode) error {
	if path.IsEmpty() {
		return errors.New(errors.CodeInvalidInput, "path is empty")
	}
	if path.IsNull() {
		return nil
	}

	// Absence is fine.
	_ = p.UnlinkPath(path)

	f, err := os.OpenFile(path.AsNativePath(), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return errors.WrapOS(err, "open", path.AsPrintablePath())
	}

	for written := 0; written < len(data); {
		end := min(len(data), written+math.MaxInt32)
		n, err := f.Write(data[written:end])
		if err != nil {
			f.Close()
			return errors.WrapOS(err, "write", path.AsPrintablePath())
		}
		written += n
	}

	if err := f.Close(); err != nil {
		return errors.WrapOS(err, "close", path.AsPrintablePath())
	}
	return nil
}

// UnlinkPath removes a single file, symlink or junction. Real directories
// are refused.
func (p *Platform) UnlinkPath(path core.Path) error {
	if path.IsEmpty() || path.IsNull() {
		return errors.WithContext(
			errors.New(errors.CodeInvalidInput, "refusing to unlink an empty path or the null device"),
			"path", path.AsPrintablePath())
	}
	if err := sysUnlink(path.AsNativePath()); err != nil {
		return errors.WrapOS(err, "unlink", path.AsPrintablePath())
	}
	return nil
}
