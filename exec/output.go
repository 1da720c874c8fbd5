package exec

import (
	"bytes"
	"io"
	"sync"
)

// capture buffers a child's output stream and optionally copies it to a
// passthrough writer.
type capture struct {
	mu          sync.Mutex
	buf         bytes.Buffer
	passthrough io.Writer
}

func newCapture(passthrough io.Writer) *capture {
	return &capture{passthrough: passthrough}
}

// Write captures p first so output is kept even if passthrough fails.
func (c *capture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.buf.Write(p)
	if c.passthrough == nil {
		return len(p), nil
	}
	n, err := c.passthrough.Write(p)
	if err == nil && n != len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

func (c *capture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}
