//go:build !windows

package local

import (
	"sync"

	"golang.org/x/sys/unix"
)

// umaskMu serializes the set-and-restore dance needed to read the
// process-wide umask.
var umaskMu sync.Mutex

func currentUmask() uint32 {
	umaskMu.Lock()
	defer umaskMu.Unlock()

	mask := unix.Umask(0o022)
	unix.Umask(mask)
	return uint32(mask)
}
