//go:build !windows

package local

import "golang.org/x/sys/unix"

func sysUnlink(native string) error {
	return unix.Unlink(native)
}
