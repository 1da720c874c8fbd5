//go:build !windows

package local

import "golang.org/x/sys/unix"

type rawHandle int

func sysOpenRead(native string) (rawHandle, error) {
	for {
		fd, err := unix.Open(native, unix.O_RDONLY|unix.O_CLOEXEC, 0)
		if err == unix.EINTR {
			continue
		}
		return rawHandle(fd), err
	}
}

func sysRead(h rawHandle, buf []byte) (int, error) {
	return unix.Read(int(h), buf)
}

func sysWrite(h rawHandle, buf []byte) (int, error) {
	return unix.Write(int(h), buf)
}

func sysClose(h rawHandle) error {
	return unix.Close(int(h))
}

func stdHandle(toStdout bool) (rawHandle, error) {
	if toStdout {
		return rawHandle(unix.Stdout), nil
	}
	return rawHandle(unix.Stderr), nil
}
