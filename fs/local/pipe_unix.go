//go:build !windows

package local

import "golang.org/x/sys/unix"

func sysPipe() (recv, send rawHandle, inheritable bool, err error) {
	var fds [2]int
	if err := unix.Pipe(fds[:]); err != nil {
		return 0, 0, false, err
	}

	for _, fd := range fds {
		if _, err := unix.FcntlInt(uintptr(fd), unix.F_SETFD, unix.FD_CLOEXEC); err != nil {
			unix.Close(fds[0])
			unix.Close(fds[1])
			return 0, 0, false, err
		}
	}
	return rawHandle(fds[0]), rawHandle(fds[1]), false, nil
}

// sysDup returns a close-on-exec duplicate. os/exec clears the flag on the
// child's copy when the file is passed in ExtraFiles.
func sysDup(h rawHandle) (rawHandle, error) {
	fd, err := unix.FcntlInt(uintptr(h), unix.F_DUPFD_CLOEXEC, 0)
	return rawHandle(fd), err
}
