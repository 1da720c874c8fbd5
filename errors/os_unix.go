//go:build !windows

package errors

import "syscall"

func codeForErrno(errno syscall.Errno) (ErrorCode, bool) {
	switch errno {
	case syscall.ENOENT:
		return CodeNotFound, true
	case syscall.EEXIST:
		return CodeAlreadyExists, true
	case syscall.ENOTDIR:
		return CodeNotDirectory, true
	case syscall.EISDIR:
		return CodeIsDirectory, true
	case syscall.ENOTEMPTY:
		return CodeNotEmpty, true
	case syscall.EACCES, syscall.EPERM:
		return CodeForbidden, true
	case syscall.EROFS:
		return CodeReadOnly, true
	case syscall.EINTR:
		return CodeInterrupted, true
	case syscall.EAGAIN:
		return CodeWouldBlock, true
	case syscall.EPIPE:
		return CodeBrokenPipe, true
	case syscall.EBADF:
		return CodeClosed, true
	case syscall.EINVAL, syscall.ENAMETOOLONG:
		return CodeInvalidInput, true
	case syscall.ENOSYS, syscall.EXDEV:
		return CodeUnsupported, true
	}
	return "", false
}
