//go:build windows

package errors

import (
	"syscall"

	"golang.org/x/sys/windows"
)

func codeForErrno(errno syscall.Errno) (ErrorCode, bool) {
	switch errno {
	case windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND, windows.ERROR_INVALID_DRIVE:
		return CodeNotFound, true
	case windows.ERROR_ALREADY_EXISTS, windows.ERROR_FILE_EXISTS:
		return CodeAlreadyExists, true
	case windows.ERROR_DIRECTORY:
		return CodeNotDirectory, true
	case windows.ERROR_DIR_NOT_EMPTY:
		return CodeNotEmpty, true
	case windows.ERROR_ACCESS_DENIED, windows.ERROR_SHARING_VIOLATION:
		return CodeForbidden, true
	case windows.ERROR_WRITE_PROTECT:
		return CodeReadOnly, true
	case windows.ERROR_OPERATION_ABORTED:
		return CodeInterrupted, true
	case windows.ERROR_NO_DATA, windows.ERROR_BROKEN_PIPE:
		return CodeBrokenPipe, true
	case windows.ERROR_INVALID_HANDLE:
		return CodeClosed, true
	case windows.ERROR_INVALID_NAME, windows.ERROR_FILENAME_EXCED_RANGE, windows.ERROR_INVALID_PARAMETER:
		return CodeInvalidInput, true
	case windows.ERROR_NOT_SUPPORTED, windows.ERROR_NOT_SAME_DEVICE:
		return CodeUnsupported, true
	}
	return "", false
}
