//go:build windows

package local

import "golang.org/x/sys/windows"

type rawHandle windows.Handle

const shareAll = windows.FILE_SHARE_READ | windows.FILE_SHARE_WRITE | windows.FILE_SHARE_DELETE

func sysOpenRead(native string) (rawHandle, error) {
	name, err := windows.UTF16PtrFromString(native)
	if err != nil {
		return 0, err
	}
	h, err := windows.CreateFile(name, windows.GENERIC_READ, shareAll, nil,
		windows.OPEN_EXISTING, windows.FILE_ATTRIBUTE_NORMAL, 0)
	return rawHandle(h), err
}

func sysRead(h rawHandle, buf []byte) (int, error) {
	var done uint32
	err := windows.ReadFile(windows.Handle(h), buf, &done, nil)
	if err == windows.ERROR_BROKEN_PIPE {
		// The writer closed its end: end of stream.
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return int(done), nil
}

func sysWrite(h rawHandle, buf []byte) (int, error) {
	var done uint32
	err := windows.WriteFile(windows.Handle(h), buf, &done, nil)
	return int(done), err
}

func sysClose(h rawHandle) error {
	return windows.CloseHandle(windows.Handle(h))
}

func stdHandle(toStdout bool) (rawHandle, error) {
	which := uint32(windows.STD_ERROR_HANDLE)
	if toStdout {
		which = uint32(windows.STD_OUTPUT_HANDLE)
	}
	h, err := windows.GetStdHandle(which)
	return rawHandle(h), err
}
