//go:build windows

package local

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func sysPipe() (recv, send rawHandle, inheritable bool, err error) {
	sa := windows.SecurityAttributes{InheritHandle: 1}
	sa.Length = uint32(unsafe.Sizeof(sa))

	var r, w windows.Handle
	if err := windows.CreatePipe(&r, &w, &sa, 0); err != nil {
		return 0, 0, false, err
	}
	return rawHandle(r), rawHandle(w), true, nil
}

func sysDup(h rawHandle) (rawHandle, error) {
	self := windows.CurrentProcess()
	var dup windows.Handle
	err := windows.DuplicateHandle(self, windows.Handle(h), self, &dup, 0, true, windows.DUPLICATE_SAME_ACCESS)
	return rawHandle(dup), err
}
