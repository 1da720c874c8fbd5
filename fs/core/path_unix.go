//go:build !windows

package core

func nativePath(p string) string {
	return p
}

func isNullDevice(p string) bool {
	return p == "/dev/null"
}
