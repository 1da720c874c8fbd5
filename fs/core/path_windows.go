//go:build windows

package core

import "strings"

const longPathPrefix = `\\?\`

func nativePath(p string) string {
	switch {
	case strings.HasPrefix(p, longPathPrefix):
		return p
	case strings.HasPrefix(p, `\\`):
		return longPathPrefix + `UNC\` + p[2:]
	default:
		return longPathPrefix + p
	}
}

func isNullDevice(p string) bool {
	return strings.EqualFold(p, "NUL") || strings.EqualFold(p, `\\.\NUL`)
}
