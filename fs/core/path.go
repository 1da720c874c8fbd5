package core

import (
	"os"
	"path/filepath"
)

// Path is an immutable, absolute filesystem location.
//
// The zero value is the empty path. The platform null device is recognised
// at construction and reported by IsNull.
type Path struct {
	path string
	null bool
}

// NewPath returns the absolute, cleaned form of p. Relative inputs are
// resolved against the current working directory.
func NewPath(p string) Path {
	if p == "" {
		return Path{}
	}
	if isNullDevice(p) {
		return Path{path: os.DevNull, null: true}
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		abs = filepath.Clean(p)
	}
	return Path{path: abs}
}

// AsNativePath returns the form handed to OS calls. On Windows this is the
// long-path (\\?\) form.
func (p Path) AsNativePath() string {
	if p.path == "" || p.null {
		return p.path
	}
	return nativePath(p.path)
}

// AsPrintablePath returns the form used in messages and logs.
func (p Path) AsPrintablePath() string {
	return p.path
}

// String implements fmt.Stringer.
func (p Path) String() string {
	return p.path
}

// GetParent returns the containing directory. The parent of a root is the
// root itself.
func (p Path) GetParent() Path {
	if p.path == "" || p.null {
		return Path{}
	}
	return Path{path: filepath.Dir(p.path)}
}

// GetRelative returns the child name of p.
func (p Path) GetRelative(name string) Path {
	if p.path == "" {
		return NewPath(name)
	}
	return Path{path: filepath.Join(p.path, name)}
}

// GetBaseName returns the last element of p.
func (p Path) GetBaseName() string {
	if p.path == "" {
		return ""
	}
	return filepath.Base(p.path)
}

// IsEmpty reports whether p is the zero path.
func (p Path) IsEmpty() bool {
	return p.path == ""
}

// IsNull reports whether p names the platform null device.
func (p Path) IsNull() bool {
	return p.null
}

// IsRoot reports whether p is a filesystem root (its own parent).
func (p Path) IsRoot() bool {
	return p.path != "" && !p.null && filepath.Dir(p.path) == p.path
}
