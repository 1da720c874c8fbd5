// Package billy provides a go-billy-backed implementation of core.Tree.
//
// This package wraps go-billy's memfs (in-memory) and osfs (local)
// filesystems, providing an adapter that implements core.Tree while keeping
// the underlying billy.Filesystem reachable through Unwrap.
//
// Usage:
//
//	// Stage an install base entirely in memory
//	tree := billy.NewMemory()
//	staging := tree.CreateSiblingTempDir(core.NewPath("/install"))
//
//	// Or confine a tree to one host directory
//	tree, err := billy.NewOS("/var/cache/app")
//
// # Differences from the host backend
//
// Neither memfs nor osfs can store modification times, so the
// IntegrityClock methods report UNSUPPORTED, and SetMtimeToNowIfPossible
// treats that as success. Directories carry no owner, so MakeDirectories
// performs no ownership or permission correction.
//
// # Thread Safety
//
// Trees are safe for concurrent use by multiple goroutines. Every call is
// serialised on a single mutex because memfs keeps its entries in plain
// maps.
package billy
