// Package fstest provides a conformance test suite for core.Tree
// implementations.
//
// Backends import it from their own tests and run it against a fresh tree:
//
//	func TestConformance(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) (core.Tree, core.Path) {
//	        return local.New(), core.NewPath(t.TempDir())
//	    })
//	}
//
// The suite validates the interface contract. Documented backend
// differences (mode enforcement, timestamp persistence, staging directory
// naming) are switched with TreeTestConfig.
package fstest

import (
	"testing"

	"github.com/jmgilman/go/hostfs/fs/core"
)

// TreeFactory returns a tree and an existing, empty directory inside it to
// run a test in.
type TreeFactory func(t *testing.T) (core.Tree, core.Path)

// TreeTestConfig configures the test suite to match backend behavior.
type TreeTestConfig struct {
	// TimestampsPersist indicates modification times written through the
	// IntegrityClock are read back. When false the IntegrityClock group is
	// skipped.
	TimestampsPersist bool

	// UniqueSiblingNames indicates repeated CreateSiblingTempDir calls in one
	// process return distinct directories.
	UniqueSiblingNames bool

	// SkipTests lists specific test names to skip.
	// Format: "Group/SubTest" (e.g., "FileIO/LargeRoundTrip").
	SkipTests []string
}

// LocalTestConfig returns configuration for a POSIX host tree.
func LocalTestConfig() TreeTestConfig {
	return TreeTestConfig{
		TimestampsPersist:  true,
		UniqueSiblingNames: true,
	}
}

// MemoryTestConfig returns configuration for in-memory trees.
func MemoryTestConfig() TreeTestConfig {
	return TreeTestConfig{
		TimestampsPersist:  false,
		UniqueSiblingNames: true,
	}
}

// TestSuite runs all conformance tests using LocalTestConfig.
func TestSuite(t *testing.T, newTree TreeFactory) {
	TestSuiteWithConfig(t, newTree, LocalTestConfig())
}

// TestSuiteWithConfig runs all conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newTree TreeFactory, config TreeTestConfig) {
	groups := []struct {
		name string
		run  func(t *testing.T, newTree TreeFactory, config TreeTestConfig)
	}{
		{"DirectoryTree", TestDirectoryTreeWithConfig},
		{"RemoveRecursively", TestRemoveRecursivelyWithConfig},
		{"RenameDirectory", TestRenameDirectoryWithConfig},
		{"SiblingTempDir", TestSiblingTempDirWithConfig},
		{"DirectoryWalker", TestDirectoryWalkerWithConfig},
		{"FileIO", TestFileIOWithConfig},
		{"IntegrityClock", TestIntegrityClockWithConfig},
		{"Concurrency", TestConcurrencyWithConfig},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if shouldSkip(config, g.name) {
				t.Skip("Skipped by provider configuration")
			}
			g.run(t, newTree, config)
		})
	}
}

func shouldSkip(config TreeTestConfig, name string) bool {
	for _, skip := range config.SkipTests {
		if skip == name {
			return true
		}
	}
	return false
}

// subtest runs fn as a named subtest with a fresh tree, honoring SkipTests.
func subtest(t *testing.T, group, name string, newTree TreeFactory, config TreeTestConfig,
	fn func(t *testing.T, tree core.Tree, root core.Path)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if shouldSkip(config, group+"/"+name) {
			t.Skip("Skipped by provider configuration")
		}
		tree, root := newTree(t)
		fn(t, tree, root)
	})
}
