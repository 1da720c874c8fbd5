package fstest

import (
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/go/hostfs/fs/core"
)

// TestConcurrencyWithConfig tests that racing MakeDirectories calls on the
// same deep path all succeed.
func TestConcurrencyWithConfig(t *testing.T, newTree TreeFactory, config TreeTestConfig) {
	const group = "Concurrency"

	subtest(t, group, "RacingMakeDirectories", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		target := root.GetRelative("r1").GetRelative("r2").GetRelative("r3").GetRelative("r4")

		var g errgroup.Group
		for i := 0; i < 8; i++ {
			g.Go(func() error {
				return tree.MakeDirectories(target, 0o755)
			})
		}
		if err := g.Wait(); err != nil {
			t.Fatalf("concurrent MakeDirectories: %v", err)
		}
		if !tree.IsDirectory(target) {
			t.Fatal("target missing after concurrent MakeDirectories")
		}

		count := 0
		tree.ForEachDirectoryEntry(target.GetParent(), core.DirectoryEntryFunc(func(core.Path, bool) {
			count++
		}))
		if count != 1 {
			t.Fatalf("parent has %d entries, want exactly 1", count)
		}
	})
}
