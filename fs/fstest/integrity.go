package fstest

import (
	"testing"

	"github.com/jmgilman/go/hostfs/fs/core"
)

// TestIntegrityClockWithConfig tests the modification-time markers.
func TestIntegrityClockWithConfig(t *testing.T, newTree TreeFactory, config TreeTestConfig) {
	const group = "IntegrityClock"

	if !config.TimestampsPersist {
		t.Skip("backend does not persist modification times")
	}

	subtest(t, group, "StampedFileUntampered", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		file := root.GetRelative("marker")
		mustWrite(t, tree, file, []byte("x"))

		if err := tree.SetMtimeToDistantFuture(file); err != nil {
			t.Fatalf("SetMtimeToDistantFuture: %v", err)
		}
		if !tree.IsUntampered(file) {
			t.Fatal("IsUntampered = false right after SetMtimeToDistantFuture")
		}
	})

	subtest(t, group, "TouchedFileTampered", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		file := root.GetRelative("marker")
		mustWrite(t, tree, file, []byte("x"))

		if err := tree.SetMtimeToDistantFuture(file); err != nil {
			t.Fatalf("SetMtimeToDistantFuture: %v", err)
		}
		if err := tree.SetMtimeToNow(file); err != nil {
			t.Fatalf("SetMtimeToNow: %v", err)
		}
		if tree.IsUntampered(file) {
			t.Fatal("IsUntampered = true after SetMtimeToNow")
		}
	})

	subtest(t, group, "FreshFileTampered", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		file := root.GetRelative("fresh")
		mustWrite(t, tree, file, []byte("x"))
		if tree.IsUntampered(file) {
			t.Fatal("IsUntampered = true for a file never stamped")
		}
	})

	subtest(t, group, "DirectoryAlwaysUntampered", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		dir := root.GetRelative("dir")
		mustMkdirs(t, tree, dir)
		if err := tree.SetMtimeToNow(dir); err != nil {
			t.Fatalf("SetMtimeToNow(dir): %v", err)
		}
		if !tree.IsUntampered(dir) {
			t.Fatal("IsUntampered(directory) = false")
		}
	})

	subtest(t, group, "MissingTampered", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		if tree.IsUntampered(root.GetRelative("absent")) {
			t.Fatal("IsUntampered(missing) = true")
		}
	})

	subtest(t, group, "NowIfPossible", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		file := root.GetRelative("soft")
		mustWrite(t, tree, file, []byte("x"))
		if err := tree.SetMtimeToNowIfPossible(file); err != nil {
			t.Fatalf("SetMtimeToNowIfPossible: %v", err)
		}
		if err := tree.SetMtimeToNowIfPossible(root.GetRelative("absent")); err == nil {
			t.Fatal("SetMtimeToNowIfPossible(missing) = nil, want error")
		}
	})
}
