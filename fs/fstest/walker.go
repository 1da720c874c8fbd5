package fstest

import (
	"sort"
	"testing"

	"github.com/jmgilman/go/hostfs/fs/core"
)

// TestDirectoryWalkerWithConfig tests ForEachDirectoryEntry and GetAllFilesUnder.
func TestDirectoryWalkerWithConfig(t *testing.T, newTree TreeFactory, config TreeTestConfig) {
	const group = "DirectoryWalker"

	subtest(t, group, "ImmediateChildren", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		mustMkdirs(t, tree, root.GetRelative("sub").GetRelative("nested"))
		mustWrite(t, tree, root.GetRelative("file.txt"), []byte("x"))

		got := map[string]bool{}
		tree.ForEachDirectoryEntry(root, core.DirectoryEntryFunc(func(p core.Path, isDirectory bool) {
			if p.GetParent().AsPrintablePath() != root.AsPrintablePath() {
				t.Errorf("entry %s is not an immediate child of %s", p, root)
			}
			got[p.GetBaseName()] = isDirectory
		}))

		want := map[string]bool{"sub": true, "file.txt": false}
		if len(got) != len(want) {
			t.Fatalf("entries = %v, want %v", got, want)
		}
		for name, isDir := range want {
			if gotDir, ok := got[name]; !ok || gotDir != isDir {
				t.Errorf("entry %q: isDirectory = %v (present %v), want %v", name, gotDir, ok, isDir)
			}
		}
	})

	subtest(t, group, "MissingDirectory", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		calls := 0
		tree.ForEachDirectoryEntry(root.GetRelative("missing"), core.DirectoryEntryFunc(func(core.Path, bool) {
			calls++
		}))
		if calls != 0 {
			t.Fatalf("got %d callbacks for a missing directory", calls)
		}
	})

	subtest(t, group, "RegularFile", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		file := root.GetRelative("plain")
		mustWrite(t, tree, file, []byte("x"))

		calls := 0
		tree.ForEachDirectoryEntry(file, core.DirectoryEntryFunc(func(core.Path, bool) {
			calls++
		}))
		if calls != 0 {
			t.Fatalf("got %d callbacks for a regular file", calls)
		}
		if got := tree.GetAllFilesUnder(file); len(got) != 0 {
			t.Fatalf("GetAllFilesUnder(regular file) = %v, want none", printable(got))
		}
	})

	subtest(t, group, "AllFilesUnder", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		want := []core.Path{
			root.GetRelative("a"),
			root.GetRelative("d1").GetRelative("b"),
			root.GetRelative("d1").GetRelative("d2").GetRelative("c"),
		}
		mustMkdirs(t, tree, root.GetRelative("d1").GetRelative("d2"))
		mustMkdirs(t, tree, root.GetRelative("empty"))
		for _, p := range want {
			mustWrite(t, tree, p, []byte(p.GetBaseName()))
		}

		got := printable(tree.GetAllFilesUnder(root))
		wantStrings := printable(want)
		if len(got) != len(wantStrings) {
			t.Fatalf("GetAllFilesUnder = %v, want %v", got, wantStrings)
		}
		for i := range got {
			if got[i] != wantStrings[i] {
				t.Errorf("GetAllFilesUnder[%d] = %s, want %s", i, got[i], wantStrings[i])
			}
		}
	})
}

func printable(paths []core.Path) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, p.AsPrintablePath())
	}
	sort.Strings(out)
	return out
}
