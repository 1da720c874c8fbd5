package fstest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

// TestDirectoryTreeWithConfig tests MakeDirectories.
func TestDirectoryTreeWithConfig(t *testing.T, newTree TreeFactory, config TreeTestConfig) {
	const group = "DirectoryTree"

	subtest(t, group, "CreatesAncestors", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		target := root.GetRelative("a").GetRelative("b").GetRelative("c")
		if err := tree.MakeDirectories(target, 0o755); err != nil {
			t.Fatalf("MakeDirectories(%s): %v", target, err)
		}
		for p := target; p != root; p = p.GetParent() {
			if !tree.IsDirectory(p) {
				t.Errorf("IsDirectory(%s) = false after MakeDirectories", p)
			}
		}
	})

	subtest(t, group, "Idempotent", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		target := root.GetRelative("twice")
		for i := 0; i < 2; i++ {
			if err := tree.MakeDirectories(target, 0o750); err != nil {
				t.Fatalf("MakeDirectories call %d: %v", i+1, err)
			}
		}
		if !tree.IsDirectory(target) {
			t.Fatalf("IsDirectory(%s) = false", target)
		}
	})

	subtest(t, group, "ExistingFileFails", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		file := root.GetRelative("file")
		content := []byte("keep me")
		mustWrite(t, tree, file, content)

		err := tree.MakeDirectories(file, 0o755)
		if err == nil {
			t.Fatal("MakeDirectories over a regular file: got nil error")
		}
		if code := errors.GetCode(err); code != errors.CodeNotDirectory {
			t.Errorf("error code = %s, want %s", code, errors.CodeNotDirectory)
		}

		got, readErr := tree.ReadFile(file, 0)
		if readErr != nil || !bytes.Equal(got, content) {
			t.Errorf("file modified by failed MakeDirectories: %q, %v", got, readErr)
		}
	})

	subtest(t, group, "FileAncestorFails", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		file := root.GetRelative("blocker")
		mustWrite(t, tree, file, []byte("x"))

		if err := tree.MakeDirectories(file.GetRelative("child"), 0o755); err == nil {
			t.Fatal("MakeDirectories below a regular file: got nil error")
		}
	})

	subtest(t, group, "EmptyPathRefused", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		err := tree.MakeDirectories(core.Path{}, 0o755)
		if code := errors.GetCode(err); code != errors.CodeForbidden {
			t.Fatalf("MakeDirectories(empty) code = %s, want %s", code, errors.CodeForbidden)
		}
	})
}

// TestRemoveRecursivelyWithConfig tests RemoveRecursively.
func TestRemoveRecursivelyWithConfig(t *testing.T, newTree TreeFactory, config TreeTestConfig) {
	const group = "RemoveRecursively"

	subtest(t, group, "RemovesTree", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		top := root.GetRelative("top")
		mustMkdirs(t, tree, top.GetRelative("x").GetRelative("y"))
		mustWrite(t, tree, top.GetRelative("f1"), []byte("1"))
		mustWrite(t, tree, top.GetRelative("x").GetRelative("f2"), []byte("2"))
		mustWrite(t, tree, top.GetRelative("x").GetRelative("y").GetRelative("f3"), []byte("3"))

		if err := tree.RemoveRecursively(top); err != nil {
			t.Fatalf("RemoveRecursively: %v", err)
		}
		if tree.PathExists(top) {
			t.Fatal("tree still exists after RemoveRecursively")
		}
		if !tree.IsDirectory(root) {
			t.Fatal("RemoveRecursively removed the parent")
		}
	})

	subtest(t, group, "TwiceSucceeds", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		dir := root.GetRelative("gone")
		mustMkdirs(t, tree, dir)
		for i := 0; i < 2; i++ {
			if err := tree.RemoveRecursively(dir); err != nil {
				t.Fatalf("RemoveRecursively call %d: %v", i+1, err)
			}
		}
	})

	subtest(t, group, "MissingIsSuccess", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		if err := tree.RemoveRecursively(root.GetRelative("never").GetRelative("was")); err != nil {
			t.Fatalf("RemoveRecursively(missing): %v", err)
		}
	})

	subtest(t, group, "PlainFile", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		file := root.GetRelative("single")
		mustWrite(t, tree, file, []byte("x"))
		if err := tree.RemoveRecursively(file); err != nil {
			t.Fatalf("RemoveRecursively(file): %v", err)
		}
		if tree.PathExists(file) {
			t.Fatal("file still exists")
		}
	})
}

// TestRenameDirectoryWithConfig tests RenameDirectory.
func TestRenameDirectoryWithConfig(t *testing.T, newTree TreeFactory, config TreeTestConfig) {
	const group = "RenameDirectory"

	subtest(t, group, "ToMissing", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		src := root.GetRelative("src")
		dst := root.GetRelative("dst")
		mustMkdirs(t, tree, src)
		mustWrite(t, tree, src.GetRelative("payload"), []byte("data"))

		outcome, err := tree.RenameDirectory(src, dst)
		if err != nil || outcome != core.RenameSuccess {
			t.Fatalf("RenameDirectory = %s, %v; want success", outcome, err)
		}
		if !tree.IsDirectory(dst) {
			t.Error("destination is not a directory")
		}
		if tree.PathExists(src) {
			t.Error("source still exists")
		}
		if got, _ := tree.ReadFile(dst.GetRelative("payload"), 0); string(got) != "data" {
			t.Errorf("payload = %q after rename", got)
		}
	})

	subtest(t, group, "NestedSubtree", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		src := root.GetRelative("src")
		dst := root.GetRelative("dst")
		lib := src.GetRelative("lib")
		mustMkdirs(t, tree, lib.GetRelative("a"))
		mustMkdirs(t, tree, lib.GetRelative("b"))
		mustWrite(t, tree, src.GetRelative("top"), []byte("top"))
		mustWrite(t, tree, lib.GetRelative("a").GetRelative("f"), []byte("a"))
		mustWrite(t, tree, lib.GetRelative("b").GetRelative("f"), []byte("b"))

		outcome, err := tree.RenameDirectory(src, dst)
		if err != nil || outcome != core.RenameSuccess {
			t.Fatalf("RenameDirectory = %s, %v; want success", outcome, err)
		}
		if got := tree.GetAllFilesUnder(dst); len(got) != 3 {
			t.Fatalf("GetAllFilesUnder(dst) = %v, want 3 files", printable(got))
		}
		for _, dir := range []string{"a", "b"} {
			if !tree.IsDirectory(dst.GetRelative("lib").GetRelative(dir)) {
				t.Errorf("lib/%s is not a directory after rename", dir)
			}
		}

		if err := tree.RemoveRecursively(dst); err != nil {
			t.Fatalf("RemoveRecursively(dst): %v", err)
		}
		for _, p := range []core.Path{
			dst,
			dst.GetRelative("top"),
			dst.GetRelative("lib").GetRelative("a").GetRelative("f"),
			dst.GetRelative("lib").GetRelative("b").GetRelative("f"),
		} {
			if tree.PathExists(p) {
				t.Errorf("%s exists after RemoveRecursively", p)
			}
			if _, err := tree.ReadFile(p, 0); err == nil {
				t.Errorf("%s still readable after RemoveRecursively", p)
			}
		}
	})

	subtest(t, group, "OntoNonEmpty", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		src := root.GetRelative("src")
		dst := root.GetRelative("dst")
		mustMkdirs(t, tree, src)
		mustMkdirs(t, tree, dst)
		mustWrite(t, tree, src.GetRelative("mine"), []byte("a"))
		mustWrite(t, tree, dst.GetRelative("theirs"), []byte("b"))

		outcome, err := tree.RenameDirectory(src, dst)
		if outcome != core.RenameFailureNotEmpty {
			t.Fatalf("RenameDirectory outcome = %s, want not-empty", outcome)
		}
		if code := errors.GetCode(err); code != errors.CodeNotEmpty {
			t.Errorf("error code = %s, want %s", code, errors.CodeNotEmpty)
		}
		if got, _ := tree.ReadFile(src.GetRelative("mine"), 0); string(got) != "a" {
			t.Error("source modified by failed rename")
		}
	})

	subtest(t, group, "MissingSource", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		outcome, err := tree.RenameDirectory(root.GetRelative("nope"), root.GetRelative("dst"))
		if outcome != core.RenameFailureOtherError || err == nil {
			t.Fatalf("RenameDirectory(missing) = %s, %v; want error", outcome, err)
		}
	})
}

// TestSiblingTempDirWithConfig tests CreateSiblingTempDir.
func TestSiblingTempDirWithConfig(t *testing.T, newTree TreeFactory, config TreeTestConfig) {
	const group = "SiblingTempDir"

	subtest(t, group, "NextToTarget", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		target := root.GetRelative("install")
		staging := tree.CreateSiblingTempDir(target)

		if !tree.IsDirectory(staging) {
			t.Fatalf("staging %s is not a directory", staging)
		}
		if staging.GetParent().AsPrintablePath() != root.AsPrintablePath() {
			t.Errorf("staging parent = %s, want %s", staging.GetParent(), root)
		}
		if !strings.HasPrefix(staging.GetBaseName(), "install.tmp.") {
			t.Errorf("staging name %q lacks install.tmp. prefix", staging.GetBaseName())
		}
	})

	subtest(t, group, "CreatesParent", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		target := root.GetRelative("deep").GetRelative("er").GetRelative("install")
		staging := tree.CreateSiblingTempDir(target)

		if !tree.IsDirectory(target.GetParent()) {
			t.Fatal("parent not created")
		}
		if !tree.IsDirectory(staging) {
			t.Fatal("staging not created")
		}
	})

	if config.UniqueSiblingNames {
		subtest(t, group, "Unique", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
			target := root.GetRelative("install")
			a := tree.CreateSiblingTempDir(target)
			b := tree.CreateSiblingTempDir(target)
			if a.AsPrintablePath() == b.AsPrintablePath() {
				t.Fatalf("two staging directories share the name %s", a)
			}
		})
	}
}

func mustWrite(t *testing.T, tree core.Tree, path core.Path, data []byte) {
	t.Helper()
	if err := tree.WriteFile(data, path, 0o644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", path, err)
	}
}

func mustMkdirs(t *testing.T, tree core.Tree, path core.Path) {
	t.Helper()
	if err := tree.MakeDirectories(path, 0o755); err != nil {
		t.Fatalf("MakeDirectories(%s): setup failed: %v", path, err)
	}
}
