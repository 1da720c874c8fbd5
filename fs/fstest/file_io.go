package fstest

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

// TestFileIOWithConfig tests ReadFile, ReadFileInto, WriteFile and UnlinkPath.
func TestFileIOWithConfig(t *testing.T, newTree TreeFactory, config TreeTestConfig) {
	const group = "FileIO"

	sizes := []int{0, 1, 4095, 4096, 4097, 3<<20 + 7}
	for _, size := range sizes {
		subtest(t, group, fmt.Sprintf("RoundTrip%d", size), newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
			data := pattern(size)
			file := root.GetRelative("blob")
			mustWrite(t, tree, file, data)

			got, err := tree.ReadFile(file, size)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if !bytes.Equal(got, data) {
				t.Fatalf("ReadFile returned %d bytes differing from the %d written", len(got), len(data))
			}

			buf := make([]byte, size)
			if err := tree.ReadFileInto(file, buf); err != nil {
				t.Fatalf("ReadFileInto: %v", err)
			}
			if !bytes.Equal(buf, data) {
				t.Fatal("ReadFileInto content differs")
			}
		})
	}

	subtest(t, group, "MaxSizeTruncates", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		file := root.GetRelative("long")
		mustWrite(t, tree, file, pattern(10000))

		got, err := tree.ReadFile(file, 5000)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if !bytes.Equal(got, pattern(5000)) {
			t.Fatalf("ReadFile(max 5000) returned %d bytes", len(got))
		}

		all, err := tree.ReadFile(file, -1)
		if err != nil || len(all) != 10000 {
			t.Fatalf("ReadFile(unbounded) = %d bytes, %v", len(all), err)
		}
	})

	subtest(t, group, "OverwriteShrinks", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		file := root.GetRelative("shrink")
		mustWrite(t, tree, file, []byte("a much longer first version"))
		mustWrite(t, tree, file, []byte("short"))

		got, err := tree.ReadFile(file, 0)
		if err != nil || string(got) != "short" {
			t.Fatalf("ReadFile = %q, %v; want %q", got, err, "short")
		}
	})

	subtest(t, group, "ShortReadInto", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		file := root.GetRelative("tiny")
		mustWrite(t, tree, file, []byte("abc"))

		err := tree.ReadFileInto(file, make([]byte, 10))
		if code := errors.GetCode(err); code != errors.CodeIO {
			t.Fatalf("ReadFileInto(short file) code = %s, want %s", code, errors.CodeIO)
		}
	})

	subtest(t, group, "ReadMissing", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		_, err := tree.ReadFile(root.GetRelative("absent"), 0)
		if code := errors.GetCode(err); code != errors.CodeNotFound {
			t.Fatalf("ReadFile(missing) code = %s, want %s", code, errors.CodeNotFound)
		}
	})

	subtest(t, group, "NullDevice", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		null := core.NewPath(os.DevNull)
		if err := tree.WriteFile([]byte("discarded"), null, 0o644); err != nil {
			t.Fatalf("WriteFile(null): %v", err)
		}
		got, err := tree.ReadFile(null, 0)
		if err != nil || len(got) != 0 {
			t.Fatalf("ReadFile(null) = %q, %v; want empty", got, err)
		}
	})

	subtest(t, group, "Unlink", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		file := root.GetRelative("victim")
		mustWrite(t, tree, file, []byte("x"))

		if err := tree.UnlinkPath(file); err != nil {
			t.Fatalf("UnlinkPath: %v", err)
		}
		if tree.PathExists(file) {
			t.Fatal("file exists after UnlinkPath")
		}
		if err := tree.UnlinkPath(file); errors.GetCode(err) != errors.CodeNotFound {
			t.Fatalf("UnlinkPath(missing) = %v, want NOT_FOUND", err)
		}
	})

	subtest(t, group, "UnlinkRefusesDirectory", newTree, config, func(t *testing.T, tree core.Tree, root core.Path) {
		dir := root.GetRelative("dir")
		mustMkdirs(t, tree, dir)
		if err := tree.UnlinkPath(dir); err == nil {
			t.Fatal("UnlinkPath(directory): got nil error")
		}
		if !tree.IsDirectory(dir) {
			t.Fatal("directory removed by UnlinkPath")
		}
	})
}

// pattern returns n deterministic, non-repeating-per-chunk bytes.
func pattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*7 + i/4096)
	}
	return b
}
