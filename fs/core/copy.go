package core

import (
	"io/fs"
	"path"
)

// CopyFromFS copies every regular file under srcRoot in src into target on
// dst, creating directories with dirMode and preserving file permissions.
//
// Example:
//
//	//go:embed base/*
//	var baseFS embed.FS
//
//	err := core.CopyFromFS(baseFS, "base", tree, staging, 0o755)
func CopyFromFS(src fs.FS, srcRoot string, dst Tree, target Path, dirMode fs.FileMode) error {
	if srcRoot == "" {
		srcRoot = "."
	}

	return fs.WalkDir(src, srcRoot, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := relativeTo(srcRoot, filePath)
		if d.IsDir() {
			if rel == "." {
				return dst.MakeDirectories(target, dirMode)
			}
			return dst.MakeDirectories(target.GetRelative(rel), dirMode)
		}

		data, err := fs.ReadFile(src, filePath)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		return dst.WriteFile(data, target.GetRelative(rel), info.Mode().Perm())
	})
}

func relativeTo(root, p string) string {
	if root == "." {
		return p
	}
	if p == root {
		return "."
	}
	return path.Clean(p[len(root)+1:])
}
