package billy

import "github.com/jmgilman/go/hostfs/fs/core"

// ForEachDirectoryEntry calls consume for each child of path. The listing is
// taken under the lock; consume runs without it and may call back into the
// Tree.
func (t *Tree) ForEachDirectoryEntry(path core.Path, consume core.DirectoryEntryConsumer) {
	if path.IsEmpty() || path.IsNull() {
		return
	}

	t.mu.Lock()
	infos, err := t.readDir(path)
	t.mu.Unlock()
	if err != nil {
		t.debug("directory not listable", "path", path.AsPrintablePath(), "error", err)
		return
	}

	for _, info := range infos {
		consume.Consume(path.GetRelative(info.Name()), info.IsDir())
	}
}

// GetAllFilesUnder returns every non-directory below path.
func (t *Tree) GetAllFilesUnder(path core.Path) []core.Path {
	var files []core.Path
	var walk func(dir core.Path)
	walk = func(dir core.Path) {
		t.ForEachDirectoryEntry(dir, core.DirectoryEntryFunc(func(child core.Path, isDirectory bool) {
			if isDirectory {
				walk(child)
				return
			}
			files = append(files, child)
		}))
	}
	walk(path)
	return files
}
