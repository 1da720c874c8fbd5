package local

import "github.com/jmgilman/go/hostfs/fs/core"

// ForEachDirectoryEntry calls consume for each child of path. Symlinks and
// junctions are reported as non-directories. An unopenable directory yields
// no callbacks.
func (p *Platform) ForEachDirectoryEntry(path core.Path, consume core.DirectoryEntryConsumer) {
	if path.IsEmpty() || path.IsNull() {
		return
	}
	p.forEachEntry(path, consume)
}

// GetAllFilesUnder returns every non-directory below path. Symlinks and
// junctions are listed, never descended.
func (p *Platform) GetAllFilesUnder(path core.Path) []core.Path {
	var files []core.Path
	var walk func(dir core.Path)
	walk = func(dir core.Path) {
		p.ForEachDirectoryEntry(dir, core.DirectoryEntryFunc(func(child core.Path, isDirectory bool) {
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
