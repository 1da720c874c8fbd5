package local

import (
	"os"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

func (p *Platform) GetCwd() (core.Path, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return core.Path{}, errors.WrapOS(err, "getcwd", "")
	}
	return core.NewPath(normalizeCwd(cwd)), nil
}

func (p *Platform) ChangeDirectory(path core.Path) error {
	if err := os.Chdir(path.AsNativePath()); err != nil {
		return errors.WrapOS(err, "chdir", path.AsPrintablePath())
	}
	return nil
}
