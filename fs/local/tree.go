package local

import (
	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

func errRefuseTarget(path core.Path) error {
	return errors.WithContext(
		errors.New(errors.CodeForbidden, "refusing to create an empty or root directory"),
		"path", path.AsPrintablePath())
}

// renameFailure maps a failed rename onto its outcome and a wrapped error.
func renameFailure(err error, notEmpty bool, oldPath, newPath core.Path) (core.RenameOutcome, error) {
	ctx := map[string]interface{}{
		"op":     "rename",
		"path":   oldPath.AsPrintablePath(),
		"target": newPath.AsPrintablePath(),
	}
	if notEmpty {
		return core.RenameFailureNotEmpty, errors.WrapWithContext(err, errors.CodeNotEmpty, "rename target is not empty", ctx)
	}
	return core.RenameFailureOtherError, errors.WrapWithContext(err, errors.CodeForOS(err), "rename failed", ctx)
}
