//go:build !windows

package local

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
	"github.com/jmgilman/go/hostfs/logging"
)

func TestSetMtimeToNowIfPossible_PermissionDeniedIsSoft(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	var buf bytes.Buffer
	logger := logging.NewLogger(logging.LogConfig{Level: logging.LogLevelWarn, Output: &buf})
	p := newTestPlatform(WithLogger(logger))

	// Owned by root: setting an explicit mtime is refused with EPERM.
	foreign := core.NewPath("/")

	err := p.SetMtimeToNow(foreign)
	require.Equal(t, errors.CodeForbidden, errors.GetCode(err))

	require.NoError(t, p.SetMtimeToNowIfPossible(foreign))
	require.Contains(t, buf.String(), "mtime not writable")
}
