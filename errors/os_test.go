package errors

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeForOS_Sentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"not exist", fs.ErrNotExist, CodeNotFound},
		{"exist", fs.ErrExist, CodeAlreadyExists},
		{"permission", fs.ErrPermission, CodeForbidden},
		{"closed", os.ErrClosed, CodeClosed},
		{"invalid", fs.ErrInvalid, CodeInvalidInput},
		{"unknown", stderrors.New("mystery"), CodeIO},
		{"platform error", New(CodeNotEmpty, "x"), CodeNotEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CodeForOS(tt.err))
		})
	}
}

func TestWrapOS_RealFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	_, statErr := os.Stat(missing)
	require.Error(t, statErr)

	err := WrapOS(statErr, "stat", missing)

	require.Equal(t, CodeNotFound, err.Code())
	require.Equal(t, "stat failed", err.Message())
	require.Equal(t, "stat", err.Context()["op"])
	require.Equal(t, missing, err.Context()["path"])
	require.True(t, Is(err, fs.ErrNotExist))
}

func TestWrapOS_NoPath(t *testing.T) {
	err := WrapOS(fs.ErrPermission, "pipe", "")
	_, hasPath := err.Context()["path"]
	require.False(t, hasPath)
	require.Nil(t, WrapOS(nil, "pipe", ""))
}
