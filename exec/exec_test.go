package exec

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/hostfs/errors"
)

func TestRun(t *testing.T) {
	result, err := New().Run("echo", "hello world")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", result.Stdout)
	assert.Equal(t, 0, result.ExitCode)
}

func TestRun_Failure(t *testing.T) {
	result, err := New().Run("sh", "-c", "echo oops >&2; exit 3")
	require.Error(t, err)
	assert.Equal(t, errors.CodeExecutionFailed, errors.GetCode(err))

	var execErr *ExecError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, 3, execErr.ExitCode)
	assert.Equal(t, "oops\n", execErr.Stderr)

	require.NotNil(t, result)
	assert.Equal(t, 3, result.ExitCode)
}

func TestRun_Empty(t *testing.T) {
	_, err := New().Run()
	assert.Equal(t, errors.CodeExecutionFailed, errors.GetCode(err))
}

func TestRun_NotFound(t *testing.T) {
	result, err := New().Run("definitely-not-a-real-command-hostfs")
	assert.Equal(t, errors.CodeExecutionFailed, errors.GetCode(err))
	assert.Equal(t, -1, result.ExitCode)
}

func TestWithDir(t *testing.T) {
	dir := t.TempDir()
	result, err := New().WithDir(dir).Run("pwd")
	require.NoError(t, err)
	assert.Contains(t, result.Stdout, filepath.Base(dir))
}

func TestEnvironment(t *testing.T) {
	t.Setenv("HOSTFS_PARENT_VAR", "inherited")

	result, err := New().
		WithEnv(map[string]string{"HOSTFS_LOCAL": "local"}).
		Run("sh", "-c", `echo "$HOSTFS_LOCAL:$HOSTFS_PARENT_VAR"`)
	require.NoError(t, err)
	assert.Equal(t, "local:\n", result.Stdout)

	result, err = New().WithInheritEnv().Run("sh", "-c", `echo "$HOSTFS_PARENT_VAR"`)
	require.NoError(t, err)
	assert.Equal(t, "inherited\n", result.Stdout)
}

func TestLocalSettingsReset(t *testing.T) {
	cmd := New(WithEnv(map[string]string{"HOSTFS_GLOBAL": "g"}))

	result, err := cmd.WithEnv(map[string]string{"HOSTFS_GLOBAL": "l"}).Run("sh", "-c", `echo "$HOSTFS_GLOBAL"`)
	require.NoError(t, err)
	assert.Equal(t, "l\n", result.Stdout)

	result, err = cmd.Run("sh", "-c", `echo "$HOSTFS_GLOBAL"`)
	require.NoError(t, err)
	assert.Equal(t, "g\n", result.Stdout)
}

func TestWithTimeout(t *testing.T) {
	start := time.Now()
	_, err := New().WithTimeout(100*time.Millisecond).Run("sleep", "5")
	assert.Equal(t, errors.CodeExecutionFailed, errors.GetCode(err))
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().WithContext(ctx).Run("sleep", "5")
	assert.Error(t, err)
}

func TestWithStdin(t *testing.T) {
	result, err := New().WithStdin(strings.NewReader("piped\n")).Run("cat")
	require.NoError(t, err)
	assert.Equal(t, "piped\n", result.Stdout)
}

func TestWithPassthrough(t *testing.T) {
	var out, errOut bytes.Buffer
	result, err := New(WithStdout(&out), WithStderr(&errOut)).
		WithPassthrough().
		Run("sh", "-c", "echo to-out; echo to-err >&2")
	require.NoError(t, err)

	assert.Equal(t, "to-out\n", out.String())
	assert.Equal(t, "to-err\n", errOut.String())
	assert.Equal(t, "to-out\n", result.Stdout)
	assert.Equal(t, "to-err\n", result.Stderr)
}

func TestClone(t *testing.T) {
	original := New(WithEnv(map[string]string{"HOSTFS_VAR": "original"}))
	clone := original.Clone()

	original.WithEnv(map[string]string{"HOSTFS_VAR": "changed"})

	result, err := clone.Run("sh", "-c", `echo "$HOSTFS_VAR"`)
	require.NoError(t, err)
	assert.Equal(t, "original\n", result.Stdout)
}
