package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/hostfs/errors"
)

type result struct {
	code   int
	stdout string
	stderr string
}

// hostfs runs the command with a missing config file and quiet logging.
func hostfs(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	base := []string{"--config", filepath.Join(t.TempDir(), "absent.yaml"), "--log-level", "error", "--no-color"}
	code := run(append(base, args...), strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func decodeError(t *testing.T, stderr string) errors.ErrorResponse {
	t.Helper()
	var body struct {
		Error errors.ErrorResponse `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(stderr), &body), stderr)
	return body.Error
}

func TestWriteCatRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "note.txt")

	res := hostfs(t, "hello world", "write", file)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "wrote 11 bytes")

	res = hostfs(t, "", "cat", file)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "hello world", res.stdout)

	res = hostfs(t, "", "cat", "--max", "5", file)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "hello", res.stdout)
}

func TestCat_Missing(t *testing.T) {
	res := hostfs(t, "", "--json", "cat", filepath.Join(t.TempDir(), "missing"))
	require.Equal(t, 1, res.code)
	assert.Empty(t, res.stdout)
	assert.Equal(t, string(errors.CodeNotFound), decodeError(t, res.stderr).Code)
}

func TestMkdirsLsRm(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "a", "b", "c")

	res := hostfs(t, "", "mkdirs", deep, filepath.Join(root, "z"))
	require.Equal(t, 0, res.code, res.stderr)
	assert.DirExists(t, deep)

	require.NoError(t, os.WriteFile(filepath.Join(root, "file"), []byte("x"), 0o644))

	res = hostfs(t, "", "--json", "ls", root)
	require.Equal(t, 0, res.code, res.stderr)
	var listed []entry
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &listed))
	assert.Equal(t, []entry{
		{Path: "a", Directory: true},
		{Path: "file"},
		{Path: "z", Directory: true},
	}, listed)

	res = hostfs(t, "", "ls", root)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "a/\nfile\nz/\n", res.stdout)

	res = hostfs(t, "", "rm", filepath.Join(root, "a"), filepath.Join(root, "missing"))
	require.Equal(t, 0, res.code, res.stderr)
	assert.NoDirExists(t, filepath.Join(root, "a"))
}

func TestLs_NotDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	res := hostfs(t, "", "--json", "ls", file)
	require.Equal(t, 1, res.code)
	assert.Equal(t, string(errors.CodeNotDirectory), decodeError(t, res.stderr).Code)
}

func TestLs_EmptyDirectoryJSON(t *testing.T) {
	res := hostfs(t, "", "--json", "ls", t.TempDir())
	require.Equal(t, 0, res.code, res.stderr)
	assert.JSONEq(t, "[]", res.stdout)
}

func TestMv(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	require.NoError(t, os.Mkdir(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "f"), []byte("x"), 0o644))

	res := hostfs(t, "", "--json", "mv", src, filepath.Join(root, "dst"))
	require.Equal(t, 0, res.code, res.stderr)
	assert.JSONEq(t, `{"outcome":"success"}`, res.stdout)
	assert.FileExists(t, filepath.Join(root, "dst", "f"))
}

func TestMv_OntoNonEmpty(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	dst := filepath.Join(root, "dst")
	require.NoError(t, os.Mkdir(src, 0o755))
	require.NoError(t, os.Mkdir(dst, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "f"), []byte("x"), 0o644))

	res := hostfs(t, "", "--json", "mv", src, dst)
	require.Equal(t, 1, res.code)
	assert.Equal(t, string(errors.CodeNotEmpty), decodeError(t, res.stderr).Code)
	assert.DirExists(t, src)
}

func TestStage(t *testing.T) {
	target := filepath.Join(t.TempDir(), "install")

	res := hostfs(t, "", "stage", target)
	require.Equal(t, 0, res.code, res.stderr)

	staging := strings.TrimSpace(res.stdout)
	assert.True(t, strings.HasPrefix(filepath.Base(staging), "install.tmp."), staging)
	assert.Equal(t, filepath.Dir(target), filepath.Dir(staging))
	assert.DirExists(t, staging)
}

func TestInstallVerify(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "lib"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "README"), []byte("readme"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "lib", "data"), []byte("data"), 0o644))
	target := filepath.Join(t.TempDir(), "base")

	res := hostfs(t, "", "--json", "install", src, target)
	require.Equal(t, 0, res.code, res.stderr)
	assert.JSONEq(t, `{"target":"`+jsonString(target)+`","files":2}`, res.stdout)

	res = hostfs(t, "", "verify", target)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "2 file(s) untampered")

	res = hostfs(t, "", "install", src, target)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "already installed")

	now := time.Now()
	require.NoError(t, os.Chtimes(filepath.Join(target, "lib", "data"), now, now))

	res = hostfs(t, "", "--json", "verify", target)
	require.Equal(t, 1, res.code)
	var report struct {
		Checked  int      `json:"checked"`
		Tampered []string `json:"tampered"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
	assert.Equal(t, 2, report.Checked)
	assert.Equal(t, []string{filepath.Join(target, "lib", "data")}, report.Tampered)
	assert.Equal(t, string(errors.CodeTampered), decodeError(t, res.stderr).Code)
}

func TestInstall_SourceMissing(t *testing.T) {
	res := hostfs(t, "", "--json", "install", filepath.Join(t.TempDir(), "nope"), filepath.Join(t.TempDir(), "base"))
	require.Equal(t, 1, res.code)
	assert.Equal(t, string(errors.CodeNotDirectory), decodeError(t, res.stderr).Code)
}

func TestVerify_Missing(t *testing.T) {
	res := hostfs(t, "", "--json", "verify", filepath.Join(t.TempDir(), "nope"))
	require.Equal(t, 1, res.code)
	assert.Equal(t, string(errors.CodeNotFound), decodeError(t, res.stderr).Code)
}

func TestStamp(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	res := hostfs(t, "", "stamp", "--future", file)
	require.Equal(t, 0, res.code, res.stderr)
	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.True(t, info.ModTime().After(time.Now().AddDate(5, 0, 0)))

	res = hostfs(t, "", "stamp", "--now", file)
	require.Equal(t, 0, res.code, res.stderr)
	info, err = os.Stat(file)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), info.ModTime(), time.Minute)
}

func TestStamp_FlagRules(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.Equal(t, 1, hostfs(t, "", "stamp", file).code)
	assert.Equal(t, 1, hostfs(t, "", "stamp", "--now", "--future", file).code)
}

func TestStamp_IfPossibleMissing(t *testing.T) {
	res := hostfs(t, "", "--json", "stamp", "--if-possible", filepath.Join(t.TempDir(), "missing"))
	require.Equal(t, 1, res.code)
	assert.Equal(t, string(errors.CodeNotFound), decodeError(t, res.stderr).Code)
}

func TestInvalidMode(t *testing.T) {
	res := hostfs(t, "", "--json", "mkdirs", "--mode", "999", filepath.Join(t.TempDir(), "d"))
	require.Equal(t, 1, res.code)
	assert.Equal(t, string(errors.CodeInvalidInput), decodeError(t, res.stderr).Code)
}

func TestInvalidConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "hostfs.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("logging:\n  level: loud\n"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", cfg, "--json", "ls", t.TempDir()}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 1, code)
	assert.Equal(t, string(errors.CodeInvalidConfig), decodeError(t, stderr.String()).Code)
}

func TestConfigSuppliesDefaults(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "hostfs.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("logging:\n  level: error\nfiles:\n  maxReadSize: 3\n"), 0o644))
	file := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(file, []byte("abcdef"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", cfg, "cat", file}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "abc", stdout.String())
}

func TestTextErrors(t *testing.T) {
	res := hostfs(t, "", "cat", filepath.Join(t.TempDir(), "missing"))
	require.Equal(t, 1, res.code)
	assert.True(t, strings.HasPrefix(res.stderr, "Error: "), res.stderr)
}

func TestUnknownCommand(t *testing.T) {
	assert.Equal(t, 1, hostfs(t, "", "explode").code)
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b[1 : len(b)-1])
}
