package merge

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"vmm/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTool writes a fake ViolaCLI script that records its arguments.
func writeTool(t *testing.T, dir, script string) string {
	t.Helper()
	path := filepath.Join(dir, "violacli")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func TestRunner_Merge_Success(t *testing.T) {
	dir := t.TempDir()
	tool := writeTool(t, dir, `#!/bin/bash
echo "merged $# inputs"
exit 0
`)
	workDir := filepath.Join(dir, "tmp")

	runner := NewRunner()
	result, err := runner.Merge(context.Background(), tool, "/base/cpk_list.cfg.bin",
		[]string{"/mods/a", "/mods/b"}, workDir)

	require.NoError(t, err)
	assert.Contains(t, result.Stdout, "merged 6 inputs") // merge --cfg x --out y + 2 mods
	assert.Equal(t, 0, result.ExitCode)

	// Work dir created for the tool
	info, err := os.Stat(workDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRunner_Merge_PassesModOrder(t *testing.T) {
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args.txt")
	tool := writeTool(t, dir, `#!/bin/bash
printf '%s\n' "$@" > `+argsFile+`
exit 0
`)

	runner := NewRunner()
	_, err := runner.Merge(context.Background(), tool, "/base/cfg.bin",
		[]string{"/mods/z", "/mods/a", "/mods/m"}, filepath.Join(dir, "tmp"))
	require.NoError(t, err)

	data, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	// Mod paths arrive after the fixed flags, in list order, bit for bit.
	assert.Equal(t, "merge\n--cfg\n/base/cfg.bin\n--out\n"+filepath.Join(dir, "tmp")+
		"\n/mods/z\n/mods/a\n/mods/m\n", string(data))
}

func TestRunner_Merge_NonZeroExit(t *testing.T) {
	dir := t.TempDir()
	tool := writeTool(t, dir, `#!/bin/bash
echo "bad cfg" >&2
exit 3
`)

	runner := NewRunner()
	result, err := runner.Merge(context.Background(), tool, "/base/cfg.bin", nil, filepath.Join(dir, "tmp"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMergeFailed))
	assert.Equal(t, 3, result.ExitCode)
	assert.Contains(t, result.Stderr, "bad cfg")
}

func TestRunner_Merge_ToolMissing(t *testing.T) {
	runner := NewRunner()
	_, err := runner.Merge(context.Background(), filepath.Join(t.TempDir(), "nope"),
		"/base/cfg.bin", nil, t.TempDir())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidViola))
}

func TestRunner_Merge_Cancelled(t *testing.T) {
	dir := t.TempDir()
	tool := writeTool(t, dir, `#!/bin/bash
sleep 10
`)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	runner := NewRunner()
	_, err := runner.Merge(ctx, tool, "/base/cfg.bin", nil, filepath.Join(dir, "tmp"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "interrupted")
}

func TestRunner_CopyOutput(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "data")

	require.NoError(t, os.MkdirAll(filepath.Join(src, "packs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "cpk_list.cfg.bin"), []byte("merged"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "packs", "chara.cpk"), []byte("cpk"), 0644))

	runner := NewRunner()
	require.NoError(t, runner.CopyOutput(src, dest))

	got, err := os.ReadFile(filepath.Join(dest, "cpk_list.cfg.bin"))
	require.NoError(t, err)
	assert.Equal(t, "merged", string(got))

	got, err = os.ReadFile(filepath.Join(dest, "packs", "chara.cpk"))
	require.NoError(t, err)
	assert.Equal(t, "cpk", string(got))
}

func TestRunner_CopyOutput_OverwritesExisting(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(src, "cpk_list.cfg.bin"), []byte("new"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dest, "cpk_list.cfg.bin"), []byte("old old old"), 0644))

	runner := NewRunner()
	require.NoError(t, runner.CopyOutput(src, dest))

	got, err := os.ReadFile(filepath.Join(dest, "cpk_list.cfg.bin"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestRunner_CopyOutput_MissingSource(t *testing.T) {
	runner := NewRunner()
	err := runner.CopyOutput(filepath.Join(t.TempDir(), "missing"), t.TempDir())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCopyFailed))
}

func TestRunner_Cleanup(t *testing.T) {
	workDir := filepath.Join(t.TempDir(), "tmp")
	require.NoError(t, os.MkdirAll(filepath.Join(workDir, "data"), 0755))

	runner := NewRunner()
	require.NoError(t, runner.Cleanup(workDir))

	_, err := os.Stat(workDir)
	assert.True(t, os.IsNotExist(err))
}

func TestRunner_RestoreBaseline(t *testing.T) {
	dir := t.TempDir()
	cfgBin := filepath.Join(dir, "cpk_list.cfg.bin")
	require.NoError(t, os.WriteFile(cfgBin, []byte("pristine"), 0644))
	gamePath := filepath.Join(dir, "game")
	require.NoError(t, os.MkdirAll(gamePath, 0755))

	runner := NewRunner()
	require.NoError(t, runner.RestoreBaseline(cfgBin, gamePath))

	got, err := os.ReadFile(filepath.Join(gamePath, "data", "cpk_list.cfg.bin"))
	require.NoError(t, err)
	assert.Equal(t, "pristine", string(got))
}
