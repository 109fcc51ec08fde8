package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_FindsModDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "better_kits"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "audio-pack"), 0755))
	// Loose files and hidden dirs are not mods
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))

	mods, err := Scan(root)
	require.NoError(t, err)

	require.Len(t, mods, 2)
	// Sorted by identity
	assert.Equal(t, "audio-pack", mods[0].ID)
	assert.Equal(t, "better_kits", mods[1].ID)
	assert.Equal(t, "audio pack", mods[0].DisplayName)
	assert.True(t, filepath.IsAbs(mods[0].SourcePath))
	assert.False(t, mods[0].Enabled)
}

func TestScan_MissingRoot(t *testing.T) {
	mods, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, mods)
}

func TestScan_EmptyRoot(t *testing.T) {
	mods, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, mods)
}

func TestWatch_DebouncesIntoSingleCallback(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, root, func() { changed <- struct{}{} })
	}()

	// Give the watcher a moment to register before mutating the dir.
	time.Sleep(50 * time.Millisecond)
	for i := 0; i < 3; i++ {
		require.NoError(t, os.Mkdir(filepath.Join(root, "mod"+string(rune('a'+i))), 0755))
	}

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change callback")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatch_MissingRoot(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope"), nil)
	assert.Error(t, err)
}
