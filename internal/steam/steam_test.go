package steam

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLibrary lays out a Steam library with one installed app.
func fakeLibrary(t *testing.T, appID, installDir string) string {
	t.Helper()
	lib := t.TempDir()
	steamapps := filepath.Join(lib, "steamapps")
	require.NoError(t, os.MkdirAll(filepath.Join(steamapps, "common", installDir), 0755))

	acf := `"AppState"
{
	"appid"		"` + appID + `"
	"name"		"Inazuma Eleven: Victory Road"
	"installdir"	"` + installDir + `"
}
`
	manifest := filepath.Join(steamapps, "appmanifest_"+appID+".acf")
	require.NoError(t, os.WriteFile(manifest, []byte(acf), 0644))
	return lib
}

func TestFindInLibrary(t *testing.T) {
	lib := fakeLibrary(t, VictoryRoadAppID, "INAZUMA ELEVEN Victory Road")

	install, err := findInLibrary(lib, VictoryRoadAppID)
	require.NoError(t, err)
	require.NotNil(t, install)
	assert.Equal(t, VictoryRoadAppID, install.AppID)
	assert.Equal(t, filepath.Join(lib, "steamapps", "common", "INAZUMA ELEVEN Victory Road"), install.InstallPath)
}

func TestFindInLibrary_NotInstalled(t *testing.T) {
	lib := fakeLibrary(t, "12345", "Some Other Game")

	_, err := findInLibrary(lib, VictoryRoadAppID)
	assert.Error(t, err)
}

func TestFindInLibrary_MissingInstallDir(t *testing.T) {
	lib := fakeLibrary(t, VictoryRoadAppID, "INAZUMA ELEVEN Victory Road")
	require.NoError(t, os.RemoveAll(filepath.Join(lib, "steamapps", "common")))

	_, err := findInLibrary(lib, VictoryRoadAppID)
	assert.Error(t, err)
}

func TestLibraryPaths_NoVDF(t *testing.T) {
	root := t.TempDir()

	paths, err := LibraryPaths(root)
	require.NoError(t, err)
	// Falls back to treating the root itself as the only library.
	assert.Equal(t, []string{root}, paths)
}

func TestLibraryPaths_FromVDF(t *testing.T) {
	root := t.TempDir()
	steamapps := filepath.Join(root, "steamapps")
	require.NoError(t, os.MkdirAll(steamapps, 0755))

	vdf := `"libraryfolders"
{
	"0"
	{
		"path"		"/mnt/ssd/steam"
	}
}
`
	require.NoError(t, os.WriteFile(filepath.Join(steamapps, "libraryfolders.vdf"), []byte(vdf), 0644))

	paths, err := LibraryPaths(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"/mnt/ssd/steam"}, paths)
}
