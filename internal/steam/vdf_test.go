package steam

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVDF_LibraryFolders(t *testing.T) {
	vdf := `
"libraryfolders"
{
	"0"
	{
		"path"		"/home/user/.steam/steam"
		"label"		""
	}
	"1"
	{
		"path"		"/mnt/games/steam"
		"label"		"Games"
	}
}
`
	root, err := ParseVDF(strings.NewReader(vdf))
	require.NoError(t, err)
	require.NotNil(t, root)
	lf, ok := root["libraryfolders"].(VDFMap)
	require.True(t, ok)

	paths := libraryPaths(root)
	assert.Equal(t, []string{"/home/user/.steam/steam", "/mnt/games/steam"}, paths)

	entry, ok := lf["1"].(VDFMap)
	require.True(t, ok)
	assert.Equal(t, "Games", entry["label"])
}

func TestParseVDF_Empty(t *testing.T) {
	root, err := ParseVDF(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, root)
}

func TestParseVDF_UnclosedQuote(t *testing.T) {
	_, err := ParseVDF(strings.NewReader(`"libraryfolders`))
	assert.Error(t, err)
}

func TestLibraryPaths_MissingRoot(t *testing.T) {
	assert.Nil(t, libraryPaths(VDFMap{"something": "else"}))
}

func TestParseAppManifest(t *testing.T) {
	acf := `
"AppState"
{
	"appid"		"2514330"
	"name"		"Inazuma Eleven: Victory Road"
	"installdir"	"INAZUMA ELEVEN Victory Road"
	"StateFlags"	"4"
}
`
	m, err := ParseAppManifest(acf)
	require.NoError(t, err)
	assert.Equal(t, "2514330", m.AppID)
	assert.Equal(t, "Inazuma Eleven: Victory Road", m.Name)
	assert.Equal(t, "INAZUMA ELEVEN Victory Road", m.InstallDir)
}

func TestParseAppManifest_MissingAppState(t *testing.T) {
	_, err := ParseAppManifest(`"Other" { "appid" "1" }`)
	assert.Error(t, err)
}
