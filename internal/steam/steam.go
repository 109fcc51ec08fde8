// Package steam locates the game's Steam installation by walking the
// installed library folders, so the game path can be filled in without
// typing it by hand.
package steam

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// VictoryRoadAppID is the Steam App ID of Inazuma Eleven: Victory Road.
const VictoryRoadAppID = "2514330"

// Install is a Steam install of the game found on disk.
type Install struct {
	AppID       string
	Name        string
	InstallPath string
}

// Roots returns candidate Steam installation roots in search order.
func Roots() []string {
	home, _ := os.UserHomeDir()
	candidates := []string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".local", "share", "Steam"),
	}
	if p := os.Getenv("STEAM_ROOT"); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	var out []string
	for _, p := range candidates {
		if p == "" {
			continue
		}
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			continue
		}
		out = append(out, p)
	}
	return out
}

// LibraryPaths returns all Steam library paths from a Steam root (reading
// libraryfolders.vdf).
func LibraryPaths(steamRoot string) ([]string, error) {
	vdfPath := filepath.Join(steamRoot, "steamapps", "libraryfolders.vdf")
	data, err := os.ReadFile(vdfPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Single library: the steam root itself is the library
			return []string{steamRoot}, nil
		}
		return nil, fmt.Errorf("reading libraryfolders: %w", err)
	}
	root, err := ParseVDF(strings.NewReader(string(data)))
	if err != nil {
		return nil, fmt.Errorf("parsing libraryfolders: %w", err)
	}
	paths := libraryPaths(root)
	if len(paths) == 0 {
		return []string{steamRoot}, nil
	}
	return paths, nil
}

// FindInstall scans Steam libraries for the given App ID. It returns nil
// when the game is not installed.
func FindInstall(appID string) (*Install, error) {
	for _, steamRoot := range Roots() {
		libraries, err := LibraryPaths(steamRoot)
		if err != nil {
			continue
		}
		for _, libPath := range libraries {
			install, err := findInLibrary(libPath, appID)
			if err != nil || install == nil {
				continue
			}
			return install, nil
		}
	}
	return nil, nil
}

// findInLibrary reads appmanifest_<appID>.acf under a library's steamapps
// directory and resolves the install path.
func findInLibrary(libPath, appID string) (*Install, error) {
	steamapps := filepath.Join(libPath, "steamapps")
	manifestPath := filepath.Join(steamapps, "appmanifest_"+appID+".acf")
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, err
	}
	manifest, err := ParseAppManifest(string(data))
	if err != nil {
		return nil, err
	}
	if manifest.InstallDir == "" {
		return nil, fmt.Errorf("manifest %s has no installdir", manifestPath)
	}

	installPath := filepath.Join(steamapps, "common", manifest.InstallDir)
	if _, err := os.Stat(installPath); err != nil {
		return nil, err
	}
	return &Install{
		AppID:       manifest.AppID,
		Name:        manifest.Name,
		InstallPath: installPath,
	}, nil
}
