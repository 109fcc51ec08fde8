package domain

import "strings"

// ModEntry represents one installable mod discovered in the mods directory.
// ID is the folder name and is unique within a list; list position is the
// merge priority passed to ViolaCLI.
type ModEntry struct {
	ID          string // Folder name, stable identity
	DisplayName string // Human-readable label derived from ID
	Enabled     bool   // User intent: include this mod in the next merge
	SourcePath  string // Absolute path to the mod's content on disk
}

// SavedMod is the persisted (order, enabled) pair for one mod. The slice
// order in the config file is the load order.
type SavedMod struct {
	ID      string `yaml:"id"`
	Enabled bool   `yaml:"enabled"`
}

// DisplayNameFor derives a human-readable label from a mod folder name.
func DisplayNameFor(id string) string {
	name := strings.ReplaceAll(id, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return strings.TrimSpace(name)
}
