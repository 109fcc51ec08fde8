// Package scanner discovers installable mods on disk. A mod is any
// directory placed directly under the mods root; the folder name is its
// identity.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"vmm/internal/domain"
)

// Scan returns the current set of installable mods under root, sorted by
// identity. A missing root yields an empty result, not an error, so a fresh
// install starts with an empty list.
func Scan(root string) ([]domain.ModEntry, error) {
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading mods dir: %w", err)
	}

	var mods []domain.ModEntry
	for _, de := range dirEntries {
		if !de.IsDir() || strings.HasPrefix(de.Name(), ".") {
			continue
		}
		abs, err := filepath.Abs(filepath.Join(root, de.Name()))
		if err != nil {
			return nil, fmt.Errorf("resolving mod path: %w", err)
		}
		mods = append(mods, domain.ModEntry{
			ID:          de.Name(),
			DisplayName: domain.DisplayNameFor(de.Name()),
			SourcePath:  abs,
		})
	}

	sort.Slice(mods, func(i, j int) bool { return mods[i].ID < mods[j].ID })
	return mods, nil
}
