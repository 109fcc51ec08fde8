// Package modlist maintains the ordered mod list with per-entry enabled
// flags. List position is the merge priority handed to ViolaCLI, so every
// operation preserves it deliberately.
package modlist

import (
	"vmm/internal/domain"
)

// ChangeKind classifies a list mutation
type ChangeKind int

const (
	ChangeReconciled ChangeKind = iota // List rebuilt from a scan
	ChangeMoved                        // Entry moved up or down
	ChangeToggled                      // Entry enabled flag flipped
)

// Change describes a single mutation of the list. Hosts subscribe once via
// Changes and coalesce (e.g. schedule one config save per burst).
type Change struct {
	Kind ChangeKind
	ID   string // Affected mod, empty for ChangeReconciled
}

// List is an ordered collection of mod entries. It is owned by a single
// goroutine (the UI/session loop); it is not safe for concurrent use.
type List struct {
	entries []domain.ModEntry
	changes chan Change
}

// New creates an empty list.
func New() *List {
	return &List{changes: make(chan Change, 64)}
}

// Changes returns the change notification channel. Sends never block: when
// the subscriber lags, notifications are dropped, which is acceptable since
// consumers treat any change as "state is dirty".
func (l *List) Changes() <-chan Change {
	return l.changes
}

func (l *List) notify(c Change) {
	select {
	case l.changes <- c:
	default:
	}
}

// Reconcile rebuilds an ordered list from a fresh scan. Identities present
// in both previous and discovered keep their previous relative order and
// enabled flag; newly discovered identities are appended in discovered
// order with enabled=false; identities no longer discovered are dropped.
func Reconcile(discovered []domain.ModEntry, previous []domain.SavedMod) []domain.ModEntry {
	byID := make(map[string]domain.ModEntry, len(discovered))
	for _, e := range discovered {
		byID[e.ID] = e
	}

	result := make([]domain.ModEntry, 0, len(discovered))
	seen := make(map[string]bool, len(discovered))

	for _, prev := range previous {
		e, ok := byID[prev.ID]
		if !ok || seen[prev.ID] {
			continue
		}
		e.Enabled = prev.Enabled
		result = append(result, e)
		seen[prev.ID] = true
	}

	for _, e := range discovered {
		if seen[e.ID] {
			continue
		}
		e.Enabled = false
		result = append(result, e)
		seen[e.ID] = true
	}

	return result
}

// Reconcile replaces the list contents with the reconciliation of discovered
// against previous. See the package-level Reconcile for the merge rules.
func (l *List) Reconcile(discovered []domain.ModEntry, previous []domain.SavedMod) {
	l.entries = Reconcile(discovered, previous)
	l.notify(Change{Kind: ChangeReconciled})
}

// Rescan reconciles discovered entries against the list's own current order
// and enabled state.
func (l *List) Rescan(discovered []domain.ModEntry) {
	l.Reconcile(discovered, l.SavedState())
}

// Entries returns a copy of the current entries in order.
func (l *List) Entries() []domain.ModEntry {
	out := make([]domain.ModEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// IndexOf returns the position of the given identity, or -1.
func (l *List) IndexOf(id string) int {
	for i, e := range l.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// MoveUp swaps the entry at index with the one above it. Out-of-range or
// top-of-list indices are no-ops, never errors. Returns the new order.
func (l *List) MoveUp(index int) []domain.ModEntry {
	if index <= 0 || index >= len(l.entries) {
		return l.Entries()
	}
	l.entries[index-1], l.entries[index] = l.entries[index], l.entries[index-1]
	l.notify(Change{Kind: ChangeMoved, ID: l.entries[index-1].ID})
	return l.Entries()
}

// MoveDown swaps the entry at index with the one below it. Out-of-range or
// bottom-of-list indices are no-ops, never errors. Returns the new order.
func (l *List) MoveDown(index int) []domain.ModEntry {
	if index < 0 || index >= len(l.entries)-1 {
		return l.Entries()
	}
	l.entries[index], l.entries[index+1] = l.entries[index+1], l.entries[index]
	l.notify(Change{Kind: ChangeMoved, ID: l.entries[index+1].ID})
	return l.Entries()
}

// Toggle flips the enabled flag of the entry with the given identity.
// Returns false if no such entry exists.
func (l *List) Toggle(id string) bool {
	i := l.IndexOf(id)
	if i < 0 {
		return false
	}
	l.entries[i].Enabled = !l.entries[i].Enabled
	l.notify(Change{Kind: ChangeToggled, ID: id})
	return true
}

// SetEnabled sets the enabled flag of the entry with the given identity.
// Returns false if no such entry exists.
func (l *List) SetEnabled(id string, enabled bool) bool {
	i := l.IndexOf(id)
	if i < 0 {
		return false
	}
	if l.entries[i].Enabled != enabled {
		l.entries[i].Enabled = enabled
		l.notify(Change{Kind: ChangeToggled, ID: id})
	}
	return true
}

// SetEnabledAll sets every entry's enabled flag, emitting one change
// notification per entry.
func (l *List) SetEnabledAll(enabled bool) {
	for i := range l.entries {
		l.entries[i].Enabled = enabled
		l.notify(Change{Kind: ChangeToggled, ID: l.entries[i].ID})
	}
}

// EnabledPaths returns the source paths of all enabled entries in list
// order. This exact sequence is the merge priority handed to ViolaCLI.
func (l *List) EnabledPaths() []string {
	paths := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		if e.Enabled {
			paths = append(paths, e.SourcePath)
		}
	}
	return paths
}

// SavedState returns the (identity, enabled) pairs in list order, the form
// persisted in the config file.
func (l *List) SavedState() []domain.SavedMod {
	out := make([]domain.SavedMod, len(l.entries))
	for i, e := range l.entries {
		out[i] = domain.SavedMod{ID: e.ID, Enabled: e.Enabled}
	}
	return out
}
