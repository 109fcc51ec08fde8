package views

import (
	"fmt"

	"vmm/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
)

// ToggleModMsg is sent to flip a mod between enabled and disabled
type ToggleModMsg struct {
	ID string
}

// MoveModMsg is sent to shift a mod one step in the merge order
type MoveModMsg struct {
	ID string
	Up bool
}

// SetAllMsg is sent to enable or disable every mod at once
type SetAllMsg struct {
	Enabled bool
}

// ApplyMsg is sent to start an apply run
type ApplyMsg struct{}

// RescanMsg is sent to rescan the mods directory
type RescanMsg struct{}

// Mods is the ordered mod list view
type Mods struct {
	styles   Styles
	entries  []domain.ModEntry
	applying bool
	selected int
	width    int
	height   int
}

// NewMods creates the mod list view
func NewMods(styles Styles, entries []domain.ModEntry) Mods {
	return Mods{
		styles:   styles,
		entries:  entries,
		selected: 0,
		width:    80,
		height:   24,
	}
}

// SetEntries replaces the displayed list, keeping the cursor in range
func (m Mods) SetEntries(entries []domain.ModEntry) Mods {
	m.entries = entries
	if m.selected >= len(entries) {
		m.selected = len(entries) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return m
}

// SetApplying marks whether an apply run is in flight
func (m Mods) SetApplying(applying bool) Mods {
	m.applying = applying
	return m
}

// Selected returns the currently selected index
func (m Mods) Selected() int {
	return m.selected
}

// ModCount returns the number of listed mods
func (m Mods) ModCount() int {
	return len(m.entries)
}

// SelectedMod returns the currently selected mod
func (m Mods) SelectedMod() *domain.ModEntry {
	if len(m.entries) == 0 || m.selected >= len(m.entries) {
		return nil
	}
	return &m.entries[m.selected]
}

// Init implements tea.Model
func (m Mods) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Mods) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m Mods) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Apply and rescan work even with an empty list.
	switch msg.String() {
	case "a":
		if !m.applying {
			return m, func() tea.Msg { return ApplyMsg{} }
		}
		return m, nil

	case "s":
		return m, func() tea.Msg { return RescanMsg{} }
	}

	if len(m.entries) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		m.selected--
		if m.selected < 0 {
			m.selected = len(m.entries) - 1
		}
		return m, nil

	case "down", "j":
		m.selected++
		if m.selected >= len(m.entries) {
			m.selected = 0
		}
		return m, nil

	case " ":
		mod := m.SelectedMod()
		if mod != nil {
			return m, func() tea.Msg {
				return ToggleModMsg{ID: mod.ID}
			}
		}
		return m, nil

	case "e":
		return m, func() tea.Msg { return SetAllMsg{Enabled: true} }

	case "d":
		return m, func() tea.Msg { return SetAllMsg{Enabled: false} }

	case "K": // Move up in merge order (shift+k)
		mod := m.SelectedMod()
		if mod != nil && m.selected > 0 {
			m.selected--
			return m, func() tea.Msg {
				return MoveModMsg{ID: mod.ID, Up: true}
			}
		}
		return m, nil

	case "J": // Move down in merge order (shift+j)
		mod := m.SelectedMod()
		if mod != nil && m.selected < len(m.entries)-1 {
			m.selected++
			return m, func() tea.Msg {
				return MoveModMsg{ID: mod.ID, Up: false}
			}
		}
		return m, nil

	case "home", "g":
		m.selected = 0
		return m, nil

	case "end", "G":
		m.selected = len(m.entries) - 1
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m Mods) View() string {
	output := m.styles.Title.Render("Mods") + "\n"

	if m.applying {
		output += m.styles.Warning.Render("Applying changes...") + "\n\n"
	}

	if len(m.entries) == 0 {
		output += m.styles.Item.Render("No mods found.") + "\n\n"
		output += m.styles.Info.Render("Drop mod folders into the mods directory and press 's' to rescan.") + "\n"
		return output
	}

	enabled := 0
	for _, e := range m.entries {
		if e.Enabled {
			enabled++
		}
	}
	output += m.styles.Info.Render(fmt.Sprintf("Merge order (%d mods, %d enabled):", len(m.entries), enabled)) + "\n\n"

	for i, mod := range m.entries {
		cursor := "  "
		style := m.styles.Item

		if i == m.selected {
			cursor = "▸ "
			style = m.styles.Selected
		} else if !mod.Enabled {
			style = m.styles.Disabled
		}

		status := "[✓]"
		if !mod.Enabled {
			status = "[ ]"
		}

		line := fmt.Sprintf("%s%s %s", cursor, status, mod.DisplayName)
		output += style.Render(line) + "\n"

		if i == m.selected {
			output += m.styles.Detail.Render(mod.SourcePath) + "\n"
		}
	}

	output += m.styles.Help.Render("space: toggle  K/J: reorder  e/d: all on/off  s: rescan  a: apply")
	return output
}
