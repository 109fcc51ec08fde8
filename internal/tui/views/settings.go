package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PathsData holds the configured paths shown in the settings view
type PathsData struct {
	Game   string
	CfgBin string
	Viola  string
	Mods   string
	Tmp    string
}

// SetPathMsg is sent when a path is edited and confirmed
type SetPathMsg struct {
	Key   string // game, cfgbin, viola, mods, tmp
	Value string
}

// pathItem is one editable path row
type pathItem struct {
	key         string
	name        string
	description string
	value       string
}

// Settings is the path configuration view
type Settings struct {
	styles   Styles
	items    []pathItem
	selected int
	editing  bool
	input    textinput.Model
	width    int
	height   int
}

// NewSettings creates the settings view
func NewSettings(styles Styles, paths PathsData) Settings {
	input := textinput.New()
	input.CharLimit = 512
	input.Width = 60

	return Settings{
		styles: styles,
		items: []pathItem{
			{key: "game", name: "Game folder", description: "Inazuma Eleven: Victory Road installation", value: paths.Game},
			{key: "cfgbin", name: "cpk_list.cfg.bin", description: "Pristine config from an unmodified install", value: paths.CfgBin},
			{key: "viola", name: "ViolaCLI", description: "Merge tool executable", value: paths.Viola},
			{key: "mods", name: "Mods folder", description: "Directory scanned for mod folders", value: paths.Mods},
			{key: "tmp", name: "Work folder", description: "Merge output staging directory", value: paths.Tmp},
		},
		selected: 0,
		input:    input,
		width:    80,
		height:   24,
	}
}

// Selected returns the currently selected row index
func (s Settings) Selected() int {
	return s.selected
}

// Editing reports whether a path is being edited
func (s Settings) Editing() bool {
	return s.editing
}

// SetPaths refreshes the displayed values
func (s Settings) SetPaths(paths PathsData) Settings {
	values := []string{paths.Game, paths.CfgBin, paths.Viola, paths.Mods, paths.Tmp}
	for i := range s.items {
		s.items[i].value = values[i]
	}
	return s
}

// Init implements tea.Model
func (s Settings) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s Settings) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.editing {
			return s.handleEditKey(msg)
		}
		return s.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil
	}

	if s.editing {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s Settings) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		s.selected--
		if s.selected < 0 {
			s.selected = len(s.items) - 1
		}
		return s, nil

	case "down", "j":
		s.selected++
		if s.selected >= len(s.items) {
			s.selected = 0
		}
		return s, nil

	case "enter":
		s.editing = true
		s.input.SetValue(s.items[s.selected].value)
		s.input.CursorEnd()
		return s, s.input.Focus()
	}

	return s, nil
}

func (s Settings) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		s.editing = false
		s.input.Blur()
		item := &s.items[s.selected]
		item.value = s.input.Value()
		key, value := item.key, item.value
		return s, func() tea.Msg {
			return SetPathMsg{Key: key, Value: value}
		}

	case tea.KeyEsc:
		s.editing = false
		s.input.Blur()
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View implements tea.Model
func (s Settings) View() string {
	output := s.styles.Title.Render("Settings") + "\n\n"

	for i, item := range s.items {
		cursor := "  "
		style := s.styles.Item

		if i == s.selected {
			cursor = "▸ "
			style = s.styles.Selected
		}

		value := item.value
		if value == "" {
			value = "(not set)"
		}

		if i == s.selected && s.editing {
			output += style.Render(fmt.Sprintf("%s%s:", cursor, item.name)) + "\n"
			output += "    " + s.input.View() + "\n"
		} else {
			output += style.Render(fmt.Sprintf("%s%s: %s", cursor, item.name, value)) + "\n"
		}

		if i == s.selected {
			output += s.styles.Detail.Render(item.description) + "\n"
		}
		output += "\n"
	}

	if s.editing {
		output += s.styles.Help.Render("enter: save  esc: cancel")
	} else {
		output += s.styles.Help.Render("↑/↓: navigate  enter: edit path")
	}
	return output
}
