package views_test

import (
	"testing"

	"vmm/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func testPaths() views.PathsData {
	return views.PathsData{
		Game:   "/games/ievr",
		CfgBin: "/backups/cpk_list.cfg.bin",
		Viola:  "/tools/violacli",
		Mods:   "/vmm/mods",
		Tmp:    "/vmm/tmp",
	}
}

func TestSettings_InitialState(t *testing.T) {
	model := views.NewSettings(views.DefaultStyles(), testPaths())

	assert.Equal(t, 0, model.Selected())
	assert.False(t, model.Editing())
	view := model.View()
	assert.Contains(t, view, "/games/ievr")
	assert.Contains(t, view, "ViolaCLI")
}

func TestSettings_UnsetPathShown(t *testing.T) {
	model := views.NewSettings(views.DefaultStyles(), views.PathsData{})

	assert.Contains(t, model.View(), "(not set)")
}

func TestSettings_Navigate(t *testing.T) {
	model := views.NewSettings(views.DefaultStyles(), testPaths())

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, newModel.(views.Settings).Selected())

	// Wraps at the top
	newModel, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 4, newModel.(views.Settings).Selected())
}

func TestSettings_EditAndCommit(t *testing.T) {
	model := views.NewSettings(views.DefaultStyles(), testPaths())

	// Enter edit mode on the game path
	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	editing := newModel.(views.Settings)
	assert.True(t, editing.Editing())

	// Type an extra character and commit
	newModel, _ = editing.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	newModel, cmd := newModel.(views.Settings).Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, newModel.(views.Settings).Editing())
	assert.NotNil(t, cmd)
	setMsg, ok := cmd().(views.SetPathMsg)
	assert.True(t, ok)
	assert.Equal(t, "game", setMsg.Key)
	assert.Equal(t, "/games/ievr2", setMsg.Value)
}

func TestSettings_EditCancel(t *testing.T) {
	model := views.NewSettings(views.DefaultStyles(), testPaths())

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	newModel, cmd := newModel.(views.Settings).Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, newModel.(views.Settings).Editing())
	assert.Nil(t, cmd)
}

func TestSettings_SetPathsRefreshes(t *testing.T) {
	model := views.NewSettings(views.DefaultStyles(), testPaths())

	paths := testPaths()
	paths.Viola = "/tools/violacli-v2"
	model = model.SetPaths(paths)

	assert.Contains(t, model.View(), "/tools/violacli-v2")
}
