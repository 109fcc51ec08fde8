package tui_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"vmm/internal/core"
	"vmm/internal/domain"
	"vmm/internal/storage/config"
	"vmm/internal/tui"
	"vmm/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestApp_InitialView(t *testing.T) {
	app := tui.NewApp(nil)

	assert.Equal(t, tui.ViewMods, app.CurrentView())
	assert.NotEmpty(t, app.View())
}

func TestApp_SwitchViews(t *testing.T) {
	app := tui.NewApp(nil)

	newModel, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	assert.Equal(t, tui.ViewLog, newModel.(tui.App).CurrentView())

	newModel, _ = newModel.(tui.App).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	assert.Equal(t, tui.ViewSettings, newModel.(tui.App).CurrentView())

	newModel, _ = newModel.(tui.App).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}})
	assert.Equal(t, tui.ViewDownloads, newModel.(tui.App).CurrentView())

	newModel, _ = newModel.(tui.App).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	assert.Equal(t, tui.ViewMods, newModel.(tui.App).CurrentView())
}

func TestApp_Quit(t *testing.T) {
	app := tui.NewApp(nil)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	assert.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_HelpToggle(t *testing.T) {
	app := tui.NewApp(nil)

	newModel, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	view := newModel.(tui.App).View()
	assert.Contains(t, view, "Apply changes")

	newModel, _ = newModel.(tui.App).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.NotContains(t, newModel.(tui.App).View(), "Apply changes")
}

// newBusyApp builds an app over a real service with one enabled mod and a
// slow fake violacli, then starts an apply so a job is in flight.
func newBusyApp(t *testing.T) tui.App {
	t.Helper()
	root := t.TempDir()
	configDir := filepath.Join(root, "config")
	dataDir := filepath.Join(root, "data")
	gameDir := filepath.Join(root, "game")
	modsDir := filepath.Join(root, "mods")
	cfgBin := filepath.Join(root, "cpk_list.cfg.bin")
	viola := filepath.Join(root, "violacli")

	for _, dir := range []string{configDir, dataDir, gameDir, filepath.Join(modsDir, "alpha")} {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}
	require.NoError(t, os.WriteFile(cfgBin, []byte("pristine"), 0644))
	require.NoError(t, os.WriteFile(viola, []byte("#!/bin/bash\nsleep 5\n"), 0755))

	cfg := config.Config{
		GamePath:   gameDir,
		CfgBinPath: cfgBin,
		ViolaPath:  viola,
		TmpDir:     filepath.Join(root, "tmp"),
		ModsDir:    modsDir,
		Mods:       []domain.SavedMod{{ID: "alpha", Enabled: true}},
	}
	data, err := yaml.Marshal(&cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(config.Path(configDir), data, 0644))

	svc, err := core.NewService(core.ServiceConfig{ConfigDir: configDir, DataDir: dataDir})
	require.NoError(t, err)
	t.Cleanup(func() {
		svc.RequestStop()
		svc.Close()
	})
	_, err = svc.ScanMods()
	require.NoError(t, err)

	app := tui.NewApp(svc)
	model, _ := app.Update(views.ApplyMsg{})
	busy := model.(tui.App)
	require.True(t, svc.Running())
	return busy
}

func TestApp_QuitWhileRunningAsksFirst(t *testing.T) {
	app := newBusyApp(t)

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	confirming := model.(tui.App)
	assert.Nil(t, cmd)
	assert.True(t, confirming.ConfirmingQuit())
	assert.Contains(t, confirming.View(), "Quit anyway?")

	// Anything but yes backs out and keeps the job running
	model, cmd = confirming.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.Nil(t, cmd)
	assert.False(t, model.(tui.App).ConfirmingQuit())

	// Confirming quits
	model, _ = model.(tui.App).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	_, cmd = model.(tui.App).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_SaveErrorIsBlockingAlert(t *testing.T) {
	app := tui.NewApp(nil)

	model, _ := app.Update(tui.SaveErrorMsg{Err: errors.New("disk full")})
	alerted := model.(tui.App)
	assert.Contains(t, alerted.View(), "Could not save configuration: disk full")

	// Keys are swallowed until acknowledged: '2' must not switch views.
	model, cmd := alerted.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	dismissed := model.(tui.App)
	assert.Nil(t, cmd)
	assert.Equal(t, tui.ViewMods, dismissed.CurrentView())
	assert.NotContains(t, dismissed.View(), "Could not save configuration")
}

func TestApp_WindowResize(t *testing.T) {
	app := tui.NewApp(nil)

	newModel, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.NotEmpty(t, newModel.(tui.App).View())
}
