package tui

import (
	"context"
	"fmt"

	"vmm/internal/core"
	"vmm/internal/domain"
	"vmm/internal/release"
	"vmm/internal/scanner"
	"vmm/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewType represents different screens in the TUI
type ViewType int

const (
	ViewMods ViewType = iota
	ViewLog
	ViewSettings
	ViewDownloads
)

// JobEventMsg carries one event from the apply worker
type JobEventMsg struct {
	Event core.JobEvent
}

// ReleaseCheckedMsg carries the result of a ViolaCLI release check
type ReleaseCheckedMsg struct {
	Version string
	Err     error
}

// SaveErrorMsg reports a failed configuration auto-save
type SaveErrorMsg struct {
	Err error
}

// App is the main TUI application model
type App struct {
	service     *core.Service
	keys        *KeyMap
	currentView ViewType
	showHelp    bool
	confirmQuit bool
	saveErr     error
	width       int
	height      int

	mods      views.Mods
	logPanel  views.LogPanel
	settings  views.Settings
	downloads views.Downloads
}

// NewApp creates a new TUI application
func NewApp(service *core.Service) App {
	styles := views.DefaultStyles()

	var entries []domain.ModEntry
	var records []domain.LogRecord
	var paths views.PathsData
	if service != nil {
		entries = service.List().Entries()
		records = service.Log().Records()
		paths = currentPaths(service)
	}

	return App{
		service:     service,
		keys:        NewKeyMap("vim"),
		currentView: ViewMods,
		width:       80,
		height:      24,
		mods:        views.NewMods(styles, entries),
		logPanel:    views.NewLogPanel(styles, records),
		settings:    views.NewSettings(styles, paths),
		downloads:   views.NewDownloads(styles, release.ViolaReleasesURL, release.CfgBinNotesURL),
	}
}

func currentPaths(service *core.Service) views.PathsData {
	cfg := service.Config()
	return views.PathsData{
		Game:   cfg.GamePath,
		CfgBin: cfg.CfgBinPath,
		Viola:  cfg.ViolaPath,
		Mods:   service.ModsRoot(),
		Tmp:    service.TmpRoot(),
	}
}

// CurrentView returns the current view type
func (a App) CurrentView() ViewType {
	return a.currentView
}

// ConfirmingQuit reports whether the quit confirmation prompt is up
func (a App) ConfirmingQuit() bool {
	return a.confirmQuit
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	return a.listenSaveErrors()
}

// listenSaveErrors waits for the next auto-save failure so it can be
// raised as a blocking alert on top of the log record.
func (a App) listenSaveErrors() tea.Cmd {
	if a.service == nil {
		return nil
	}
	errs := a.service.SaveErrors()
	return func() tea.Msg {
		return SaveErrorMsg{Err: <-errs}
	}
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a.updateCurrentView(msg)

	case views.ToggleModMsg:
		if a.service != nil {
			if err := a.service.ToggleMod(msg.ID); err != nil {
				a.service.Log().Error(err.Error())
			}
		}
		return a.refresh(), nil

	case views.MoveModMsg:
		if a.service != nil {
			if err := a.service.MoveMod(msg.ID, msg.Up); err != nil {
				a.service.Log().Error(err.Error())
			}
		}
		return a.refresh(), nil

	case views.SetAllMsg:
		if a.service != nil {
			a.service.SetEnabledAll(msg.Enabled)
		}
		return a.refresh(), nil

	case views.RescanMsg:
		if a.service != nil {
			if _, err := a.service.ScanMods(); err != nil {
				a.service.Log().Error(fmt.Sprintf("Could not scan mods: %v", err))
			}
		}
		return a.refresh(), nil

	case views.ApplyMsg:
		return a.startApply()

	case JobEventMsg:
		return a.handleJobEvent(msg.Event)

	case views.ClearLogMsg:
		if a.service != nil {
			a.service.Log().Clear()
		}
		return a.refresh(), nil

	case views.SetPathMsg:
		a.setPath(msg.Key, msg.Value)
		return a.refresh(), nil

	case views.CheckReleaseMsg:
		a.downloads = a.downloads.SetChecking()
		return a, func() tea.Msg {
			version, err := release.LatestViola()
			return ReleaseCheckedMsg{Version: version, Err: err}
		}

	case ReleaseCheckedMsg:
		a.downloads = a.downloads.SetCheckResult(msg.Version, msg.Err)
		return a, nil

	case SaveErrorMsg:
		a.saveErr = msg.Err
		return a.refresh(), a.listenSaveErrors()
	}

	return a.updateCurrentView(msg)
}

func (a App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The save-failure alert blocks everything until acknowledged.
	if a.saveErr != nil {
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		a.saveErr = nil
		return a, nil
	}

	// While a path is being edited every rune belongs to the input field.
	editing := a.currentView == ViewSettings && a.settings.Editing()
	if !editing {
		if a.confirmQuit {
			switch msg.String() {
			case "y", "Y", "enter":
				a.service.RequestStop()
				return a, tea.Quit
			default:
				a.confirmQuit = false
				return a, nil
			}
		}
		if a.keys.IsQuit(msg) {
			// Quitting mid-apply needs a confirmation first; the stop is
			// only requested once the user says yes.
			if a.service != nil && a.service.Running() {
				a.confirmQuit = true
				return a, nil
			}
			return a, tea.Quit
		}
		if a.keys.IsHelp(msg) {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch msg.String() {
		case "1":
			a.currentView = ViewMods
			return a, nil
		case "2":
			a.currentView = ViewLog
			return a.refresh(), nil
		case "3":
			a.currentView = ViewSettings
			return a, nil
		case "4":
			a.currentView = ViewDownloads
			return a, nil
		}
	} else if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	return a.updateCurrentView(msg)
}

func (a App) startApply() (tea.Model, tea.Cmd) {
	if a.service == nil {
		return a, nil
	}

	started, err := a.service.Apply()
	if err != nil {
		a.service.Log().Error(fmt.Sprintf("Error applying changes: %v", err))
		return a.refresh(), nil
	}
	if !started {
		// Zero-mods restore ran synchronously and already logged.
		return a.refresh(), nil
	}

	a.mods = a.mods.SetApplying(true)
	return a.refresh(), a.waitForJobEvent()
}

// handleJobEvent moves one worker event into the event log. The worker
// never touches the log itself; this runs on the program goroutine.
func (a App) handleJobEvent(ev core.JobEvent) (tea.Model, tea.Cmd) {
	if a.service == nil {
		return a, nil
	}

	if ev.Message != "" {
		a.service.Log().Append(ev.Message, ev.Level)
	}
	if ev.Done {
		a.mods = a.mods.SetApplying(false)
		return a.refresh(), nil
	}
	return a.refresh(), a.waitForJobEvent()
}

func (a App) waitForJobEvent() tea.Cmd {
	events := a.service.Events()
	return func() tea.Msg {
		return JobEventMsg{Event: <-events}
	}
}

func (a App) setPath(key, value string) {
	if a.service == nil {
		return
	}
	switch key {
	case "game":
		a.service.SetGamePath(value)
	case "cfgbin":
		a.service.SetCfgBinPath(value)
	case "viola":
		a.service.SetViolaPath(value)
	case "mods":
		a.service.SetModsDir(value)
	case "tmp":
		a.service.SetTmpDir(value)
	}
}

// refresh pulls current service state into the views
func (a App) refresh() App {
	if a.service == nil {
		return a
	}
	a.mods = a.mods.SetEntries(a.service.List().Entries())
	a.logPanel = a.logPanel.SetRecords(a.service.Log().Records())
	a.settings = a.settings.SetPaths(currentPaths(a.service))
	return a
}

func (a App) updateCurrentView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var model tea.Model
	var cmd tea.Cmd

	switch a.currentView {
	case ViewMods:
		model, cmd = a.mods.Update(msg)
		a.mods = model.(views.Mods)
	case ViewLog:
		model, cmd = a.logPanel.Update(msg)
		a.logPanel = model.(views.LogPanel)
	case ViewSettings:
		model, cmd = a.settings.Update(msg)
		a.settings = model.(views.Settings)
	case ViewDownloads:
		model, cmd = a.downloads.Update(msg)
		a.downloads = model.(views.Downloads)
	}

	return a, cmd
}

// View implements tea.Model
func (a App) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		MarginBottom(1)

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	activeTabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	header := titleStyle.Render("vmm - IE:VR Mod Manager")

	tabs := []string{"[1]Mods", "[2]Log", "[3]Settings", "[4]Downloads"}
	tabBar := ""
	for i, tab := range tabs {
		if ViewType(i) == a.currentView {
			tabBar += activeTabStyle.Render(tab) + "  "
		} else {
			tabBar += tabStyle.Render(tab) + "  "
		}
	}

	content := a.renderCurrentView()
	if a.showHelp {
		content = a.keys.FullHelp()
	}
	if a.confirmQuit {
		promptStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
		content = promptStyle.Render("A merge is still running.") + "\n\n" +
			"Quit anyway? (y/n)"
	}
	if a.saveErr != nil {
		alertStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
		content = alertStyle.Render(fmt.Sprintf("Could not save configuration: %v", a.saveErr)) + "\n\n" +
			"Changes to the mod list may be lost. Press any key to continue."
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)
	footer := footerStyle.Render("q: quit  ?: help")

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", header, tabBar, content, footer)
}

func (a App) renderCurrentView() string {
	switch a.currentView {
	case ViewMods:
		return a.mods.View()
	case ViewLog:
		return a.logPanel.View()
	case ViewSettings:
		return a.settings.View()
	case ViewDownloads:
		return a.downloads.View()
	default:
		return "Unknown view"
	}
}

// Run starts the TUI application. While it runs, the mods directory is
// watched so drops and deletions show up without pressing 's'.
func Run(service *core.Service) error {
	app := NewApp(service)
	p := tea.NewProgram(app, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = scanner.Watch(ctx, service.ModsRoot(), func() {
			p.Send(views.RescanMsg{})
		})
	}()

	_, err := p.Run()
	return err
}
