package views

import (
	"fmt"
	"strings"

	"vmm/internal/domain"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// ClearLogMsg is sent to empty the event log
type ClearLogMsg struct{}

// LogPanel is a scrollable view over the event log
type LogPanel struct {
	styles   Styles
	viewport viewport.Model
	records  []domain.LogRecord
}

// NewLogPanel creates the log view
func NewLogPanel(styles Styles, records []domain.LogRecord) LogPanel {
	vp := viewport.New(80, 20)
	p := LogPanel{
		styles:   styles,
		viewport: vp,
	}
	return p.SetRecords(records)
}

// SetRecords replaces the displayed records and scrolls to the newest one
func (p LogPanel) SetRecords(records []domain.LogRecord) LogPanel {
	p.records = records
	p.viewport.SetContent(p.renderRecords())
	p.viewport.GotoBottom()
	return p
}

// RecordCount returns the number of displayed records
func (p LogPanel) RecordCount() int {
	return len(p.records)
}

// Init implements tea.Model
func (p LogPanel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (p LogPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "c" {
			return p, func() tea.Msg { return ClearLogMsg{} }
		}

	case tea.WindowSizeMsg:
		p.viewport.Width = msg.Width
		// Leave room for the title and help lines.
		p.viewport.Height = msg.Height - 8
		if p.viewport.Height < 3 {
			p.viewport.Height = 3
		}
		p.viewport.SetContent(p.renderRecords())
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p LogPanel) renderRecords() string {
	if len(p.records) == 0 {
		return p.styles.Info.Render("Nothing logged yet.")
	}

	var b strings.Builder
	for _, r := range p.records {
		line := fmt.Sprintf("%s  %s", r.Time.Format("15:04:05"), r.Message)
		switch r.Level {
		case domain.LevelSuccess:
			line = p.styles.Success.Render(line)
		case domain.LevelWarning:
			line = p.styles.Warning.Render(line)
		case domain.LevelError:
			line = p.styles.Error.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// View implements tea.Model
func (p LogPanel) View() string {
	output := p.styles.Title.Render("Log") + "\n"
	output += p.viewport.View() + "\n"
	output += p.styles.Help.Render("j/k: scroll  c: clear")
	return output
}
