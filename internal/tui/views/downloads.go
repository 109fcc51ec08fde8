package views

import (
	tea "github.com/charmbracelet/bubbletea"
)

// CheckReleaseMsg is sent to query GitHub for the newest ViolaCLI release
type CheckReleaseMsg struct{}

// Downloads shows where to get the external tools vmm depends on
type Downloads struct {
	styles        Styles
	violaURL      string
	cfgBinURL     string
	latestRelease string
	checkErr      error
	checking      bool
}

// NewDownloads creates the downloads view
func NewDownloads(styles Styles, violaURL, cfgBinURL string) Downloads {
	return Downloads{
		styles:    styles,
		violaURL:  violaURL,
		cfgBinURL: cfgBinURL,
	}
}

// SetCheckResult records the outcome of a release check
func (d Downloads) SetCheckResult(version string, err error) Downloads {
	d.checking = false
	d.latestRelease = version
	d.checkErr = err
	return d
}

// SetChecking marks a release check as in flight
func (d Downloads) SetChecking() Downloads {
	d.checking = true
	d.checkErr = nil
	return d
}

// LatestRelease returns the last checked release tag, if any
func (d Downloads) LatestRelease() string {
	return d.latestRelease
}

// Init implements tea.Model
func (d Downloads) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (d Downloads) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "c" && !d.checking {
			return d, func() tea.Msg { return CheckReleaseMsg{} }
		}
	}
	return d, nil
}

// View implements tea.Model
func (d Downloads) View() string {
	output := d.styles.Title.Render("Downloads") + "\n\n"

	output += d.styles.Item.Render("ViolaCLI releases:") + "\n"
	output += d.styles.Detail.Render(d.violaURL) + "\n\n"

	output += d.styles.Item.Render("Pristine cpk_list.cfg.bin:") + "\n"
	output += d.styles.Detail.Render(d.cfgBinURL) + "\n\n"

	switch {
	case d.checking:
		output += d.styles.Info.Render("Checking latest release...") + "\n"
	case d.checkErr != nil:
		output += d.styles.Error.Render("Release check failed: "+d.checkErr.Error()) + "\n"
	case d.latestRelease != "":
		output += d.styles.Success.Render("Latest ViolaCLI release: "+d.latestRelease) + "\n"
	}

	output += d.styles.Help.Render("c: check latest release")
	return output
}
