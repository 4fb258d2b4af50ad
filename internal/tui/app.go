// internal/tui/app.go
//
// Interactive preview for promptpack. It uses bubbletea, which follows The
// Elm Architecture: the App model holds all state, Update reacts to
// messages, and View renders the current state to a string.
//
// The list shows every discovered prompt document in the order it will
// appear in the consolidated output; enter runs the build.

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ig4e/awesome-coding-prompts/internal/config"
	"github.com/ig4e/awesome-coding-prompts/internal/consolidate"
	"github.com/ig4e/awesome-coding-prompts/internal/document"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Padding(0, 1)

	frameStyle = lipgloss.NewStyle().Margin(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)
)

type promptItem struct {
	title string
	desc  string
}

func (i promptItem) Title() string       { return i.title }
func (i promptItem) Description() string { return i.desc }
func (i promptItem) FilterValue() string { return i.title }

type docsLoadedMsg struct {
	items   []list.Item
	skipped int
	err     error
}

type buildDoneMsg struct {
	report consolidate.Report
	err    error
}

// App is the interactive preview model.
type App struct {
	config    *config.Config
	log       consolidate.Logger
	prompts   list.Model
	statusMsg string
	errMsg    string
	building  bool
	width     int
	height    int
}

// NewApp creates the preview for the given configuration. The logger may be
// nil.
func NewApp(cfg *config.Config, log consolidate.Logger) *App {
	prompts := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	prompts.Title = "promptpack · " + cfg.ProjectDir
	prompts.SetShowStatusBar(false)
	prompts.SetFilteringEnabled(false)
	return &App{
		config:  cfg,
		log:     log,
		prompts: prompts,
	}
}

// Init kicks off the initial directory scan.
func (a *App) Init() tea.Cmd {
	return a.loadDocs()
}

// Update reacts to key presses and the load/build results.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		frameW, frameH := frameStyle.GetFrameSize()
		a.prompts.SetSize(max(0, msg.Width-frameW), max(0, msg.Height-frameH-3))
		return a, nil

	case docsLoadedMsg:
		if msg.err != nil {
			a.errMsg = msg.err.Error()
			return a, nil
		}
		a.errMsg = ""
		a.prompts.SetItems(msg.items)
		if msg.skipped > 0 {
			a.statusMsg = fmt.Sprintf("%d prompts · %d skipped (unreadable)", len(msg.items), msg.skipped)
		} else {
			a.statusMsg = fmt.Sprintf("%d prompts discovered", len(msg.items))
		}
		return a, nil

	case buildDoneMsg:
		a.building = false
		if msg.err != nil {
			a.errMsg = fmt.Sprintf("build failed: %v", msg.err)
			return a, nil
		}
		a.errMsg = ""
		a.statusMsg = fmt.Sprintf("wrote %s (%d bytes, %d lines)",
			msg.report.OutputPath, msg.report.Bytes, msg.report.Lines)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit
		case "r":
			a.statusMsg = "Rescanning prompts..."
			return a, a.loadDocs()
		case "enter", "b":
			if a.building {
				return a, nil
			}
			a.building = true
			a.statusMsg = "Building consolidated document..."
			return a, a.runBuild()
		}
	}

	var cmd tea.Cmd
	a.prompts, cmd = a.prompts.Update(msg)
	return a, cmd
}

// View renders the prompt list plus a status line and key help.
func (a *App) View() string {
	status := statusStyle.Render(a.statusMsg)
	if a.errMsg != "" {
		status = errorStyle.Render(a.errMsg)
	}
	help := helpStyle.Render("enter: build · r: rescan · q: quit")
	return frameStyle.Render(a.prompts.View() + "\n" + status + "\n" + help)
}

// loadDocs scans the prompt directory and presents the documents in final
// output order.
func (a *App) loadDocs() tea.Cmd {
	cfg := a.config
	return func() tea.Msg {
		docs, skipped, err := document.List(cfg.PromptsDir)
		if err != nil {
			return docsLoadedMsg{err: err}
		}
		items := make([]list.Item, 0, len(docs))
		for _, doc := range consolidate.OrderPrompts(docs, cfg.Priority) {
			title := doc.Stem()
			if name, ok := doc.Header.Get("name"); ok && name != "" {
				title = name
			}
			desc := doc.Path
			if d, ok := doc.Header.Get("description"); ok && d != "" {
				desc = d
			}
			items = append(items, promptItem{title: consolidate.FormatHeading(title), desc: desc})
		}
		return docsLoadedMsg{items: items, skipped: len(skipped)}
	}
}

// runBuild executes the consolidation off the UI goroutine.
func (a *App) runBuild() tea.Cmd {
	cfg := a.config
	log := a.log
	return func() tea.Msg {
		opts := []consolidate.Option{}
		if log != nil {
			opts = append(opts, consolidate.WithLogger(log))
		}
		report, err := consolidate.Run(cfg, opts...)
		return buildDoneMsg{report: report, err: err}
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
