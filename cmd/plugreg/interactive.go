package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/unbound-force/plugreg/internal/taxonomy"
)

// keyMap defines keybindings for the interactive TUI.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Quit, k.Help},
	}
}

var defaultKeyMap = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("^/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("v/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

// Styles for the TUI.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tuiHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	tuiBorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// checkModel is the Bubble Tea model for browsing a check report.
type checkModel struct {
	report   *taxonomy.Report
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
	content  string
}

func newCheckModel(rpt *taxonomy.Report) checkModel {
	return checkModel{
		report:  rpt,
		help:    help.New(),
		keys:    defaultKeyMap,
		content: renderCheckContent(rpt),
	}
}

func renderCheckContent(rpt *taxonomy.Report) string {
	var sb strings.Builder

	errs := taxonomy.CountSeverity(rpt.Diagnostics, taxonomy.SeverityError)
	sb.WriteString(titleStyle.Render(
		fmt.Sprintf("plugreg check: %d registered, %d error(s)",
			len(rpt.Registrations), errs)))
	sb.WriteString("\n\n")

	if len(rpt.Registrations) > 0 {
		rows := make([][]string, 0, len(rpt.Registrations))
		for _, r := range rpt.Registrations {
			rows = append(rows, []string{
				r.Name,
				string(r.Shape),
				fmt.Sprintf("%d", r.ProcessComplexity),
				r.Location,
			})
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(tuiBorderStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return tuiHeaderStyle
				}
				return lipgloss.NewStyle()
			}).
			Headers("TYPE", "SHAPE", "CX", "LOCATION").
			Rows(rows...)

		sb.WriteString(t.String())
		sb.WriteString("\n\n")
	} else {
		sb.WriteString(statusStyle.Render("No conforming processors."))
		sb.WriteString("\n\n")
	}

	for _, d := range rpt.Diagnostics {
		style := warningStyle
		if d.Severity == taxonomy.SeverityError {
			style = errorStyle
		}
		sb.WriteString(style.Render(string(d.Severity)))
		sb.WriteString(" ")
		sb.WriteString(d.Message)
		sb.WriteString("\n")
		if d.Location != "" {
			sb.WriteString(statusStyle.Render("    " + d.Location))
			sb.WriteString("\n")
		}
	}

	status := "not written"
	if rpt.RegistryWritten {
		status = "written"
	}
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(fmt.Sprintf("registry %s: %s", status, rpt.RegistryPath)))
	sb.WriteString("\n")

	return sb.String()
}

func (m checkModel) Init() tea.Cmd {
	return nil
}

func (m checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		footerHeight := 2

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - footerHeight
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m checkModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	footer := statusStyle.Render(
		fmt.Sprintf(" %3.f%% ", m.viewport.ScrollPercent()*100)) +
		" " + m.help.View(m.keys)

	return m.viewport.View() + "\n" + footer
}

// runInteractiveCheck launches the Bubble Tea TUI for browsing a
// check report.
func runInteractiveCheck(rpt *taxonomy.Report) error {
	p := tea.NewProgram(newCheckModel(rpt), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
