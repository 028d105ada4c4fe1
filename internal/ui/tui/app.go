package tui

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/advancedcpp/drillbox/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenReport
)

type menuItem struct {
	id    string
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model

	running bool
	report  *domain.Report
	toast   string

	workspaceFound bool
	workspaceRoot  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	var items []list.Item
	if deps.Catalog != nil {
		for _, d := range deps.Catalog.All() {
			info := d.Info()
			items = append(items, menuItem{
				id:    info.ID,
				title: info.Title,
				desc:  info.Summary,
			})
		}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Drillbox"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	m := model{
		theme: t,
		deps:  deps,
		scr:   screenHome,
		menu:  l,
	}

	wd, err := os.Getwd()
	if err == nil && deps.WorkspaceLocator != nil {
		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr == nil {
			m.workspaceFound = true
			m.workspaceRoot = root
		}
	}

	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		return m, nil

	case drillDoneMsg:
		m.running = false
		report := msg.report
		m.report = &report
		m.scr = screenReport
		if m.deps.Logger != nil {
			m.deps.Logger.Info("tui.drill_done",
				"drill", report.DrillID,
				"failed", report.Failed(),
				"latency_ms", report.LatencyMS,
			)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			m.scr = screenHome
			m.report = nil
			return m, nil

		case "enter":
			if m.scr == screenHome && !m.running {
				it, ok := m.menu.SelectedItem().(menuItem)
				if !ok {
					return m, nil
				}
				d, found := m.deps.Catalog.Lookup(it.id)
				if !found {
					m.toast = fmt.Sprintf("drill %q missing from catalog", it.id)
					return m, nil
				}
				m.running = true
				m.toast = ""
				return m, runDrillCmd(d)
			}

		case "esc", "b":
			if m.scr != screenHome {
				m.scr = screenHome
				m.report = nil
				return m, nil
			}
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Drillbox") + "\n" +
		m.theme.Subtitle.Render("Runnable Go concurrency and collection drills") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Help.Render("No workspace marker found; using current directory")
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter run • / search • q quit")
		body := m.theme.Card.Render(m.menu.View())
		if m.running {
			body = m.theme.Card.Render("Running…")
		}
		if m.toast != "" {
			body += "\n" + m.theme.Fail.Render(m.toast)
		}
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + body + "\n" + help)

	case screenReport:
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.reportCard())

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) reportCard() string {
	if m.report == nil {
		return m.theme.Card.Render("no report")
	}

	status := "OK"
	if m.report.Failed() {
		status = m.theme.Fail.Render("FAIL")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  [%s]  %dms\n\n", m.theme.Title.Render(m.report.DrillID), status, m.report.LatencyMS)

	if out := strings.TrimRight(m.report.Output, "\n"); out != "" {
		b.WriteString(out)
		b.WriteString("\n\n")
	}

	if m.report.Error != nil {
		fmt.Fprintf(&b, "error: %s (%s)\n\n", m.report.Error.Message, m.report.Error.Kind)
	}

	keys := make([]string, 0, len(m.report.Data))
	for k := range m.report.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s = %v\n", k, m.report.Data[k])
	}

	b.WriteString("\n" + m.theme.Help.Render("esc/b back • q home"))
	return m.theme.Card.Render(b.String())
}
