// Package tui is the interactive terminal dashboard: three chart tabs
// plus the insights tab with the canned question catalog.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fiscolab/fisco/internal/chart"
	"github.com/fiscolab/fisco/internal/dataset"
	"github.com/fiscolab/fisco/internal/snapshot"
)

var tabTitles = []string{
	"Evolução da Dívida",
	"Comparativo de Gastos",
	"Credores da Dívida",
	"Insights Interativos",
}

const insightsTab = 3

// loadedMsg carries the session's load outcome into the update loop.
type loadedMsg struct {
	tables *dataset.Tables
	err    error
}

// Model is the root bubbletea model for the dashboard.
type Model struct {
	session *snapshot.Session

	tables  *dataset.Tables
	loadErr error
	loaded  bool

	active   int
	viewport viewport.Model
	insights insightsModel

	width  int
	height int
}

// New creates the dashboard over the given session. The snapshot is
// loaded from Init, so a broken snapshot shows the unified error view
// instead of crashing the program.
func New(session *snapshot.Session) Model {
	return Model{
		session:  session,
		viewport: viewport.New(chart.DefaultWidth, 20),
		insights: newInsightsModel(),
	}
}

// Init triggers the snapshot load.
func (m Model) Init() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		tables, err := session.Tables()
		return loadedMsg{tables: tables, err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loaded = true
		m.tables = msg.tables
		m.loadErr = msg.err
		if msg.err == nil {
			m.insights.setTables(msg.tables)
		}
		m.refreshContent()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
		m.insights.setSize(msg.Width, msg.Height-4)
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			// Inside the insights filter, "q" is text, not quit.
			if m.active == insightsTab && m.insights.filtering() && msg.String() == "q" {
				break
			}
			return m, tea.Quit
		case "tab", "right":
			m.active = (m.active + 1) % len(tabTitles)
			m.refreshContent()
			return m, nil
		case "shift+tab", "left":
			m.active = (m.active + len(tabTitles) - 1) % len(tabTitles)
			m.refreshContent()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.active == insightsTab {
		m.insights, cmd = m.insights.update(msg)
	} else {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.loaded {
		return helpStyle.Render("Carregando snapshots...")
	}
	if m.loadErr != nil {
		return errorViewStyle.Render(fmt.Sprintf(
			"Falha ao carregar os arquivos de dados do snapshot.\n\n%v\n\nPressione q para sair.",
			m.loadErr,
		))
	}

	var body string
	if m.active == insightsTab {
		body = m.insights.view()
	} else {
		body = m.viewport.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Análise da Dívida e Gastos Públicos no Brasil"),
		m.tabBar(),
		body,
		helpStyle.Render("tab/shift+tab: abas • ↑/↓: navegar • enter: responder • q: sair"),
	)
}

func (m *Model) refreshContent() {
	if m.loadErr != nil || m.tables == nil {
		return
	}
	width := m.width
	if width <= 0 {
		width = chart.DefaultWidth
	}
	switch m.active {
	case 0:
		m.viewport.SetContent(chart.Evolution(m.tables.Evolution(), width))
	case 1:
		m.viewport.SetContent(chart.SpendingComparison(m.tables.Spending(), width))
	case 2:
		m.viewport.SetContent(chart.Holders(m.tables.Holders(), width))
	}
}

func (m Model) tabBar() string {
	parts := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if i == m.active {
			parts[i] = activeTabStyle.Render(title)
		} else {
			parts[i] = tabStyle.Render(title)
		}
	}
	return strings.Join(parts, "")
}
