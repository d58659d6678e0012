package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/fiscolab/fisco/internal/answer"
	"github.com/fiscolab/fisco/internal/catalog"
	"github.com/fiscolab/fisco/internal/dataset"
)

// questionItem adapts a catalog entry to the bubbles list.
type questionItem struct {
	entry catalog.Entry
}

func (i questionItem) Title() string       { return i.entry.Prompt }
func (i questionItem) Description() string { return i.entry.Question.ID() }
func (i questionItem) FilterValue() string { return i.entry.Prompt }

// insightsModel is the interactive Q&A tab: a selectable prompt list on
// top, the rendered answer below it.
type insightsModel struct {
	list       list.Model
	tables     *dataset.Tables
	answerView string
	width      int
	height     int
}

func newInsightsModel() insightsModel {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Escolha sua pergunta"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return insightsModel{list: l}
}

func (m *insightsModel) setTables(tables *dataset.Tables) {
	m.tables = tables
	entries := catalog.Questions(tables.SpendingYears())
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = questionItem{entry: e}
	}
	m.list.SetItems(items)
}

func (m *insightsModel) setSize(width, height int) {
	m.width = width
	m.height = height
	listHeight := height / 2
	if listHeight < 8 {
		listHeight = 8
	}
	m.list.SetSize(width, listHeight)
}

func (m insightsModel) filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m insightsModel) update(msg tea.Msg) (insightsModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" && !m.filtering() {
		if item, ok := m.list.SelectedItem().(questionItem); ok {
			m.answerView = m.renderAnswer(item.entry.Question.ID())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m insightsModel) view() string {
	if m.answerView == "" {
		return m.list.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), m.answerView)
}

// renderAnswer runs the engine and renders the result for the terminal:
// listing answers as glamour markdown, everything else as a bordered
// sentence. Failure results render with the warning border so they are
// surfaced without crashing the tab.
func (m insightsModel) renderAnswer(id string) string {
	res := answer.Answer(id, m.tables)

	if res.Kind == answer.KindList {
		return renderMarkdown(res.Markdown(), m.width)
	}
	if res.Answered() {
		return answerStyle.Width(m.width - 4).Render(res.Text)
	}
	return warnAnswerStyle.Width(m.width - 4).Render(res.Text)
}

func renderMarkdown(md string, width int) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
