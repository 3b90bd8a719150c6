// Package tui implements the interactive browser over search results.
package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gitea-tools/triage/internal/domain"
)

// KeyMap defines the browser key bindings.
type KeyMap struct {
	Open key.Binding
	Back key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the bubbletea model for the issue browser.
type Model struct {
	detail    *domain.Issue // non-nil while the detail pane is open
	keys      KeyMap
	styles    Styles
	issueList list.Model
	width     int
	height    int
}

// New creates a browser over the given search results.
func New(issues []*domain.Issue) *Model {
	styles := DefaultStyles()

	items := make([]list.Item, 0, len(issues))
	for _, issue := range issues {
		items = append(items, issueItem{issue: issue})
	}

	issueList := list.New(items, newIssueDelegate(styles), 0, 0)
	issueList.Title = "Search results"
	issueList.SetShowStatusBar(false)
	issueList.SetFilteringEnabled(true)
	issueList.DisableQuitKeybindings()

	return &Model{
		keys:      DefaultKeyMap(),
		styles:    styles,
		issueList: issueList,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.issueList.SetSize(msg.Width, msg.Height-1)
		return m, nil

	case tea.KeyMsg:
		// Filtering owns the keyboard while active.
		if m.issueList.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.detail != nil {
				m.detail = nil
				return m, nil
			}

		case key.Matches(msg, m.keys.Open):
			if item, ok := m.issueList.SelectedItem().(issueItem); ok {
				m.detail = item.issue
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.issueList, cmd = m.issueList.Update(msg)
	return m, cmd
}

// View renders the list or the detail pane.
func (m *Model) View() string {
	if m.detail != nil {
		return m.detailView()
	}
	help := m.styles.Muted.Render(" enter: details • q: quit")
	return m.issueList.View() + "\n" + help
}

func (m *Model) detailView() string {
	issue := m.detail

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(issue.Title) + "\n\n")
	b.WriteString(m.styles.Number.Render("#" + strconv.FormatInt(issue.Number, 10)))
	b.WriteString("  " + m.styles.Muted.Render(issue.Kind()))
	b.WriteString("  " + m.styles.StateStyle(issue.State).Render(issue.State) + "\n")
	if issue.User != nil {
		b.WriteString("Author: " + issue.User.UserName + "\n")
	}
	if len(issue.Labels) > 0 {
		names := make([]string, 0, len(issue.Labels))
		for _, label := range issue.Labels {
			names = append(names, label.Name)
		}
		b.WriteString("Labels: " + m.styles.Label.Render(strings.Join(names, ", ")) + "\n")
	}
	if issue.HTMLURL != "" {
		b.WriteString("URL:    " + issue.HTMLURL + "\n")
	}
	b.WriteString("\n" + m.styles.Muted.Render("esc: back • q: quit"))

	box := m.styles.DetailBox.Width(max(40, m.width-4)).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
