package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/gitea-tools/triage/internal/domain"
)

type issueItem struct {
	issue *domain.Issue
}

func (i issueItem) FilterValue() string {
	return i.issue.Title
}

type issueDelegate struct {
	styles Styles
}

func newIssueDelegate(styles Styles) issueDelegate {
	return issueDelegate{styles: styles}
}

func (d issueDelegate) Height() int {
	return 1
}

func (d issueDelegate) Spacing() int {
	return 0
}

func (d issueDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d issueDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ii, ok := item.(issueItem)
	if !ok {
		return
	}
	issue := ii.issue
	selected := index == m.Index()

	indicator := " "
	if selected {
		indicator = ">"
	}

	numberStr := fmt.Sprintf("%6s", fmt.Sprintf("#%d", issue.Number))
	stateStr := fmt.Sprintf("%-6s", issue.State)
	kindStr := fmt.Sprintf("%-5s", issue.Kind())

	var labelsStr string
	for _, label := range issue.Labels {
		labelsStr += "[" + label.Name + "] "
	}

	prefixWidth := 24 + runewidth.StringWidth(labelsStr)
	maxTitleLen := m.Width() - prefixWidth - 2
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	title := strings.ReplaceAll(issue.Title, "\n", " ")
	if runewidth.StringWidth(title) > maxTitleLen {
		title = runewidth.Truncate(title, maxTitleLen-3, "...")
	}

	titleStyle := d.styles.Title
	if selected {
		titleStyle = d.styles.TitleSelected
	}

	line := " " + indicator + " " +
		d.styles.Number.Render(numberStr) + " " +
		d.styles.Muted.Render(kindStr) + " " +
		d.styles.StateStyle(issue.State).Render(stateStr) + " "
	if labelsStr != "" {
		line += d.styles.Label.Render(labelsStr)
	}
	line += titleStyle.Render(title)

	_, _ = fmt.Fprint(w, line)
}
