package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/itemlist/internal/model"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	model.Item
}

func (i listItem) FilterValue() string { return i.Title }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	line := "Item: " + it.Title
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprint(w, prefix+line)
}

func (m App) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus == focusFilter {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch {
			case k.String() == "esc", k.String() == "enter", k.String() == "tab":
				m.focus = focusList
				m.filter.Blur()
				return m, nil
			case key.Matches(k, m.listKeys.ToggleFilter):
				return m.toggleFiltering()
			}
		}
		before := m.filter.Value()
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		if m.filtering && m.filter.Value() != before {
			cmd = tea.Batch(cmd, m.refresh())
		}
		return m, cmd
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.listKeys.Quit):
			return m, tea.Quit
		case key.Matches(k, m.listKeys.FocusFilter):
			m.focus = focusFilter
			cmd := m.filter.Focus()
			return m, cmd
		case key.Matches(k, m.listKeys.ToggleFilter):
			return m.toggleFiltering()
		case key.Matches(k, m.listKeys.New):
			return m.navigate(CreateRoute())
		case key.Matches(k, m.listKeys.Open):
			it, ok := m.list.SelectedItem().(listItem)
			if !ok {
				return m, nil
			}
			return m.navigate(UpdateRoute(it.ID))
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// toggleFiltering flips the checkbox and re-applies the current filter text.
func (m App) toggleFiltering() (tea.Model, tea.Cmd) {
	m.filtering = !m.filtering
	m.status = ""
	m.log.Debugw("filtering toggled", "enabled", m.filtering, "filter", m.filter.Value())
	cmd := m.refresh()
	return m, cmd
}

func (m App) viewList() string {
	var b strings.Builder

	shown, total := len(m.list.Items()), m.store.Len()
	b.WriteString(titleStyle.Render("Item List"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("   %d/%d shown", shown, total)))
	b.WriteString("\n\n")

	box := boxUnchecked
	if m.filtering {
		box = successStyle.Render(boxChecked)
	}
	label := "Filter "
	if m.focus == focusFilter {
		label = accentStyle.Render(label)
	}
	b.WriteString(label + m.filter.View() + "  " + box + "   " + accentStyle.Render("[n] New Item"))
	b.WriteString("\n\n")

	if shown == 0 {
		b.WriteString(mutedStyle.Render("no items"))
	} else {
		b.WriteString(m.list.View())
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n" + errorStyle.Render(m.status))
	}
	b.WriteString("\n" + helpStyle.Render(m.help.View(m.listKeys)))
	return b.String()
}
