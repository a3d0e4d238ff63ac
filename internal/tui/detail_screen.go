package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/itemlist/internal/model"
)

func (m App) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.detailKeys.Back):
			cmd := m.backToList()
			return m, cmd
		case key.Matches(k, m.detailKeys.Submit):
			return m.submit()
		case key.Matches(k, m.detailKeys.Delete):
			return m.delete()
		}
	}
	var cmd tea.Cmd
	m.title, cmd = m.title.Update(msg)
	return m, cmd
}

// submit creates or updates depending on the route's mode. On error the
// detail screen stays open with the message.
func (m App) submit() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.title.Value())
	var err error
	switch m.nav.Current().Mode {
	case ModeCreate:
		var it model.Item
		if it, err = m.store.Create(title); err == nil {
			m.log.Infow("item created", "id", it.ID, "title", it.Title)
		}
	case ModeUpdate:
		err = m.store.UpdateTitle(m.current.ID, title)
		if err == nil {
			m.log.Infow("item updated", "id", m.current.ID, "title", title)
		}
	}
	if err != nil {
		m.err = errMessage(err)
		return m, nil
	}
	cmd := m.backToList()
	return m, cmd
}

func (m App) delete() (tea.Model, tea.Cmd) {
	if err := m.store.Delete(m.current); err != nil {
		m.err = errMessage(err)
		return m, nil
	}
	m.log.Infow("item deleted", "id", m.current.ID)
	cmd := m.backToList()
	return m, cmd
}

func (m App) viewDetail() string {
	var b strings.Builder
	r := m.nav.Current()

	if r.Mode == ModeCreate {
		b.WriteString(titleStyle.Render("New Item"))
	} else {
		b.WriteString(titleStyle.Render("Edit Item"))
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("ID    %d", m.current.ID)))
	}
	b.WriteString("\n\n")

	head := "Title"
	if m.err != "" {
		head += "  " + errorStyle.Render(m.err)
	}
	b.WriteString(panelString(head + "\n" + m.title.View()))
	b.WriteString("\n\n" + helpStyle.Render(m.help.View(m.detailKeys)))
	b.WriteString("\n" + mutedStyle.Render(r.String()))
	return b.String()
}
