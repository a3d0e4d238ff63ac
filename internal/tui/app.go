package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Makepad-fr/itemlist/internal/model"
	"github.com/Makepad-fr/itemlist/internal/store"
)

type focus int

const (
	focusList focus = iota
	focusFilter
)

// App is the Bubble Tea model for the list and detail screens.
// It owns no items: every change goes through the injected store and
// the list is rebuilt from it afterwards.
type App struct {
	store store.Items
	log   *zap.SugaredLogger
	nav   navigator

	// list screen
	list      list.Model
	filter    textinput.Model
	filtering bool
	focus     focus
	status    string

	// detail screen
	title   textinput.Model
	current model.Item
	err     string

	listKeys   listKeyMap
	detailKeys detailKeyMap
	help       help.Model

	width, height int
}

// New builds the app over s, starting on the list screen.
func New(s store.Items, log *zap.SugaredLogger) App {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	l := list.New(nil, itemDelegate{}, 80, 16)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.Styles.PaginationStyle = helpStyle

	filter := textinput.New()
	filter.Prompt = ""
	filter.Placeholder = "Filter"
	filter.CharLimit = 100
	filter.Width = 24

	title := textinput.New()
	title.Prompt = "> "
	title.CharLimit = 200
	title.Width = 40

	m := App{
		store:      s,
		log:        log,
		nav:        newNavigator(),
		list:       l,
		filter:     filter,
		title:      title,
		listKeys:   defaultListKeys(),
		detailKeys: defaultDetailKeys(),
		help:       help.New(),
		width:      80,
		height:     24,
	}
	m.refresh()
	return m
}

// Run starts the program in the alternate screen and blocks until quit.
func Run(s store.Items, log *zap.SugaredLogger, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(New(s, log), opts...).Run()
	return err
}

// Route reports the screen currently shown.
func (m App) Route() Route { return m.nav.Current() }

func (m App) Init() tea.Cmd { return nil }

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(max(msg.Width-4, 10), max(msg.Height-10, 1))
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	if m.nav.Current().IsDetail() {
		return m.updateDetail(msg)
	}
	return m.updateList(msg)
}

func (m App) View() string {
	if m.nav.Current().IsDetail() {
		return panelString(m.viewDetail())
	}
	return panelString(m.viewList())
}

// visible is what the list screen shows: the filtered view while
// filtering is on, otherwise every item.
func (m App) visible() []model.Item {
	if m.filtering {
		return m.store.Filter(m.filter.Value())
	}
	return m.store.All()
}

func (m *App) refresh() tea.Cmd {
	items := m.visible()
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{Item: it})
	}
	return m.list.SetItems(li)
}

// navigate pushes r. Opening an existing item stages it through FindByID
// first; if it is gone the list screen stays and shows why.
func (m App) navigate(r Route) (tea.Model, tea.Cmd) {
	m.err = ""
	m.status = ""
	switch r.Mode {
	case ModeUpdate:
		if _, err := m.store.FindByID(r.ID); err != nil {
			m.status = errMessage(err)
			return m, nil
		}
		m.current = m.store.Specific()
		m.title.Placeholder = "Title"
		m.title.SetValue(m.current.Title)
		m.title.CursorEnd()
	case ModeCreate:
		m.current = model.Item{}
		m.title.Placeholder = "New item title..."
		m.title.SetValue("")
	}
	m.detailKeys.Delete.SetEnabled(r.Mode == ModeUpdate)
	m.nav.Push(r)
	m.log.Debugw("navigate", "route", r.String())
	cmd := m.title.Focus()
	return m, cmd
}

func (m *App) backToList() tea.Cmd {
	m.title.Blur()
	m.title.SetValue("")
	m.err = ""
	m.nav.PopToRoot()
	m.log.Debugw("navigate", "route", m.nav.Current().String())
	return m.refresh()
}

func errMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrInvalidInput):
		return "Title cannot be empty"
	case errors.Is(err, store.ErrNotFound):
		return "Item no longer exists"
	default:
		return err.Error()
	}
}
