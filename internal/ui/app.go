package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/swdex/internal/emoji"
	"github.com/yildizm/swdex/internal/logger"
	"github.com/yildizm/swdex/internal/navigation"
	"github.com/yildizm/swdex/internal/people"
	"github.com/yildizm/swdex/internal/session"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// rows reserved below the detail box and list for the help line
	helpHeight = 2
)

// App is the people browser model. Its status only changes when a
// fetchSettledMsg is handled, so a frame never mixes two holder states.
type App struct {
	holder *session.Holder
	nav    *navigation.Navigator
	log    *logger.Logger

	status  session.Status
	list    list.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	styles  *Styles

	width    int
	height   int
	quitting bool
}

// NewApp creates the browser for holder. A nil navigator starts a fresh
// back stack on the list.
func NewApp(holder *session.Holder, nav *navigation.Navigator, log *logger.Logger) *App {
	if nav == nil {
		nav = navigation.NewNavigator(nil)
	}
	if log == nil {
		log = logger.Nop()
	}

	styles := GetStyles()

	delegate := list.NewDefaultDelegate()
	peopleList := list.New(nil, delegate, defaultWidth, defaultHeight-helpHeight)
	peopleList.Title = emoji.Prefix("people") + "Star Wars characters"
	peopleList.Styles.Title = styles.Title
	peopleList.SetStatusBarItemName("character", "characters")
	// quitting is handled here so q never leaks through while filtering
	peopleList.KeyMap.Quit.SetEnabled(false)
	peopleList.KeyMap.ForceQuit.SetEnabled(false)
	keys := newKeyMap()
	peopleList.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open}
	}

	m := &App{
		holder:  holder,
		nav:     nav,
		log:     log,
		status:  holder.Status(),
		list:    peopleList,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Spinner)),
		help:    help.New(),
		keys:    keys,
		styles:  styles,
		width:   defaultWidth,
		height:  defaultHeight,
	}

	if session.IsSettled(m.status) {
		m.applyStatus(m.status)
	}

	return m
}

// Init starts the fetch if nobody has and waits for it to settle
func (m *App) Init() tea.Cmd {
	if session.IsSettled(m.status) {
		return nil
	}
	m.holder.Load(context.Background())
	return tea.Batch(m.spinner.Tick, waitForFetch(m.holder))
}

// Update handles messages and navigation
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case fetchSettledMsg:
		return m.handleFetchSettled(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	if m.Screen() == ScreenList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Screen reports what is being drawn
func (m *App) Screen() Screen {
	if !session.IsSettled(m.status) {
		return ScreenLoading
	}
	if m.nav.Current().IsDetail() {
		return ScreenDetail
	}
	if _, failed := m.status.(session.Failed); failed {
		return ScreenFailed
	}
	return ScreenList
}

// Rows returns the names shown by the list, in display order
func (m *App) Rows() []string {
	items := m.list.Items()
	rows := make([]string, 0, len(items))
	for _, item := range items {
		if rec, ok := item.(people.Record); ok {
			rows = append(rows, rec.Name)
		}
	}
	return rows
}

// Detail returns the record the detail screen shows. The name comes from
// the current route; the first record with that name wins.
func (m *App) Detail() (people.Record, bool) {
	route := m.nav.Current()
	if !route.IsDetail() {
		return people.Record{}, false
	}
	return people.FindByName(session.RecordsOf(m.status), route.Person)
}

// Navigator returns the back stack the browser drives
func (m *App) Navigator() *navigation.Navigator {
	return m.nav
}

// Handler functions for Update method

func (m *App) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.list.SetSize(msg.Width, max(1, msg.Height-helpHeight))
	return m, nil
}

func (m *App) handleFetchSettled(msg fetchSettledMsg) (tea.Model, tea.Cmd) {
	return m, m.applyStatus(msg.status)
}

func (m *App) applyStatus(status session.Status) tea.Cmd {
	m.status = status

	switch s := status.(type) {
	case session.Loaded:
		items := make([]list.Item, 0, len(s.Records))
		for _, rec := range s.Records {
			items = append(items, rec)
		}
		m.log.DebugWithFields("list ready", []logger.Field{logger.Count(len(items))})
		return m.list.SetItems(items)
	case session.Failed:
		m.log.DebugWithFields("list failed", []logger.Field{logger.F("message", s.Message)})
		return m.list.SetItems(nil)
	}
	return nil
}

func (m *App) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if session.IsSettled(m.status) {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input
func (m *App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.handleQuit()
	}

	screen := m.Screen()

	// while the filter prompt is open every key belongs to it
	if screen == ScreenList && m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.handleQuit()
	case screen == ScreenDetail && key.Matches(msg, m.keys.Back):
		return m.handleBack()
	case screen == ScreenList && key.Matches(msg, m.keys.Open):
		return m.handleOpen()
	}

	if screen == ScreenList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *App) handleQuit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m *App) handleOpen() (tea.Model, tea.Cmd) {
	rec, ok := m.list.SelectedItem().(people.Record)
	if !ok {
		return m, nil
	}
	if err := m.nav.Open(rec.Name); err != nil {
		m.log.WarnWithFields("cannot open detail", []logger.Field{logger.Error(err)})
		return m, nil
	}
	m.log.DebugWithFields("navigate", []logger.Field{logger.F("path", m.nav.Path())})
	return m, nil
}

func (m *App) handleBack() (tea.Model, tea.Cmd) {
	m.nav.Back()
	m.log.DebugWithFields("navigate", []logger.Field{logger.F("path", m.nav.Path())})
	return m, nil
}

// Run runs the browser on the alternate screen until the user quits or ctx
// ends
func Run(ctx context.Context, holder *session.Holder, nav *navigation.Navigator, log *logger.Logger) error {
	model := NewApp(holder, nav, log)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
