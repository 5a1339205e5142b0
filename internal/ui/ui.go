package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"sportsdeck/internal/models"
	"sportsdeck/internal/state"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	EventListView ViewState = iota
	FavouritesView
	DetailView
)

// SportsAPI is the slice of the sports data client the TUI consumes.
// Implemented by [services.SportsService].
type SportsAPI interface {
	SeasonEvents(ctx context.Context, leagueID, season string) ([]models.Event, error)
}

type eventsFetchedMsg struct {
	events []models.Event
	err    error
}

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	view     ViewState
	app      *state.App
	sports   SportsAPI
	leagueID string
	season   string

	width     int
	height    int
	eventList list.Model
	favList   list.Model
	events    []models.Event
	selected  *models.Event
	err       error

	styles *Palette
	help   help.Model
	keys   keyMap
}

// NewModel creates a new TUI model with the provided dependencies. The
// palette follows the restored dark-mode preference.
func NewModel(ctx context.Context, app *state.App, sports SportsAPI, leagueID, season string) *Model {
	styles := LightPalette()
	if app.Theme.IsDark() {
		styles = DarkPalette()
	}

	return &Model{
		ctx:      ctx,
		view:     EventListView,
		app:      app,
		sports:   sports,
		leagueID: leagueID,
		season:   season,
		styles:   styles,
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// Init initializes the TUI by fetching the season schedule.
func (m *Model) Init() tea.Cmd {
	return m.fetchEvents()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.eventList.Width() == 0 {
			m.eventList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.favList.Width() == 0 {
			m.favList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case EventListView:
			return m.handleEventListKeys(msg)
		case FavouritesView:
			return m.handleFavouritesKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		}

	case eventsFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.events = msg.events
		m.eventList = list.New(m.eventItems(), list.NewDefaultDelegate(), 0, 0)
		m.eventList.Title = fmt.Sprintf("%s %s", m.leagueID, m.season)
		if len(m.events) > 0 {
			m.eventList.Title = fmt.Sprintf("%s %s", m.events[0].League, m.season)
		}
		m.eventList.SetSize(m.width-4, m.height-8)
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return m.styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case EventListView:
		return m.renderEventList()
	case FavouritesView:
		return m.renderFavourites()
	case DetailView:
		return m.renderDetail()
	default:
		return ""
	}
}

func (m *Model) handleEventListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if event, ok := m.selectedEvent(m.eventList); ok {
			m.selected = &event
			m.view = DetailView
		}
		return m, nil
	case "f":
		if event, ok := m.selectedEvent(m.eventList); ok {
			m.toggleFavourite(event)
			m.refreshEventList()
		}
		return m, nil
	case "t":
		m.toggleTheme()
		return m, nil
	case "tab":
		m.openFavourites()
		return m, nil
	}

	var cmd tea.Cmd
	m.eventList, cmd = m.eventList.Update(msg)
	return m, cmd
}

func (m *Model) handleFavouritesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "tab":
		m.view = EventListView
		m.refreshEventList()
		return m, nil
	case "enter":
		if event, ok := m.selectedEvent(m.favList); ok {
			m.selected = &event
			m.view = DetailView
		}
		return m, nil
	case "f":
		// from the favourites list, f removes
		if event, ok := m.selectedEvent(m.favList); ok {
			m.app.Favourites.Remove(m.ctx, event.ID)
			m.openFavourites()
		}
		return m, nil
	case "t":
		m.toggleTheme()
		return m, nil
	}

	var cmd tea.Cmd
	m.favList, cmd = m.favList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.selected = nil
		m.view = EventListView
		m.refreshEventList()
		return m, nil
	case "f":
		if m.selected != nil {
			m.toggleFavourite(*m.selected)
		}
		return m, nil
	case "t":
		m.toggleTheme()
		return m, nil
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case EventListView:
		m.eventList, cmd = m.eventList.Update(msg)
	case FavouritesView:
		m.favList, cmd = m.favList.Update(msg)
	}
	return m, cmd
}

func (m *Model) fetchEvents() tea.Cmd {
	return func() tea.Msg {
		events, err := m.sports.SeasonEvents(m.ctx, m.leagueID, m.season)
		return eventsFetchedMsg{events: events, err: err}
	}
}

func (m *Model) selectedEvent(l list.Model) (models.Event, bool) {
	item := l.SelectedItem()
	if item == nil {
		return models.Event{}, false
	}
	ei, ok := item.(eventItem)
	if !ok {
		return models.Event{}, false
	}
	return ei.event, true
}

func (m *Model) toggleFavourite(event models.Event) {
	if m.app.Favourites.Contains(event.ID) {
		m.app.Favourites.Remove(m.ctx, event.ID)
		return
	}
	m.app.Favourites.Add(m.ctx, event)
}

func (m *Model) toggleTheme() {
	if m.app.Theme.Toggle(m.ctx) {
		m.styles = DarkPalette()
	} else {
		m.styles = LightPalette()
	}
}

func (m *Model) eventItems() []list.Item {
	items := make([]list.Item, len(m.events))
	for i, event := range m.events {
		items[i] = eventItem{event: event, favourite: m.app.Favourites.Contains(event.ID)}
	}
	return items
}

func (m *Model) refreshEventList() {
	m.eventList.SetItems(m.eventItems())
}

func (m *Model) openFavourites() {
	favourites := m.app.Favourites.Items()
	items := make([]list.Item, len(favourites))
	for i, event := range favourites {
		items[i] = eventItem{event: event, favourite: true}
	}
	m.favList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.favList.Title = "Favourites"
	m.favList.SetSize(m.width-4, m.height-8)
	m.view = FavouritesView
}

func (m *Model) renderEventList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.favourite, m.keys.tab, m.keys.quit}
	helpView := m.styles.help.Render(m.help.ShortHelpView(helpKeys))
	return fmt.Sprintf("%s\n\n%s", m.eventList.View(), helpView)
}

func (m *Model) renderFavourites() string {
	removeKey := key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "remove"),
	)
	helpKeys := []key.Binding{m.keys.enter, removeKey, m.keys.back, m.keys.quit}
	helpView := m.styles.help.Render(m.help.ShortHelpView(helpKeys))
	return fmt.Sprintf("%s\n\n%s", m.favList.View(), helpView)
}

func (m *Model) renderDetail() string {
	if m.selected == nil {
		return m.styles.err.Render("No event selected\n\nPress esc to go back")
	}

	event := *m.selected
	title := m.styles.title.Render(event.Name)

	info := fmt.Sprintf("League: %s\nDate:   %s %s\nVenue:  %s\nStatus: %s",
		event.League, event.Date, event.Time, event.Venue, event.DisplayStatus())

	if event.HasScore() {
		score := fmt.Sprintf("%s %s - %s %s", event.HomeTeam, event.HomeScore, event.AwayScore, event.AwayTeam)
		info = fmt.Sprintf("%s\n\n%s", info, m.styles.ok.Render(score))
	}

	if event.Description != "" {
		info = fmt.Sprintf("%s\n\n%s", info, event.Description)
	}

	var marker string
	if m.app.Favourites.Contains(event.ID) {
		marker = m.styles.warn.Render("★ favourited")
	}

	helpKeys := []key.Binding{m.keys.favourite, m.keys.back, m.keys.quit}
	helpView := m.styles.help.Render(m.help.ShortHelpView(helpKeys))

	return fmt.Sprintf("%s\n%s\n%s\n\n%s", title, info, marker, helpView)
}
