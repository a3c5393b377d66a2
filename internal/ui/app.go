package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shelf/internal/favorites"
	"github.com/five82/shelf/internal/potter"
	"github.com/five82/shelf/internal/prefs"
	"github.com/five82/shelf/internal/state"
)

// Navigator is the navigation controller the UI drives.
// *state.Navigator implements it.
type Navigator interface {
	GoHome() state.FetchTicket
	GoToDetails(book potter.Book)
	GoToFavorites()
	ResolveFetch(ticket state.FetchTicket, book potter.Book, err error) state.FetchOutcome
	Snapshot() state.Snapshot
}

// FavoritesStore is the persistence the UI needs for favorites.
// *favorites.Store implements it.
type FavoritesStore interface {
	ReadAll() []potter.Book
	Add(book potter.Book) (favorites.AddResult, error)
}

var (
	_ Navigator      = (*state.Navigator)(nil)
	_ FavoritesStore = (*favorites.Store)(nil)
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Fetcher   potter.BookFetcher
	Favorites FavoritesStore
	Navigator Navigator
	Logger    *slog.Logger
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Collaborators
	ctx       context.Context
	fetcher   potter.BookFetcher
	favorites FavoritesStore
	nav       Navigator
	logger    *slog.Logger
	prefsPath string

	// UI state
	keys   keyMap
	help   help.Model
	theme  Theme
	width  int
	height int
	ready  bool

	spinner           spinner.Model
	detailsViewport   viewport.Model
	favoritesViewport viewport.Model

	showHelp bool
	modal    Modal
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	nav := opts.Navigator
	if nav == nil {
		nav = state.NewNavigator()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(themeName)
	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Gold))

	return Model{
		ctx:       ctx,
		fetcher:   opts.Fetcher,
		favorites: opts.Favorites,
		nav:       nav,
		logger:    logger,
		prefsPath: prefsPath,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     theme,
		spinner:   spin,
	}
}

// Init implements tea.Model. Start-up enters Home, which fetches the
// first book.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, m.goHome())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewports()
		m.ready = true
		m.refreshContent()
		return m, nil

	case spinner.TickMsg:
		// Let the tick chain die once nothing is loading.
		if !m.nav.Snapshot().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case bookMsg:
		m.handleBook(msg)
		return m, nil

	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)
		next.refreshContent()
		return next, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	snap := m.nav.Snapshot()
	favs := m.readFavorites()

	var body string
	if m.modal != nil {
		body = m.modal.View(m.theme, m.width, m.contentHeight())
	} else {
		body = m.renderBody(snap, favs)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(snap, len(favs)),
		body,
		m.renderFooter(snap.Screen),
	)
}

func (m Model) renderBody(snap state.Snapshot, favs []potter.Book) string {
	styles := m.theme.Styles()
	switch snap.Screen {
	case state.ScreenHome:
		return renderHome(homeProps{
			Book:    snap.HomeBook,
			Loading: snap.Loading,
			Spinner: m.spinner.View(),
			Width:   m.width,
			Height:  m.contentHeight(),
		}, styles)
	case state.ScreenDetails:
		vp := m.detailsViewport
		vp.SetContent(renderDetails(detailsProps{Book: snap.Selected, Width: m.width}, styles))
		return vp.View()
	case state.ScreenFavorites:
		vp := m.favoritesViewport
		vp.SetContent(renderFavorites(favoritesProps{Books: favs, Width: m.width}, styles))
		return vp.View()
	default:
		return ""
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// An open notice swallows everything until acknowledged.
	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	snap := m.nav.Snapshot()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Home):
		// Already on Home is not a new entry, so no new fetch.
		if snap.Screen == state.ScreenHome {
			return m, nil
		}
		return m, m.goHome()

	case key.Matches(msg, m.keys.Favorites):
		if snap.Screen != state.ScreenFavorites {
			m.nav.GoToFavorites()
			m.favoritesViewport.GotoTop()
		}
		return m, nil
	}

	switch snap.Screen {
	case state.ScreenHome:
		if key.Matches(msg, m.keys.OpenDetails) && !snap.Loading && snap.HomeBook != nil {
			m.nav.GoToDetails(*snap.HomeBook)
			m.detailsViewport.GotoTop()
		}
		return m, nil

	case state.ScreenDetails:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, m.goHome()
		case key.Matches(msg, m.keys.AddFavorite):
			m.addFavorite(snap.Selected)
			return m, nil
		}
		var cmd tea.Cmd
		m.detailsViewport, cmd = m.detailsViewport.Update(msg)
		return m, cmd

	case state.ScreenFavorites:
		var cmd tea.Cmd
		m.favoritesViewport, cmd = m.favoritesViewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// goHome enters Home and returns the command running its one fetch.
func (m *Model) goHome() tea.Cmd {
	ticket := m.nav.GoHome()
	m.logger.Debug("fetching random book", "generation", ticket.Generation)
	return tea.Batch(fetchBookCmd(m.ctx, m.fetcher, ticket), m.spinner.Tick)
}

func (m *Model) handleBook(msg bookMsg) {
	outcome := m.nav.ResolveFetch(msg.ticket, msg.book, msg.err)
	switch outcome {
	case state.FetchApplied:
		m.logger.Info("random book loaded",
			"number", msg.book.Number,
			"title", msg.book.OriginalTitle,
			"generation", msg.ticket.Generation)
	case state.FetchFailed:
		m.logger.Error("random book fetch failed", "error", msg.err)
		m.modal = newNotice(noticeError, "Could not load a book",
			"Error loading the book. Please try again.").withDetail(errString(msg.err))
	case state.FetchStale:
		m.logger.Debug("dropping stale book response",
			"generation", msg.ticket.Generation,
			"error", msg.err)
	}
}

func (m *Model) addFavorite(book *potter.Book) {
	if book == nil || m.favorites == nil {
		return
	}
	result, err := m.favorites.Add(*book)
	switch {
	case err != nil:
		m.logger.Error("add favorite failed", "number", book.Number, "error", err)
		m.modal = newNotice(noticeError, "Could not save favorite",
			"Error saving the favorite.").withDetail(err.Error())
	case result == favorites.AlreadyExists:
		m.modal = newNotice(noticeWarning, "Already a favorite",
			"This book is already in your favorites!")
	default:
		m.modal = newNotice(noticeSuccess, "Added to favorites",
			fmt.Sprintf("%s was added to your favorites!", book.Label()))
	}
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Gold))
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save theme preference failed", "error", err)
	}
}

func (m *Model) readFavorites() []potter.Book {
	if m.favorites == nil {
		return nil
	}
	return m.favorites.ReadAll()
}

func (m *Model) contentHeight() int {
	return maxInt(1, m.height-HeaderHeight-FooterHeight)
}

func (m *Model) resizeViewports() {
	h := m.contentHeight()
	if !m.ready {
		m.detailsViewport = viewport.New(m.width, h)
		m.detailsViewport.KeyMap = m.keys.viewportKeys()
		m.favoritesViewport = viewport.New(m.width, h)
		m.favoritesViewport.KeyMap = m.keys.viewportKeys()
		return
	}
	m.detailsViewport.Width = m.width
	m.detailsViewport.Height = h
	m.favoritesViewport.Width = m.width
	m.favoritesViewport.Height = h
}

// refreshContent loads the active scrollable screen so scroll keys know
// how far they can move.
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	snap := m.nav.Snapshot()
	styles := m.theme.Styles()
	switch snap.Screen {
	case state.ScreenDetails:
		m.detailsViewport.SetContent(renderDetails(detailsProps{Book: snap.Selected, Width: m.width}, styles))
	case state.ScreenFavorites:
		m.favoritesViewport.SetContent(renderFavorites(favoritesProps{Books: m.readFavorites(), Width: m.width}, styles))
	}
}

// Messages

type bookMsg struct {
	ticket state.FetchTicket
	book   potter.Book
	err    error
}

// Commands

func fetchBookCmd(ctx context.Context, fetcher potter.BookFetcher, ticket state.FetchTicket) tea.Cmd {
	return func() tea.Msg {
		if fetcher == nil {
			return bookMsg{ticket: ticket, err: errors.New("no book source configured")}
		}
		book, err := fetcher.FetchRandomBook(ctx)
		return bookMsg{ticket: ticket, book: book, err: err}
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Run starts the Bubble Tea program and blocks until the user quits or
// the context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
