package state

import (
	"sync"

	"github.com/five82/shelf/internal/potter"
)

// Screen is one of the three mutually exclusive top-level views.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenDetails
	ScreenFavorites
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenDetails:
		return "details"
	case ScreenFavorites:
		return "favorites"
	default:
		return "unknown"
	}
}

// FetchTicket identifies one random-book fetch started by GoHome.
type FetchTicket struct {
	Generation uint64
}

// FetchOutcome reports how ResolveFetch settled a fetch.
type FetchOutcome int

const (
	// FetchApplied means the book replaced the one shown on Home.
	FetchApplied FetchOutcome = iota
	// FetchFailed means the error should be surfaced; the previous book stays.
	FetchFailed
	// FetchStale means a newer fetch started or the user left Home.
	FetchStale
)

func (o FetchOutcome) String() string {
	switch o {
	case FetchApplied:
		return "applied"
	case FetchFailed:
		return "failed"
	case FetchStale:
		return "stale"
	default:
		return "unknown"
	}
}

// Snapshot is a copy of the navigation state for rendering.
type Snapshot struct {
	Screen     Screen
	HomeBook   *potter.Book
	Selected   *potter.Book
	Loading    bool
	Generation uint64
}

// Navigator owns the screen, the selected book and the Home fetch state.
// It is safe for concurrent use.
type Navigator struct {
	mu         sync.Mutex
	screen     Screen
	homeBook   *potter.Book
	selected   *potter.Book
	loading    bool
	generation uint64
}

// NewNavigator starts on Home with nothing selected and no fetch issued.
func NewNavigator() *Navigator {
	return &Navigator{screen: ScreenHome}
}

// GoHome enters Home and starts a new fetch. The caller must run exactly
// one fetch for the returned ticket and hand the result to ResolveFetch.
func (n *Navigator) GoHome() FetchTicket {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.screen = ScreenHome
	n.loading = true
	n.generation++
	return FetchTicket{Generation: n.generation}
}

// GoToDetails selects book and enters Details.
func (n *Navigator) GoToDetails(book potter.Book) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.selected = &book
	n.screen = ScreenDetails
}

// GoToFavorites enters Favorites. No fetch is started.
func (n *Navigator) GoToFavorites() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.screen = ScreenFavorites
}

// ResolveFetch settles the fetch for ticket. Only the latest fetch clears
// the loading flag, and its result is applied only while Home is showing.
func (n *Navigator) ResolveFetch(ticket FetchTicket, book potter.Book, err error) FetchOutcome {
	n.mu.Lock()
	defer n.mu.Unlock()

	if ticket.Generation != n.generation {
		return FetchStale
	}
	n.loading = false
	if n.screen != ScreenHome {
		return FetchStale
	}
	if err != nil {
		return FetchFailed
	}
	n.homeBook = &book
	return FetchApplied
}

// Screen returns the active screen.
func (n *Navigator) Screen() Screen {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.screen
}

// Snapshot returns a copy safe to hand to views.
func (n *Navigator) Snapshot() Snapshot {
	n.mu.Lock()
	defer n.mu.Unlock()

	return Snapshot{
		Screen:     n.screen,
		HomeBook:   cloneBook(n.homeBook),
		Selected:   cloneBook(n.selected),
		Loading:    n.loading,
		Generation: n.generation,
	}
}

func cloneBook(b *potter.Book) *potter.Book {
	if b == nil {
		return nil
	}
	dup := *b
	return &dup
}
