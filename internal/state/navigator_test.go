package state

import (
	"errors"
	"testing"

	"github.com/five82/shelf/internal/potter"
)

func azkaban() potter.Book {
	return potter.Book{Number: 3, OriginalTitle: "The Prisoner of Azkaban", Pages: 317}
}

func TestNewNavigator_StartsHomeEmpty(t *testing.T) {
	n := NewNavigator()
	snap := n.Snapshot()
	if snap.Screen != ScreenHome {
		t.Fatalf("Screen = %v, want home", snap.Screen)
	}
	if snap.HomeBook != nil || snap.Selected != nil {
		t.Fatalf("books = %v/%v, want nil", snap.HomeBook, snap.Selected)
	}
	if snap.Loading {
		t.Fatal("Loading = true, want false before any fetch")
	}
}

func TestGoHome_StartsOneFetchPerEntry(t *testing.T) {
	n := NewNavigator()

	first := n.GoHome()
	if !n.Snapshot().Loading {
		t.Fatal("Loading = false after GoHome, want true")
	}
	n.GoToFavorites()
	second := n.GoHome()
	if second.Generation != first.Generation+1 {
		t.Fatalf("generation = %d, want %d", second.Generation, first.Generation+1)
	}
}

func TestResolveFetch_AppliesLatestOnHome(t *testing.T) {
	n := NewNavigator()
	ticket := n.GoHome()

	if got := n.ResolveFetch(ticket, azkaban(), nil); got != FetchApplied {
		t.Fatalf("outcome = %v, want applied", got)
	}
	snap := n.Snapshot()
	if snap.Loading {
		t.Fatal("Loading = true after resolve, want false")
	}
	if snap.HomeBook == nil || snap.HomeBook.Number != 3 {
		t.Fatalf("HomeBook = %#v, want number 3", snap.HomeBook)
	}
}

func TestResolveFetch_ErrorKeepsPreviousBook(t *testing.T) {
	n := NewNavigator()
	n.ResolveFetch(n.GoHome(), azkaban(), nil)

	ticket := n.GoHome()
	if got := n.ResolveFetch(ticket, potter.Book{}, errors.New("offline")); got != FetchFailed {
		t.Fatalf("outcome = %v, want failed", got)
	}
	snap := n.Snapshot()
	if snap.Loading {
		t.Fatal("Loading = true after failed fetch, want false")
	}
	if snap.HomeBook == nil || snap.HomeBook.Number != 3 {
		t.Fatalf("HomeBook = %#v, want previous book kept", snap.HomeBook)
	}
}

func TestResolveFetch_IgnoresResultAfterLeavingHome(t *testing.T) {
	n := NewNavigator()
	ticket := n.GoHome()
	n.GoToFavorites()

	if got := n.ResolveFetch(ticket, azkaban(), nil); got != FetchStale {
		t.Fatalf("outcome = %v, want stale", got)
	}
	snap := n.Snapshot()
	if snap.Screen != ScreenFavorites {
		t.Fatalf("Screen = %v, want favorites", snap.Screen)
	}
	if snap.HomeBook != nil {
		t.Fatalf("HomeBook = %#v, want nil", snap.HomeBook)
	}
	if snap.Loading {
		t.Fatal("Loading = true, want false once the latest fetch settled")
	}
}

func TestResolveFetch_IgnoresSupersededTicket(t *testing.T) {
	n := NewNavigator()
	old := n.GoHome()
	n.GoToFavorites()
	current := n.GoHome()

	if got := n.ResolveFetch(old, azkaban(), nil); got != FetchStale {
		t.Fatalf("outcome = %v, want stale", got)
	}
	if !n.Snapshot().Loading {
		t.Fatal("Loading = false, want true while the current fetch is outstanding")
	}
	if got := n.ResolveFetch(current, potter.Book{Number: 5, OriginalTitle: "x"}, nil); got != FetchApplied {
		t.Fatalf("outcome = %v, want applied", got)
	}
	if n.Snapshot().HomeBook.Number != 5 {
		t.Fatal("expected current fetch's book on Home")
	}
}

func TestGoToDetails_SelectsBook(t *testing.T) {
	n := NewNavigator()
	n.GoToDetails(azkaban())

	snap := n.Snapshot()
	if snap.Screen != ScreenDetails {
		t.Fatalf("Screen = %v, want details", snap.Screen)
	}
	if snap.Selected == nil || snap.Selected.Number != 3 {
		t.Fatalf("Selected = %#v, want number 3", snap.Selected)
	}

	// Snapshots are copies.
	snap.Selected.Number = 99
	if n.Snapshot().Selected.Number != 3 {
		t.Fatal("Snapshot should clone the selected book")
	}
}

func TestScreenString(t *testing.T) {
	cases := map[Screen]string{
		ScreenHome:      "home",
		ScreenDetails:   "details",
		ScreenFavorites: "favorites",
		Screen(42):      "unknown",
	}
	for screen, want := range cases {
		if got := screen.String(); got != want {
			t.Fatalf("Screen(%d).String() = %q, want %q", int(screen), got, want)
		}
	}
}
