// Package state holds Shelf's navigation state.
//
// # Overview
//
// Navigator is the three-state machine behind the UI. It records which
// screen is active, which book is selected for Details, the book currently
// shown on Home, and whether a Home fetch is outstanding. Nothing here is
// persisted; a new process always starts on Home with nothing selected.
//
// # Transitions
//
//	             GoHome()                    GoToDetails(book)
//	  ┌──────────────────────────┐        ┌──────────────────┐
//	  │                          ↓        │                  ↓
//	┌─┴─────────┐            ┌───────────┐            ┌─────────────┐
//	│ Favorites │←───────────│   Home    │───────────→│   Details   │
//	└───────────┘ GoToFav()  └───────────┘            └──────┬──────┘
//	                             ↑                            │
//	                             └────────── GoHome() ────────┘
//
// There is no history stack. Every entry into Home, including the way back
// from Details, starts a fresh random-book fetch and discards the idea of
// "the previous book". GoToFavorites never fetches.
//
// # Fetch Tickets
//
// GoHome bumps a generation counter and returns a FetchTicket. The caller
// runs one fetch for it and reports the result through ResolveFetch:
//
//   - A ticket from an older generation is stale and changes nothing.
//   - The latest ticket always clears the loading flag.
//   - Its book (or error) is applied only if Home is still the active
//     screen. A response that arrives after the user moved to Favorites or
//     Details is dropped.
//   - On error the previously shown Home book stays in place.
//
// # Concurrency Model
//
// Navigator has no lock. The Bubble Tea update loop is its only caller, and
// fetch results arrive there as messages, so every mutation happens on one
// goroutine.
//
// # Snapshots
//
// Views render from Snapshot, which copies the book pointers so a view can
// never mutate navigator state.
package state
