// Package ui provides the terminal user interface for shelf.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds only presentation state
// (size, theme, spinner, viewports, the open notice). Navigation state
// lives in a state.Navigator and favorites live in a favorites.Store; the
// model reaches both through the Navigator and FavoritesStore interfaces
// and never keeps its own copy.
//
// # Package Structure
//
//   - app.go: Model, Init/Update/View, fetch command and Run
//   - keys.go: key bindings and help groups
//   - home_view.go, details_view.go, favorites_view.go: screen renderers
//   - header.go, help.go: chrome and the help overlay
//   - modal.go: blocking notices
//   - theme.go: house color themes
//
// # Screens
//
//   - Home: one random book, fetched every time Home is entered
//   - Details: the selected book with an "add to favorites" action
//   - Favorites: every saved book as a card, in saved order
//
// Screen renderers are pure functions of a props struct. The favorites
// list is read from the store each time it is drawn.
//
// # Event Flow
//
//  1. Init enters Home, which bumps the fetch generation and starts one fetch
//  2. The fetch result arrives as a bookMsg carrying its ticket
//  3. Navigator.ResolveFetch decides whether the result is applied or stale
//  4. Failures and favorite results open a notice that must be dismissed
//  5. Context cancellation quits the program
//
// # Key Bindings
//
//   - h: Home (fetches a new book)
//   - f: Favorites
//   - enter: Open the book shown on Home
//   - a: Add the open book to favorites
//   - b or ESC: Back to Home
//   - j/k, PgUp/PgDn: Scroll
//   - T: Cycle house theme
//   - ?: Help
//   - q or Ctrl+C: Quit
package ui
