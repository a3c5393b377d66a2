package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shelf/internal/potter"
)

const (
	homeLoadingText = "Summoning a book..."
	homeEmptyText   = "No book available"
	homeHintText    = "press enter to open the book"
)

// homeProps is everything the Home screen renders from.
type homeProps struct {
	Book    *potter.Book
	Loading bool
	Spinner string
	Width   int
	Height  int
}

// renderHome draws the loading, empty or book state. Loading always wins
// so an outstanding fetch never shows a stale or empty book.
func renderHome(p homeProps, styles Styles) string {
	var body string
	switch {
	case p.Loading:
		body = lipgloss.JoinVertical(lipgloss.Center,
			styles.GoldText.Render(p.Spinner),
			"",
			styles.Text.Render(homeLoadingText),
		)
	case p.Book == nil:
		body = styles.MutedText.Render(homeEmptyText)
	default:
		body = lipgloss.JoinVertical(lipgloss.Center,
			renderCover(*p.Book, styles, CoverWidth),
			"",
			styles.GoldText.Render(p.Book.Label()),
			styles.FaintText.Render("✨ "+homeHintText+" ✨"),
		)
	}
	return placeCenter(p.Width, p.Height, body)
}

// renderCover stands in for the cover image: a framed title plate with
// the image URL underneath.
func renderCover(book potter.Book, styles Styles, width int) string {
	inner := width - 6
	title := strings.TrimSpace(book.OriginalTitle)
	if title == "" {
		title = book.Title
	}
	plate := lipgloss.JoinVertical(lipgloss.Center,
		styles.FaintText.Render("HARRY POTTER"),
		"",
		styles.GoldText.Width(inner).Align(lipgloss.Center).Render(title),
		"",
		styles.MutedText.Render("book "+itoa(book.Number)),
	)
	frame := styles.Cover.Width(width - 2).Render(plate)
	if strings.TrimSpace(book.Cover) == "" {
		return frame
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		frame,
		styles.FaintText.Render(truncateMiddle(book.Cover, width)),
	)
}

func placeCenter(width, height int, body string) string {
	if width <= 0 || height <= 0 {
		return body
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
