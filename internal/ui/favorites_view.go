package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shelf/internal/potter"
)

const (
	favoritesEmptyText = "No favorite books yet"
	favoritesEmptyHint = "Open a book and press a to add it here."
)

// favoritesProps is everything the Favorites screen renders from.
type favoritesProps struct {
	Books []potter.Book
	Width int
}

// renderFavorites returns the scrollable body of the Favorites screen:
// one card per book, in stored order.
func renderFavorites(p favoritesProps, styles Styles) string {
	width := p.Width
	if width <= 0 {
		width = CardWidth
	}
	if len(p.Books) == 0 {
		empty := lipgloss.JoinVertical(lipgloss.Center,
			"",
			styles.DangerText.Render("♥"),
			"",
			styles.Text.Render(favoritesEmptyText),
			styles.FaintText.Render(favoritesEmptyHint),
		)
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, empty)
	}

	heading := styles.GoldText.Render(fmt.Sprintf("♥ My Favorite Books (%d) ♥", len(p.Books)))

	perRow := maxInt(1, width/(CardWidth+1))
	var rows []string
	for start := 0; start < len(p.Books); start += perRow {
		end := minInt(start+perRow, len(p.Books))
		cards := make([]string, 0, end-start)
		for _, book := range p.Books[start:end] {
			cards = append(cards, renderFavoriteCard(book, styles))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(cards)...))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		heading,
		"",
		strings.Join(rows, "\n"),
	)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

func renderFavoriteCard(book potter.Book, styles Styles) string {
	inner := CardWidth - 4
	lines := []string{
		styles.GoldText.Render(truncate("Book "+itoa(book.Number), inner)),
		styles.Text.Bold(true).Width(inner).Render(strings.TrimSpace(book.OriginalTitle)),
		styles.MutedText.Render(truncate(orDash(book.ReleaseDate), inner)),
		styles.MutedText.Render(fmt.Sprintf("%d pages", book.Pages)),
	}
	if cover := strings.TrimSpace(book.Cover); cover != "" {
		lines = append(lines, styles.FaintText.Render(truncateMiddle(cover, inner)))
	}
	return styles.Card.Width(CardWidth - 2).Render(strings.Join(lines, "\n"))
}

func joinWithGap(blocks []string) []string {
	if len(blocks) < 2 {
		return blocks
	}
	out := make([]string, 0, len(blocks)*2-1)
	for i, b := range blocks {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, b)
	}
	return out
}
