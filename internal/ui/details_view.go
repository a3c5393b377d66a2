package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shelf/internal/potter"
)

const detailsEmptyText = "No book selected"

// detailsProps is everything the Details screen renders from.
type detailsProps struct {
	Book  *potter.Book
	Width int
}

// renderDetails returns the scrollable body of the Details screen.
func renderDetails(p detailsProps, styles Styles) string {
	width := p.Width
	if width <= 0 {
		width = MaxContentWidth
	}
	if p.Book == nil {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, styles.MutedText.Render(detailsEmptyText))
	}
	book := *p.Book

	panelWidth := minInt(width, MaxContentWidth)
	inner := maxInt(20, panelWidth-4)

	sections := []string{
		styles.GoldText.Width(inner).Align(lipgloss.Center).Render(book.Label()),
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, renderCover(book, styles, minInt(CoverWidth, inner))),
		"",
		detailField(styles, inner, "Release date", orDash(book.ReleaseDate)),
		detailField(styles, inner, "Pages", strconv.Itoa(book.Pages)),
		detailField(styles, inner, "Description", orDash(book.Description)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			styles.Button.Render("← back to home  b"),
			"  ",
			styles.PrimaryButton.Render("♥ add to favorites  a"),
		),
	}

	panel := styles.Panel.Width(panelWidth - 2).Render(strings.Join(sections, "\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, panel)
}

func detailField(styles Styles, width int, label, value string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.AccentText.Bold(true).Render(label),
		styles.Text.Width(width).Render(value),
		"",
	)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
