package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/five82/shelf/internal/potter"
)

func TestRenderHomeLoadingWinsOverBook(t *testing.T) {
	book := azkaban()
	out := renderHome(homeProps{Book: &book, Loading: true, Spinner: "*", Width: 80, Height: 20}, GetTheme("").Styles())

	assert.Contains(t, out, homeLoadingText)
	assert.NotContains(t, out, book.Label())
	assert.NotContains(t, out, homeEmptyText)
}

func TestRenderHomeEmpty(t *testing.T) {
	out := renderHome(homeProps{Width: 80, Height: 20}, GetTheme("").Styles())
	assert.Contains(t, out, homeEmptyText)
}

func TestRenderHomeBook(t *testing.T) {
	book := azkaban()
	out := renderHome(homeProps{Book: &book, Width: 100, Height: 30}, GetTheme("").Styles())

	assert.Contains(t, out, "Book 3 - The Prisoner of Azkaban")
	assert.Contains(t, out, homeHintText)
	assert.Contains(t, out, "azkaban.png")
}

func TestRenderDetailsWithoutSelection(t *testing.T) {
	out := renderDetails(detailsProps{Width: 80}, GetTheme("").Styles())
	assert.Contains(t, out, detailsEmptyText)
}

func TestRenderDetailsShowsFieldsAndActions(t *testing.T) {
	book := azkaban()
	out := renderDetails(detailsProps{Book: &book, Width: 100}, GetTheme("").Styles())

	for _, want := range []string{
		"Book 3 - The Prisoner of Azkaban",
		"Release date",
		"Jul 8, 1999",
		"317",
		"Harry's third year at Hogwarts.",
		"back to home",
		"add to favorites",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderDetailsBlankFieldsUseDash(t *testing.T) {
	book := potter.Book{Number: 5, OriginalTitle: "The Order of the Phoenix"}
	out := renderDetails(detailsProps{Book: &book, Width: 100}, GetTheme("").Styles())
	assert.Contains(t, out, "—")
}

func TestRenderFavoritesEmpty(t *testing.T) {
	out := renderFavorites(favoritesProps{Width: 80}, GetTheme("").Styles())
	assert.Contains(t, out, favoritesEmptyText)
	assert.Contains(t, out, favoritesEmptyHint)
}

func TestRenderFavoritesOneCardPerBookInOrder(t *testing.T) {
	books := []potter.Book{azkaban(), stone()}
	out := renderFavorites(favoritesProps{Books: books, Width: 120}, GetTheme("").Styles())

	assert.Contains(t, out, "My Favorite Books (2)")
	assert.Contains(t, out, "317 pages")
	assert.Contains(t, out, "223 pages")
	assert.Contains(t, out, "Jun 26, 1997")
	assert.Less(t, strings.Index(out, "Book 3"), strings.Index(out, "Book 1"))
}

func TestRenderFavoritesWrapsOnNarrowScreens(t *testing.T) {
	books := []potter.Book{azkaban(), stone()}
	out := renderFavorites(favoritesProps{Books: books, Width: CardWidth}, GetTheme("").Styles())

	lines := strings.Split(out, "\n")
	var row3, row1 int
	for i, line := range lines {
		if strings.Contains(line, "Book 3") {
			row3 = i
		}
		if strings.Contains(line, "Book 1") {
			row1 = i
		}
	}
	assert.Greater(t, row1, row3, "second card should sit below the first")
}
