package potter

import (
	"fmt"
	"strings"
)

// Book mirrors one entry returned by /{lang}/books/random.
type Book struct {
	Number        int    `json:"number" validate:"required,gt=0"`
	Title         string `json:"title,omitempty"`
	OriginalTitle string `json:"originalTitle" validate:"required"`
	ReleaseDate   string `json:"releaseDate"`
	Description   string `json:"description"`
	Pages         int    `json:"pages" validate:"gte=0"`
	Cover         string `json:"cover" validate:"omitempty,url"`
	Index         int    `json:"index,omitempty"`
}

// Label returns the display heading used on every screen, e.g.
// "Book 3 - The Prisoner of Azkaban".
func (b Book) Label() string {
	title := strings.TrimSpace(b.OriginalTitle)
	if title == "" {
		title = strings.TrimSpace(b.Title)
	}
	return fmt.Sprintf("Book %d - %s", b.Number, title)
}

// SameAs reports whether two books share the series number.
func (b Book) SameAs(other Book) bool {
	return b.Number == other.Number
}
