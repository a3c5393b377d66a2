package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shelf/internal/state"
)

const appTitle = "⚡ Harry Potter Books"

// renderHeader renders the title bar with screen tabs and the rule below it.
func (m Model) renderHeader(snap state.Snapshot, favoriteCount int) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	tabs := []string{
		m.renderTab(styles, "Home", snap.Screen == state.ScreenHome),
		m.renderTab(styles, "Details", snap.Screen == state.ScreenDetails),
		m.renderTab(styles, fmt.Sprintf("Favorites %d", favoriteCount), snap.Screen == state.ScreenFavorites),
	}

	left := bg.Render(appTitle, styles.Logo) + bg.Spaces(2) + bg.Join(tabs, " ")
	right := bg.Render(m.theme.Name, styles.FaintText)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	line := left
	if gap > 0 {
		line = left + bg.Spaces(gap) + right
	}

	bar := styles.Header.Width(m.width).Render(line)
	rule := styles.FaintText.Render(strings.Repeat("─", maxInt(0, m.width)))
	return bar + "\n" + rule
}

func (m Model) renderTab(styles Styles, label string, active bool) string {
	if active {
		return styles.ActiveTab.Render(label)
	}
	return styles.Tab.Background(lipgloss.Color(m.theme.Surface)).Render(label)
}

// renderFooter renders contextual key hints for the active screen.
func (m Model) renderFooter(screen state.Screen) string {
	styles := m.theme.Styles()
	h := m.help
	h.Width = maxInt(0, m.width-2)
	return styles.Footer.Width(m.width).Render(h.ShortHelpView(m.keys.ShortHelpFor(screen)))
}
