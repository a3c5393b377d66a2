package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeWarning
	noticeError
)

// noticeModal is a blocking acknowledgement: nothing else reacts to keys
// until it is dismissed.
type noticeModal struct {
	kind   noticeKind
	title  string
	body   string
	detail string
}

var _ Modal = noticeModal{}

func newNotice(kind noticeKind, title, body string) noticeModal {
	return noticeModal{kind: kind, title: title, body: body}
}

func (n noticeModal) withDetail(detail string) noticeModal {
	n.detail = strings.TrimSpace(detail)
	return n
}

func (n noticeModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return n, nil, false
	}
	if key.Matches(keyMsg, keys.Dismiss) {
		return n, nil, true
	}
	return n, nil, false
}

func (n noticeModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	modalWidth := 48
	if width > 0 && width-4 < modalWidth {
		modalWidth = maxInt(20, width-4)
	}
	inner := modalWidth - 6

	var b strings.Builder
	titleStyle := styles.Text.Bold(true).Foreground(styles.NoticeBorder(n.kind))
	b.WriteString(titleStyle.Render(n.title))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Width(inner).Render(n.body))
	if n.detail != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Width(inner).Render(truncate(n.detail, inner*3)))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.PrimaryButton.Render("OK"))
	b.WriteString(" ")
	b.WriteString(styles.FaintText.Render("enter"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.NoticeBorder(n.kind)).
		Padding(1, 2).
		Width(modalWidth).
		Render(b.String())

	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
