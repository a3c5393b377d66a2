package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNoticeDismissKeys(t *testing.T) {
	keys := DefaultKeyMap()
	n := newNotice(noticeInfo, "Heads up", "Something happened")

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyEsc},
		{Type: tea.KeySpace, Runes: []rune{' '}},
	} {
		if _, _, closed := n.Update(msg, keys); !closed {
			t.Fatalf("notice did not close on %q", msg.String())
		}
	}

	if _, _, closed := n.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, keys); closed {
		t.Fatal("notice closed on an unrelated key")
	}
	if _, _, closed := n.Update(tea.WindowSizeMsg{Width: 10, Height: 10}, keys); closed {
		t.Fatal("notice closed on a non-key message")
	}
}

func TestNoticeViewShowsTitleBodyAndDetail(t *testing.T) {
	n := newNotice(noticeError, "Could not load a book", "Please try again.").
		withDetail("  status 503  ")

	out := n.View(GetTheme(""), 80, 20)
	for _, want := range []string{"Could not load a book", "Please try again.", "status 503", "OK"} {
		if !strings.Contains(out, want) {
			t.Fatalf("notice view missing %q:\n%s", want, out)
		}
	}
}
