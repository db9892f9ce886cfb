package main

import (
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hyperlabel/internal/labelconf"
)

func newTestModel(t *testing.T) (model, labelconf.Link) {
	t.Helper()
	doc := labelconf.Default()
	m := newModel(doc, slog.New(slog.DiscardHandler))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(model), doc.Links[0]
}

func click(t *testing.T, m model, x, y int) (model, tea.Cmd) {
	t.Helper()
	updated, _ := m.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m = updated.(model)
	updated, cmd := m.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	return updated.(model), cmd
}

func TestDemo_TapShowsToastAndLogs(t *testing.T) {
	m, link := newTestModel(t)

	x, y, _, h, ok := m.label.LinkCells(link.Range)
	if !ok {
		t.Fatalf("link %q must be laid out", link.Name)
	}
	m, cmd := click(t, m, x, labelTop+y)
	if cmd == nil {
		t.Fatalf("tap on %q must return a command", link.Name)
	}
	msg, ok := cmd().(linkTappedMsg)
	if !ok || msg.link.Name != link.Name {
		t.Fatalf("tap message: got %#v, want link %q", msg, link.Name)
	}

	updated, tick := m.Update(msg)
	m = updated.(model)
	if tick == nil {
		t.Fatalf("toast must schedule its expiry")
	}
	if got, want := m.toast, "opened "+link.Name; got != want {
		t.Fatalf("toast: got %q, want %q", got, want)
	}
	if got, want := m.toastY, labelTop+y+h; got != want {
		t.Fatalf("toast row: got %d, want %d", got, want)
	}
	if got := len(m.entries); got != 1 {
		t.Fatalf("log entries: got %d, want 1", got)
	}
	if !strings.Contains(m.View(), "opened "+link.Name) {
		t.Fatalf("view must contain the toast")
	}

	updated, _ = m.Update(toastExpiredMsg{id: m.toastID})
	m = updated.(model)
	if m.toast != "" {
		t.Fatalf("toast must clear on expiry: got %q", m.toast)
	}
}

func TestDemo_StaleToastExpiryIsIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	m.toast, m.toastID = "opened docs", 2

	updated, _ := m.Update(toastExpiredMsg{id: 1})
	m = updated.(model)
	if m.toast == "" {
		t.Fatalf("an older expiry must not clear a newer toast")
	}
}

func TestDemo_ToggleTolerance(t *testing.T) {
	m, _ := newTestModel(t)
	if !m.label.ExtendsLinkTouchArea() {
		t.Fatalf("tolerance must start enabled")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	m = updated.(model)
	if m.label.ExtendsLinkTouchArea() {
		t.Fatalf("t must disable tolerance")
	}
	if got := len(m.entries); got != 1 {
		t.Fatalf("toggle must be logged: got %d entries", got)
	}
}

func TestDemo_QuitKey(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("q must return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q must quit")
	}
}
