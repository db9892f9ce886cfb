package label

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hyperlabel/geom"
	"github.com/iw2rmb/hyperlabel/textlayout"
)

// updateMouse turns left-button mouse messages into tap states:
// press -> began, motion -> changed, release -> ended (or cancelled when
// released outside the label).
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}
		pt := m.cellPoint(msg.X, msg.Y)
		m.pressed = true
		m.handler.HandleTapGesture(Tap{State: TapBegan, Location: pt})
		m.trackPressed(pt)

	case tea.MouseActionMotion:
		if !m.pressed {
			return m, nil
		}
		pt := m.cellPoint(msg.X, msg.Y)
		m.handler.HandleTapGesture(Tap{State: TapChanged, Location: pt})
		m.trackPressed(pt)

	case tea.MouseActionRelease:
		if !m.pressed {
			return m, nil
		}
		m.pressed = false
		m.pressedLink = false

		state := TapEnded
		if !m.mouseInBounds(msg.X, msg.Y) {
			state = TapCancelled
		}
		m.handler.HandleTapGesture(Tap{State: state, Location: m.cellPoint(msg.X, msg.Y)})
		return m, m.queue.take()
	}

	return m, nil
}

func (m *Model) trackPressed(pt geom.Point) {
	if !m.cfg.HighlightPressed {
		return
	}
	r, _, ok := m.handler.LinkAt(pt)
	m.pressedRange, m.pressedLink = r, ok
}

func (m Model) mouseInBounds(x, y int) bool {
	l := m.layout()
	if l == nil {
		return false
	}
	w, h := l.Size()
	x -= m.originX
	y -= m.originY
	return x >= 0 && x < w && y >= 0 && y < h
}

func (m Model) layout() *textlayout.Layout { return m.handler.Layout() }
