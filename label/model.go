package label

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/hyperlabel/geom"
	"github.com/iw2rmb/hyperlabel/rangemap"
)

// labelView is the TextView behind a Model. The Model owns it; the gesture
// handler only holds a weak reference.
type labelView struct {
	container TextContainer
}

func (v *labelView) TextContainer() TextContainer { return v.container }

// cmdQueue collects commands returned by link handlers during one Update.
type cmdQueue struct {
	cmds []tea.Cmd
}

func (q *cmdQueue) push(cmd tea.Cmd) {
	if cmd != nil {
		q.cmds = append(q.cmds, cmd)
	}
}

func (q *cmdQueue) take() tea.Cmd {
	cmds := q.cmds
	q.cmds = nil
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// Model is a Bubble Tea component that renders text with tappable links.
//
// Copies of a Model share the text view and the link registry.
type Model struct {
	cfg Config

	view    *labelView
	handler *GestureHandler
	styles  *rangemap.Map[int, lipgloss.Style]
	queue   *cmdQueue

	originX, originY int

	pressed      bool
	pressedRange Range
	pressedLink  bool
}

func New(cfg Config) Model {
	v := &labelView{container: TextContainer{
		Text:              cfg.Text,
		CellSize:          cfg.CellSize,
		MaxLines:          cfg.MaxLines,
		WrapMode:          cfg.WrapMode,
		Alignment:         cfg.Alignment,
		VerticalAlignment: cfg.VerticalAlignment,
		TabWidth:          cfg.TabWidth,
	}}

	h := NewGestureHandler()
	h.SetLogger(cfg.Logger)
	if cfg.ExtendsLinkTouchArea != nil {
		h.ExtendsLinkTouchArea = *cfg.ExtendsLinkTouchArea
	}
	h.SetTextView(WeakView(v))

	if len(cfg.KeyMap.Cancel.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}

	m := Model{
		cfg:     cfg,
		view:    v,
		handler: h,
		styles:  rangemap.New[int, lipgloss.Style](),
		queue:   &cmdQueue{},
	}
	for _, l := range cfg.Links {
		if l.Style != nil {
			m = m.AddStyledLink(l.Range, *l.Style, l.OnTap)
		} else {
			m = m.AddLink(l.Range, l.OnTap)
		}
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Text returns the label text.
func (m Model) Text() string { return m.view.container.Text }

// SetText replaces the label text. Registered links are kept.
func (m Model) SetText(text string) Model {
	m.view.container.Text = text
	m.pressed = false
	m.pressedLink = false
	return m
}

// SetSize sets the label size in cells. Zero leaves that axis sized to the
// text.
func (m Model) SetSize(width, height int) Model {
	width = max(width, 0)
	height = max(height, 0)
	cs := m.view.container.cellSize()
	m.view.container.Bounds = geom.Size{
		Width:  float64(width) * cs.Width,
		Height: float64(height) * cs.Height,
	}
	return m
}

// SetOrigin tells the label where its top-left cell is drawn in the mouse
// coordinate space of the host.
func (m Model) SetOrigin(x, y int) Model {
	m.originX, m.originY = x, y
	return m
}

// AddLink makes taps on r run onTap. Later links shadow earlier ones where
// they overlap.
func (m Model) AddLink(r Range, onTap func() tea.Cmd) Model {
	return m.AddStyledLink(r, m.cfg.Style.Link, onTap)
}

// AddStyledLink is AddLink with a per-link style.
func (m Model) AddStyledLink(r Range, st lipgloss.Style, onTap func() tea.Cmd) Model {
	if !r.Valid() {
		return m
	}
	q := m.queue
	m.handler.AddLink(r, func() {
		if onTap != nil {
			q.push(onTap())
		}
	})
	m.styles.Set(r, st)
	return m
}

// RemoveAllLinks drops every link and its styling.
func (m Model) RemoveAllLinks() Model {
	m.handler.RemoveAllLinks()
	m.styles.Clear()
	m.pressedLink = false
	return m
}

func (m Model) ExtendsLinkTouchArea() bool { return m.handler.ExtendsLinkTouchArea }

func (m Model) SetExtendsLinkTouchArea(on bool) Model {
	m.handler.ExtendsLinkTouchArea = on
	return m
}

// LinkRect returns the view-space rectangle enclosing r.
func (m Model) LinkRect(r Range) geom.Rect { return m.handler.Rect(r) }

// LinkCells returns the cell rectangle enclosing r relative to the label's
// top-left corner. ok is false when r is not visible.
func (m Model) LinkCells(r Range) (x, y, w, h int, ok bool) {
	rect := m.handler.Rect(r)
	if rect.IsEmpty() {
		return 0, 0, 0, 0, false
	}
	cs := m.view.container.cellSize()
	x = int(rect.MinX() / cs.Width)
	y = int(rect.MinY() / cs.Height)
	w = int(rect.Size.Width / cs.Width)
	h = int(rect.Size.Height / cs.Height)
	return x, y, w, h, true
}

// Handler exposes the underlying gesture handler.
func (m Model) Handler() *GestureHandler { return m.handler }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		if m.pressed && key.Matches(msg, m.cfg.KeyMap.Cancel) {
			m.handler.HandleTapGesture(Tap{State: TapCancelled})
			m.pressed = false
			m.pressedLink = false
		}
	}
	return m, nil
}

func (m Model) View() string { return m.render() }

// cellPoint maps a host mouse cell to the center of that cell in view points.
func (m Model) cellPoint(x, y int) geom.Point {
	cs := m.view.container.cellSize()
	return geom.Pt((float64(x-m.originX)+0.5)*cs.Width, (float64(y-m.originY)+0.5)*cs.Height)
}
