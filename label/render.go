package label

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/hyperlabel/textlayout"
)

const (
	runText    = -1
	runPressed = -2
)

func (m Model) render() string {
	l := m.layout()
	if l == nil {
		return ""
	}

	w, h := l.Size()
	rows := make([]string, h)
	blank := strings.Repeat(" ", w)
	for i := range rows {
		rows[i] = blank
	}
	for _, line := range l.Lines() {
		if line.Row < 0 || line.Row >= h {
			continue
		}
		rows[line.Row] = m.renderLine(line, w)
	}
	return strings.Join(rows, "\n")
}

// renderLine renders one row, grouping adjacent glyphs that share a style
// into a single styled run.
func (m Model) renderLine(line textlayout.Line, width int) string {
	var sb strings.Builder
	var run strings.Builder
	runKey := runText
	runStyle := m.cfg.Style.Text

	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(runStyle.Render(run.String()))
		run.Reset()
	}

	col := 0
	for _, g := range line.Glyphs {
		if g.Cell > col {
			flush()
			sb.WriteString(strings.Repeat(" ", g.Cell-col))
		}
		st, key := m.glyphStyle(g.Index)
		if key != runKey {
			flush()
			runKey, runStyle = key, st
		}
		run.WriteString(g.Text)
		col = g.Cell + g.Width
	}
	flush()
	if col < width {
		sb.WriteString(strings.Repeat(" ", width-col))
	}
	return sb.String()
}

// glyphStyle returns the style for a grapheme position and a key that is
// equal for neighbours rendered in the same run.
func (m Model) glyphStyle(index int) (lipgloss.Style, int) {
	if m.pressedLink && m.pressedRange.Contains(index) {
		return m.cfg.Style.Pressed, runPressed
	}
	if r, st, ok := m.styles.Lookup(index); ok {
		return st, r.Start
	}
	return m.cfg.Style.Text, runText
}
