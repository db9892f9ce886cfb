package label

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/hyperlabel/geom"
	"github.com/iw2rmb/hyperlabel/textlayout"
)

// Link is a tappable span registered at construction time.
type Link struct {
	Range Range

	// OnTap runs when the link is tapped; the returned command is handed back
	// to Bubble Tea from Update.
	OnTap func() tea.Cmd

	// Style overrides Style.Link for this span when set.
	Style *lipgloss.Style
}

// Config configures the label Model.
type Config struct {
	Text  string
	Links []Link

	Style  Style
	KeyMap KeyMap

	WrapMode          textlayout.WrapMode
	Alignment         textlayout.Align
	VerticalAlignment textlayout.VAlign
	MaxLines          int
	TabWidth          int

	// CellSize maps terminal cells to view points for hit-testing.
	// Zero means DefaultCellSize.
	CellSize geom.Size

	// ExtendsLinkTouchArea enables the nearby search on a miss. nil means
	// enabled.
	ExtendsLinkTouchArea *bool

	// HighlightPressed renders the link under a held mouse button with
	// Style.Pressed.
	HighlightPressed bool

	Logger *slog.Logger
}
