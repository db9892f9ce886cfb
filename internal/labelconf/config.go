package labelconf

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hyperlabel/label"
)

// LabelConfig builds a label.Config for d. onTap is called with the link
// that was tapped and its result is returned to Bubble Tea.
func (d Document) LabelConfig(style label.Style, onTap func(Link) tea.Cmd) label.Config {
	extends := d.ExtendsTouchArea
	cfg := label.Config{
		Text:                 d.Text,
		Style:                style,
		KeyMap:               label.DefaultKeyMap(),
		WrapMode:             d.Wrap,
		Alignment:            d.Align,
		VerticalAlignment:    d.VAlign,
		MaxLines:             d.MaxLines,
		TabWidth:             d.TabWidth,
		CellSize:             d.CellSize,
		ExtendsLinkTouchArea: &extends,
		HighlightPressed:     d.HighlightPressed,
	}
	for _, l := range d.Links {
		cfg.Links = append(cfg.Links, label.Link{
			Range: l.Range,
			OnTap: func() tea.Cmd {
				if onTap == nil {
					return nil
				}
				return onTap(l)
			},
		})
	}
	return cfg
}
