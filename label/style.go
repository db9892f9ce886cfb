package label

import "github.com/charmbracelet/lipgloss"

// Style controls how the label is rendered.
type Style struct {
	Text    lipgloss.Style
	Link    lipgloss.Style
	Pressed lipgloss.Style
}

func DefaultStyle() Style {
	link := lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true)
	return Style{
		Text:    lipgloss.NewStyle(),
		Link:    link,
		Pressed: link.Reverse(true),
	}
}
