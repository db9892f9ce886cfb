package textlayout

// WrapMode controls how long logical lines are displayed.
//
// WrapNone renders one logical line per visual row and clips what does not fit.
// WrapWord and WrapGrapheme use soft wrapping.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapWord
	WrapGrapheme
)

func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "none"
	case WrapWord:
		return "word"
	case WrapGrapheme:
		return "grapheme"
	default:
		return "unknown"
	}
}

// Align is the horizontal alignment of each visual row.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// VAlign is the vertical alignment of the text block in its container.
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBottom
)

const defaultTabWidth = 4

// Params describes the text and its container.
//
// Width and Height are in cells; values <= 0 leave that axis unconstrained.
// MaxLines <= 0 means no line limit.
type Params struct {
	Text     string
	Width    int
	Height   int
	MaxLines int
	Wrap     WrapMode
	Align    Align
	VAlign   VAlign
	TabWidth int
}
