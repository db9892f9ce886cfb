package labelconf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/hyperlabel/geom"
	"github.com/iw2rmb/hyperlabel/label"
	"github.com/iw2rmb/hyperlabel/rangemap"
	"github.com/iw2rmb/hyperlabel/textlayout"
)

func TestParse_FullDocument(t *testing.T) {
	doc, err := Parse([]byte(`
text = "read the docs, the docs!"
wrap = "grapheme"
align = "center"
valign = "bottom"
max_lines = 2
tab_width = 8
extends_touch_area = false
highlight_pressed = false
cell_width = 10.0
cell_height = 20.0

[[link]]
name = "second"
text = "docs"
occurrence = 1

[[link]]
start = 0
end = 4
name = "read"
`))
	require.NoError(t, err)

	require.Equal(t, textlayout.WrapGrapheme, doc.Wrap)
	require.Equal(t, textlayout.AlignCenter, doc.Align)
	require.Equal(t, textlayout.VAlignBottom, doc.VAlign)
	require.Equal(t, 2, doc.MaxLines)
	require.Equal(t, 8, doc.TabWidth)
	require.False(t, doc.ExtendsTouchArea)
	require.False(t, doc.HighlightPressed)
	require.Equal(t, geom.Size{Width: 10, Height: 20}, doc.CellSize)
	require.Equal(t, []Link{
		{Name: "second", Range: rangemap.NewRange(19, 23)},
		{Name: "read", Range: rangemap.NewRange(0, 4)},
	}, doc.Links)
}

func TestParse_Defaults(t *testing.T) {
	doc, err := Parse([]byte(`text = "hi"`))
	require.NoError(t, err)
	require.Equal(t, textlayout.WrapWord, doc.Wrap)
	require.True(t, doc.ExtendsTouchArea)
	require.True(t, doc.HighlightPressed)
	require.Empty(t, doc.Links)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{name: "empty text", doc: `text = "  "`, want: ErrEmptyText},
		{name: "missing link text", doc: "text = \"abc\"\n[[link]]\ntext = \"zz\"", want: ErrLinkNotFound},
		{name: "range past end", doc: "text = \"abc\"\n[[link]]\nstart = 1\nend = 9", want: ErrBadRange},
		{name: "inverted range", doc: "text = \"abc\"\n[[link]]\nstart = 2\nend = 1", want: ErrBadRange},
		{name: "no selector", doc: "text = \"abc\"\n[[link]]\nname = \"x\"", want: ErrBadRange},
		{name: "bad wrap", doc: "text = \"abc\"\nwrap = \"zigzag\"", want: ErrUnknownValue},
		{name: "bad align", doc: "text = \"abc\"\nalign = \"justify\"", want: ErrUnknownValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

func TestParse_LinkErrorCarriesIndex(t *testing.T) {
	_, err := Parse([]byte("text = \"abc\"\n[[link]]\ntext = \"a\"\n[[link]]\nname = \"bad\"\ntext = \"q\""))
	var le *LinkError
	require.True(t, errors.As(err, &le))
	require.Equal(t, 1, le.Index)
	require.Equal(t, "bad", le.Name)
}

func TestParse_InvalidTOML(t *testing.T) {
	_, err := Parse([]byte("text = "))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "label.toml")
	require.NoError(t, os.WriteFile(path, []byte("text = \"see docs\"\n[[link]]\ntext = \"docs\""), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []Link{{Name: "docs", Range: rangemap.NewRange(4, 8)}}, doc.Links)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefault_ResolvesAllLinks(t *testing.T) {
	doc := Default()
	require.Len(t, doc.Links, 4)
	for _, l := range doc.Links {
		require.True(t, l.Range.Valid(), "link %s", l.Name)
	}
}

type tappedMsg string

func TestLabelConfig_WiresLinks(t *testing.T) {
	doc, err := Parse([]byte("text = \"see docs\"\nextends_touch_area = false\n[[link]]\ntext = \"docs\""))
	require.NoError(t, err)

	cfg := doc.LabelConfig(label.DefaultStyle(), func(l Link) tea.Cmd {
		return func() tea.Msg { return tappedMsg(l.Name) }
	})
	require.NotNil(t, cfg.ExtendsLinkTouchArea)
	require.False(t, *cfg.ExtendsLinkTouchArea)
	require.Len(t, cfg.Links, 1)

	cmd := cfg.Links[0].OnTap()
	require.NotNil(t, cmd)
	require.Equal(t, tappedMsg("docs"), cmd())
}
