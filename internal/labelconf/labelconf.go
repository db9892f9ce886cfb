// Package labelconf loads label documents for the demo programs from TOML.
package labelconf

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/hyperlabel/geom"
	"github.com/iw2rmb/hyperlabel/label"
	"github.com/iw2rmb/hyperlabel/rangemap"
	"github.com/iw2rmb/hyperlabel/textlayout"
)

var (
	ErrEmptyText    = errors.New("label text is empty")
	ErrLinkNotFound = errors.New("link text not found")
	ErrBadRange     = errors.New("link range is empty or outside the text")
	ErrUnknownValue = errors.New("unknown value")
)

// LinkError reports a problem with one [[link]] table.
type LinkError struct {
	Index int
	Name  string
	Err   error
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *LinkError) Unwrap() error { return e.Err }

// File is the on-disk document.
type File struct {
	Text             string     `toml:"text"`
	Wrap             string     `toml:"wrap"`
	Align            string     `toml:"align"`
	VAlign           string     `toml:"valign"`
	MaxLines         int        `toml:"max_lines"`
	TabWidth         int        `toml:"tab_width"`
	ExtendsTouchArea *bool      `toml:"extends_touch_area"`
	HighlightPressed *bool      `toml:"highlight_pressed"`
	CellWidth        float64    `toml:"cell_width"`
	CellHeight       float64    `toml:"cell_height"`
	Links            []LinkSpec `toml:"link"`
}

// LinkSpec selects a link either by substring (Text, Occurrence) or by
// grapheme offsets (Start, End).
type LinkSpec struct {
	Name       string `toml:"name"`
	Text       string `toml:"text"`
	Occurrence int    `toml:"occurrence"`
	Start      *int   `toml:"start"`
	End        *int   `toml:"end"`
}

// Link is a resolved link.
type Link struct {
	Name  string
	Range label.Range
}

// Document is a validated label description.
type Document struct {
	Text             string
	Wrap             textlayout.WrapMode
	Align            textlayout.Align
	VAlign           textlayout.VAlign
	MaxLines         int
	TabWidth         int
	ExtendsTouchArea bool
	HighlightPressed bool
	CellSize         geom.Size
	Links            []Link
}

// Load reads and validates a TOML document.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading label config %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("label config %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a TOML document.
func Parse(data []byte) (Document, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return Document{}, fmt.Errorf("parsing toml: %w", err)
	}
	return f.Resolve()
}

// Resolve validates f and resolves its links to grapheme ranges.
func (f File) Resolve() (Document, error) {
	if strings.TrimSpace(f.Text) == "" {
		return Document{}, ErrEmptyText
	}

	doc := Document{
		Text:             f.Text,
		MaxLines:         f.MaxLines,
		TabWidth:         f.TabWidth,
		ExtendsTouchArea: f.ExtendsTouchArea == nil || *f.ExtendsTouchArea,
		HighlightPressed: f.HighlightPressed == nil || *f.HighlightPressed,
		CellSize:         geom.Size{Width: f.CellWidth, Height: f.CellHeight},
	}

	var err error
	if doc.Wrap, err = parseWrap(f.Wrap); err != nil {
		return Document{}, err
	}
	if doc.Align, err = parseAlign(f.Align); err != nil {
		return Document{}, err
	}
	if doc.VAlign, err = parseVAlign(f.VAlign); err != nil {
		return Document{}, err
	}

	n := label.TextLength(f.Text)
	for i, spec := range f.Links {
		r, err := spec.resolve(f.Text, n)
		if err != nil {
			return Document{}, &LinkError{Index: i, Name: spec.Name, Err: err}
		}
		name := spec.Name
		if name == "" {
			name = spec.Text
		}
		doc.Links = append(doc.Links, Link{Name: name, Range: r})
	}
	return doc, nil
}

func (s LinkSpec) resolve(text string, n int) (label.Range, error) {
	if s.Text != "" {
		r, ok := label.FindRange(text, s.Text, s.Occurrence)
		if !ok {
			return label.Range{}, fmt.Errorf("%q occurrence %d: %w", s.Text, s.Occurrence, ErrLinkNotFound)
		}
		return r, nil
	}
	if s.Start == nil || s.End == nil {
		return label.Range{}, fmt.Errorf("need text or start/end: %w", ErrBadRange)
	}
	r := rangemap.NewRange(*s.Start, *s.End)
	if !r.Valid() || r.Start < 0 || r.End > n {
		return label.Range{}, fmt.Errorf("%v of %d graphemes: %w", r, n, ErrBadRange)
	}
	return r, nil
}

func parseWrap(s string) (textlayout.WrapMode, error) {
	switch strings.ToLower(s) {
	case "", "word":
		return textlayout.WrapWord, nil
	case "none":
		return textlayout.WrapNone, nil
	case "grapheme", "char":
		return textlayout.WrapGrapheme, nil
	}
	return 0, fmt.Errorf("wrap %q: %w", s, ErrUnknownValue)
}

func parseAlign(s string) (textlayout.Align, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return textlayout.AlignLeft, nil
	case "center":
		return textlayout.AlignCenter, nil
	case "right":
		return textlayout.AlignRight, nil
	}
	return 0, fmt.Errorf("align %q: %w", s, ErrUnknownValue)
}

func parseVAlign(s string) (textlayout.VAlign, error) {
	switch strings.ToLower(s) {
	case "", "top":
		return textlayout.VAlignTop, nil
	case "center", "middle":
		return textlayout.VAlignCenter, nil
	case "bottom":
		return textlayout.VAlignBottom, nil
	}
	return 0, fmt.Errorf("valign %q: %w", s, ErrUnknownValue)
}
