// Package label provides a terminal text label with tappable links.
//
// GestureHandler is the core: it keeps a registry of link ranges, resolves tap
// locations to grapheme positions through a CharacterIndexFinder and invokes
// the handler that owns the position. With ExtendsLinkTouchArea enabled a tap
// that misses every glyph is retried at a fixed sequence of nearby points.
//
// Model wraps the handler as a Bubble Tea component that renders the text with
// lipgloss and translates mouse messages into taps.
package label
