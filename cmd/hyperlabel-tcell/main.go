package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/hyperlabel/internal/labelconf"
	"github.com/iw2rmb/hyperlabel/tcellhost"
)

const labelTop = 2

type app struct {
	screen tcell.Screen
	label  *tcellhost.Label
	logger *slog.Logger
	status string
}

func newApp(s tcell.Screen, doc labelconf.Document, logger *slog.Logger) *app {
	a := &app{screen: s, logger: logger, status: "click a link, q quits"}
	extends := doc.ExtendsTouchArea
	a.label = tcellhost.New(tcellhost.Options{
		Text:                 doc.Text,
		WrapMode:             doc.Wrap,
		Alignment:            doc.Align,
		VerticalAlignment:    doc.VAlign,
		MaxLines:             doc.MaxLines,
		TabWidth:             doc.TabWidth,
		CellSize:             doc.CellSize,
		ExtendsLinkTouchArea: &extends,
		HighlightPressed:     doc.HighlightPressed,
		Style:                tcellhost.DefaultStyle(),
		Logger:               logger,
	})
	a.label.SetOrigin(0, labelTop)
	for _, l := range doc.Links {
		a.label.AddLink(l.Range, func() {
			a.status = fmt.Sprintf("tapped %q %v", l.Name, l.Range)
			logger.Info("link tapped", "name", l.Name, "range", l.Range)
		})
	}
	return a
}

func (a *app) resize() {
	w, _ := a.screen.Size()
	a.label.SetSize(w, 0)
}

func (a *app) draw() {
	a.screen.Clear()
	st := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, r := range []rune(a.status) {
		a.screen.SetContent(i, 0, r, nil, st)
	}
	a.label.Draw(a.screen)
	a.screen.Show()
}

// loop runs until a quit key arrives.
func (a *app) loop() {
	a.resize()
	a.draw()
	for {
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			a.screen.Sync()
			a.resize()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
				return
			}
			if ev.Rune() == 't' {
				h := a.label.Handler()
				h.ExtendsLinkTouchArea = !h.ExtendsLinkTouchArea
				a.status = fmt.Sprintf("touch tolerance: %v", h.ExtendsLinkTouchArea)
			}
		case *tcell.EventMouse:
			a.label.HandleEvent(ev)
		}
		a.draw()
	}
}

func run() error {
	configPath := flag.String("config", "", "label document (TOML); built-in demo when empty")
	logPath := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	doc := labelconf.Default()
	if *configPath != "" {
		var err error
		if doc, err = labelconf.Load(*configPath); err != nil {
			return err
		}
	}

	logger := slog.New(slog.DiscardHandler)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer s.Fini()
	s.EnableMouse()

	newApp(s, doc, logger).loop()
	return nil
}

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
