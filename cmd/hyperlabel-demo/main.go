package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/hyperlabel/internal/labelconf"
	"github.com/iw2rmb/hyperlabel/label"
)

const (
	labelTop     = 2
	toastTimeout = 1500 * time.Millisecond
)

type linkTappedMsg struct {
	link labelconf.Link
}

type toastExpiredMsg struct {
	id int
}

type keyMap struct {
	Quit      key.Binding
	Tolerance key.Binding
	Clear     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Tolerance: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle touch tolerance")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear log")),
	}
}

type model struct {
	label  label.Model
	log    viewport.Model
	keys   keyMap
	logger *slog.Logger

	entries []string

	toast        string
	toastID      int
	toastX       int
	toastY       int
	toastStyle   lipgloss.Style
	headerStyle  lipgloss.Style
	logLineStyle lipgloss.Style
}

func newModel(doc labelconf.Document, logger *slog.Logger) model {
	cfg := doc.LabelConfig(label.DefaultStyle(), func(l labelconf.Link) tea.Cmd {
		return func() tea.Msg { return linkTappedMsg{link: l} }
	})
	cfg.Logger = logger

	return model{
		label:        label.New(cfg).SetOrigin(0, labelTop),
		log:          viewport.New(0, 0),
		keys:         defaultKeyMap(),
		logger:       logger,
		toastStyle:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Foreground(lipgloss.Color("229")),
		headerStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		logLineStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.label = m.label.SetSize(msg.Width, 0)
		m.log.Width = msg.Width
		m.log.Height = max(msg.Height-labelTop-m.labelHeight()-2, 0)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tolerance):
			m.label = m.label.SetExtendsLinkTouchArea(!m.label.ExtendsLinkTouchArea())
			m.appendLog(fmt.Sprintf("touch tolerance %s", onOff(m.label.ExtendsLinkTouchArea())))
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.entries = nil
			m.log.SetContent("")
			return m, nil
		}

	case linkTappedMsg:
		m.logger.Info("link tapped", "name", msg.link.Name, "range", msg.link.Range)
		m.appendLog(fmt.Sprintf("tapped %q %v", msg.link.Name, msg.link.Range))
		m.toastID++
		m.toast = "opened " + msg.link.Name
		if x, y, _, h, ok := m.label.LinkCells(msg.link.Range); ok {
			m.toastX, m.toastY = x, labelTop+y+h
		}
		id := m.toastID
		return m, tea.Tick(toastTimeout, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.label, cmd = m.label.Update(msg)
	return m, cmd
}

func (m *model) appendLog(line string) {
	m.entries = append(m.entries, m.logLineStyle.Render(time.Now().Format("15:04:05")+" "+line))
	m.log.SetContent(strings.Join(m.entries, "\n"))
	m.log.GotoBottom()
}

func (m model) labelHeight() int {
	return lipgloss.Height(m.label.View())
}

func (m model) View() string {
	header := m.headerStyle.Render(fmt.Sprintf("click a link | t: tolerance (%s) | c: clear | q: quit", onOff(m.label.ExtendsLinkTouchArea())))
	base := header + "\n\n" + m.label.View() + "\n\n" + m.log.View()
	if m.toast == "" {
		return base
	}
	return overlay.Composite(m.toastStyle.Render(m.toast), base, overlay.Left, overlay.Top, m.toastX, m.toastY)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { _ = f.Close() }, nil
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

	logger, closeLog, err := newLogger(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	p := tea.NewProgram(newModel(doc, logger), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
