package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/shaderkit/smolv"
	"github.com/shaderkit/smolv/spirv"
	"github.com/shaderkit/smolv/stats"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectView int

const (
	viewOverview inspectView = iota
	viewListing
	viewStats
)

var viewNames = [...]string{"overview", "listing", "stats"}

type inspectorModel struct {
	err      error
	filename string
	header   smolv.Header
	encoded  int
	decoded  int
	listing  string
	report   string
	sizes    string
	view     inspectView
	viewport viewport.Model
	width    int
	height   int
	loaded   bool
	ready    bool
}

func newInspectorModel(filename string) *inspectorModel {
	return &inspectorModel{
		filename: filename,
		view:     viewOverview,
	}
}

type loadedMsg struct {
	err     error
	header  smolv.Header
	encoded int
	decoded int
	listing string
	report  string
	sizes   string
}

func (m *inspectorModel) Init() tea.Cmd {
	return m.loadFile
}

func (m *inspectorModel) loadFile() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}

	h, err := smolv.ParseHeader(data)
	if err != nil {
		return loadedMsg{err: err}
	}

	module, err := smolv.Decode(data)
	if err != nil {
		return loadedMsg{err: err}
	}

	listing, err := spirv.Listing(module)
	if err != nil {
		return loadedMsg{err: err}
	}

	r, err := stats.Calculate(module)
	if err != nil {
		return loadedMsg{err: err}
	}
	var report strings.Builder
	if err := r.WriteText(&report); err != nil {
		return loadedMsg{err: err}
	}

	return loadedMsg{
		header:  h,
		encoded: len(data),
		decoded: len(module),
		listing: listing,
		report:  report.String(),
		sizes:   stats.CompareSizes(module, data).String(),
	}
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "1", "o":
			m.setView(viewOverview)
			return m, nil

		case "2", "l":
			m.setView(viewListing)
			return m, nil

		case "3", "s":
			m.setView(viewStats)
			return m, nil

		case "tab":
			m.setView((m.view + 1) % 3)
			return m, nil

		case "shift+tab":
			m.setView((m.view + 2) % 3)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// One line of title above, one line of help below.
		h := msg.Height - 4
		if h < 1 {
			h = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = h
		}
		m.setContent()

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.header = msg.header
		m.encoded = msg.encoded
		m.decoded = msg.decoded
		m.listing = msg.listing
		m.report = msg.report
		m.sizes = msg.sizes
		m.loaded = true
		m.setContent()
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *inspectorModel) setView(v inspectView) {
	if v != m.view {
		m.view = v
		m.setContent()
		if m.ready {
			m.viewport.GotoTop()
		}
	}
}

func (m *inspectorModel) setContent() {
	if !m.ready || !m.loaded {
		return
	}
	switch m.view {
	case viewListing:
		m.viewport.SetContent(m.listing)
	case viewStats:
		m.viewport.SetContent(m.report)
	default:
		m.viewport.SetContent(m.overview())
	}
}

func (m *inspectorModel) overview() string {
	var b strings.Builder

	field := func(name, format string, args ...any) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", name)))
		b.WriteString(valueStyle.Render(fmt.Sprintf(format, args...)))
		b.WriteString("\n")
	}

	field("SPIR-V", "%d.%d", m.header.Version>>16, (m.header.Version>>8)&0xFF)
	field("Generator", "0x%08x", m.header.Generator)
	field("Bound", "%d", m.header.Bound)
	field("Schema", "%d", m.header.Schema)
	field("Encoded", "%d bytes", m.encoded)
	field("Decoded", "%d bytes", m.decoded)
	if m.decoded > 0 {
		field("Ratio", "%.1f%%", float64(m.encoded)*100/float64(m.decoded))
	}
	b.WriteString("\n")
	b.WriteString(m.sizes)

	return b.String()
}

func (m *inspectorModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if !m.loaded || !m.ready {
		return "Loading " + m.filename + "..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("SMOL-V Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("  ")
	for i, name := range viewNames {
		if inspectView(i) == m.view {
			b.WriteString(activeTabStyle.Render(name))
		} else {
			b.WriteString(tabStyle.Render(name))
		}
	}
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	help := "1 overview • 2 listing • 3 stats • tab cycle • ↑/↓ scroll • q quit"
	if m.view != viewOverview {
		help = fmt.Sprintf("%3.0f%%  %s", m.viewport.ScrollPercent()*100, help)
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func runInteractive(filename string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}
	p := tea.NewProgram(newInspectorModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
