// Package playground is an interactive terminal explorer for the completion
// engine. Every keystroke re-runs completion at the cursor so vocabulary and
// ranking changes can be inspected without an editor attached.
package playground

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/chenqi92/inflowave"
	"github.com/chenqi92/inflowave/completion"
)

const maxVisible = 12

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DDDDDD"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(1, 0)
)

type model struct {
	input    textinput.Model
	engine   *completion.Engine
	cfg      *inflowave.Config
	items    []completion.Item
	selected int
	width    int
}

func newModel(cfg *inflowave.Config) model {
	ti := textinput.New()
	ti.Placeholder = `SELECT usage_idle FROM "cpu" WHERE ...`
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 70

	engine := completion.NewEngine(cfg.VersionKey())

	m := model{
		input:  ti,
		engine: engine,
		cfg:    cfg,
	}
	m.refresh()

	return m
}

// refresh re-runs completion at the current cursor position.
func (m *model) refresh() {
	req := completion.Request{
		Text:         m.input.Value(),
		Offset:       m.input.Position(),
		Database:     m.cfg.Database,
		Databases:    m.cfg.Databases,
		Measurements: m.cfg.Measurements,
		Fields:       m.cfg.Fields,
		Tags:         m.cfg.Tags,
	}
	if len(m.cfg.Schema) > 0 {
		req.FieldTags = make(completion.FieldTagMap, len(m.cfg.Schema))
		for name, entry := range m.cfg.Schema {
			req.FieldTags[name] = completion.FieldTags{Fields: entry.Fields, Tags: entry.Tags}
		}
	}

	m.items = m.engine.Complete(context.Background(), req)
	m.selected = 0
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down":
			if m.selected < len(m.items)-1 && m.selected < maxVisible-1 {
				m.selected++
			}
			return m, nil
		case "tab", "enter":
			m.accept()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 10 {
			m.input.Width = msg.Width - 6
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

// accept splices the selected candidate over the identifier being typed.
func (m *model) accept() {
	if m.selected >= len(m.items) {
		return
	}
	item := m.items[m.selected]

	insert := item.InsertText
	if insert == "" || item.IsSnippet {
		insert = item.Label
	}

	text := m.input.Value()
	pos := m.input.Position()
	if pos > len(text) {
		pos = len(text)
	}

	start := pos
	for start > 0 && isIdentByte(text[start-1]) {
		start--
	}

	m.input.SetValue(text[:start] + insert + text[pos:])
	m.input.SetCursor(start + len(insert))
	m.refresh()
}

func isIdentByte(b byte) bool {
	return b == '_' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("inflowave playground · " + m.engine.Version().Family))
	b.WriteString("\n\n")
	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(dimStyle.Render("  no suggestions"))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		if i >= maxVisible {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(m.items)-maxVisible)))
			b.WriteString("\n")
			break
		}

		line := fmt.Sprintf("%-12s %s", "["+item.Kind.String()+"]", item.Label)
		if item.Detail != "" {
			line += dimStyle.Render("  " + item.Detail)
		}

		if i == m.selected {
			b.WriteString(selectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(normalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ select · tab accept · esc quit"))

	return b.String()
}

// Run starts the playground on the controlling terminal. It refuses to start
// when stdout is not a TTY, since the alternate screen would garble piped
// output.
func Run(cfg *inflowave.Config) error {
	if cfg == nil {
		cfg = &inflowave.Config{}
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("playground requires a terminal")
	}

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
