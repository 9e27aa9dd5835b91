package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type pagerModel struct {
	viewport viewport.Model
	content  string
	ready    bool
	maxWidth int // maximum viewport width (0 = no limit)
	width    int // terminal width
	height   int // terminal height
	theme    Theme
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.contentWidth(), msg.Height-1)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = m.contentWidth()
			m.viewport.Height = msg.Height - 1
			m.viewport.SetContent(m.content)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// contentWidth returns the effective content width, respecting maxWidth configuration.
func (m *pagerModel) contentWidth() int {
	if m.maxWidth > 0 && m.width > m.maxWidth {
		return m.maxWidth
	}
	return m.width
}

// centerContent centers the given content string horizontally if width > maxWidth.
func (m *pagerModel) centerContent(content string) string {
	if m.maxWidth <= 0 || m.width <= m.maxWidth {
		return content
	}

	leftPadding := (m.width - m.maxWidth) / 2
	padding := strings.Repeat(" ", leftPadding)
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = padding + line
	}
	return strings.Join(lines, "\n")
}

func (m pagerModel) View() string {
	if !m.ready {
		return m.centerContent("Loading...")
	}
	footer := m.theme.HelpStyle().Render(fmt.Sprintf("↑/↓ scroll • q quit • %3.f%%", m.viewport.ScrollPercent()*100))
	return m.centerContent(m.viewport.View() + "\n" + footer)
}

// Pager writes content to Out, switching to a full-screen viewport when
// Out is a terminal and the content is taller than it.
type Pager struct {
	Out      io.Writer
	MaxWidth int
	Theme    Theme
}

// Page displays content.
func (p Pager) Page(content string) error {
	f, ok := p.Out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		_, err := fmt.Fprint(p.Out, content)
		return err
	}

	_, height, err := term.GetSize(int(f.Fd()))
	if err != nil || strings.Count(content, "\n")+1 <= height-2 {
		_, err := fmt.Fprint(p.Out, content)
		return err
	}

	prog := tea.NewProgram(
		pagerModel{content: content, maxWidth: p.MaxWidth, theme: p.Theme},
		tea.WithAltScreen(),
		tea.WithOutput(f),
	)
	_, err = prog.Run()
	return err
}
