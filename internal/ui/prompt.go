package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chris-regnier/gitdiary/internal/summary"
)

// ErrCancelled is returned when the user abandons an interactive prompt.
var ErrCancelled = errors.New("cancelled")

type summaryModel struct {
	inputs    []textinput.Model
	focus     int
	done      bool
	cancelled bool
	theme     Theme
}

func newSummaryModel(theme Theme, width int) summaryModel {
	m := summaryModel{theme: theme}
	for i := range summary.Questions {
		in := textinput.New()
		in.Prompt = "> "
		in.CharLimit = 500
		if width > 4 {
			in.Width = width - 4
		}
		if i == 0 {
			in.Focus()
		}
		m.inputs = append(m.inputs, in)
	}
	return m
}

func (m summaryModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m summaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if m.focus == len(m.inputs)-1 {
				m.done = true
				return m, tea.Quit
			}
			cmd := m.setFocus(m.focus + 1)
			return m, cmd
		case "tab", "down":
			cmd := m.setFocus((m.focus + 1) % len(m.inputs))
			return m, cmd
		case "shift+tab", "up":
			cmd := m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *summaryModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m summaryModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.theme.HeaderStyle().Render("สรุปประจำวัน (Daily summary)"))
	b.WriteString("\n\n")
	for i, q := range summary.Questions {
		label := m.theme.MutedStyle().Render(q.Prompt)
		if i == m.focus {
			label = m.theme.AccentStyle().Render(q.Prompt)
		}
		b.WriteString(label + "\n")
		b.WriteString(m.inputs[i].View() + "\n\n")
	}
	b.WriteString(m.theme.HelpStyle().Render("enter next • tab/shift+tab move • esc cancel"))
	return b.String()
}

func (m summaryModel) answers() summary.Answers {
	a := summary.Answers{}
	for i, q := range summary.Questions {
		a[q.ID] = m.inputs[i].Value()
	}
	return a
}

// AskSummary runs the retrospective questions as a terminal form.
func AskSummary(theme Theme, width int) (summary.Answers, error) {
	p := tea.NewProgram(newSummaryModel(theme, width))
	result, err := p.Run()
	if err != nil {
		return nil, err
	}
	m := result.(summaryModel)
	if m.cancelled {
		return nil, ErrCancelled
	}
	return m.answers(), nil
}
