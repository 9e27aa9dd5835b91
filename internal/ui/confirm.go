package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type confirmModel struct {
	prompt    string
	confirmed bool
	done      bool
	theme     Theme
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch strings.ToLower(msg.String()) {
		case "y":
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n", "enter", "esc", "ctrl+c":
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	promptStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary)
	return fmt.Sprintf("%s %s",
		promptStyle.Render(m.prompt),
		m.theme.DangerStyle().Render("[y/N]"),
	) + " "
}

// Confirm shows an interactive confirmation prompt and returns true if the user confirms.
func Confirm(prompt string, theme Theme) (bool, error) {
	m := confirmModel{prompt: prompt, theme: theme}
	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	return result.(confirmModel).confirmed, nil
}

// ConfirmLine asks prompt on w and reads a y/N answer from r. Anything but
// "y" or "yes" declines.
func ConfirmLine(r io.Reader, w io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(w, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
