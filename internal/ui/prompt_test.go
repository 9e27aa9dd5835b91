package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chris-regnier/gitdiary/internal/summary"
)

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m tea.Model, k tea.KeyType) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: k})
}

func TestSummaryModelCollectsAnswers(t *testing.T) {
	var m tea.Model = newSummaryModel(Theme{}, 80)

	m = typeText(m, "shipped")
	m, _ = press(m, tea.KeyEnter)
	m, _ = press(m, tea.KeyEnter) // skip "went well"
	m = typeText(m, "flaky CI")
	m, _ = press(m, tea.KeyEnter)
	m, _ = press(m, tea.KeyEnter)

	if got := m.(summaryModel).focus; got != len(summary.Questions)-1 {
		t.Fatalf("focus = %d, want last question", got)
	}
	m = typeText(m, "release")
	m, cmd := press(m, tea.KeyEnter)

	sm := m.(summaryModel)
	if !sm.done || cmd == nil {
		t.Fatal("enter on the last question should finish the form")
	}
	a := sm.answers()
	if a["accomplished"] != "shipped" || a["went_well"] != "" || a["challenges"] != "flaky CI" || a["tomorrow"] != "release" {
		t.Errorf("unexpected answers %v", a)
	}
	if sm.View() != "" {
		t.Error("finished form should render nothing")
	}
}

func TestSummaryModelNavigation(t *testing.T) {
	var m tea.Model = newSummaryModel(Theme{}, 80)
	m, _ = press(m, tea.KeyShiftTab)
	if got := m.(summaryModel).focus; got != len(summary.Questions)-1 {
		t.Errorf("shift+tab from first should wrap to last, got %d", got)
	}
	m, _ = press(m, tea.KeyTab)
	if got := m.(summaryModel).focus; got != 0 {
		t.Errorf("tab from last should wrap to first, got %d", got)
	}
}

func TestSummaryModelCancel(t *testing.T) {
	var m tea.Model = newSummaryModel(Theme{}, 80)
	m = typeText(m, "partial")
	m, cmd := press(m, tea.KeyEsc)
	if !m.(summaryModel).cancelled || cmd == nil {
		t.Error("esc should cancel the form")
	}
}

func TestSummaryModelView(t *testing.T) {
	view := stripANSI(newSummaryModel(Theme{}, 80).View())
	for _, q := range summary.Questions {
		if !strings.Contains(view, q.Prompt) {
			t.Errorf("view missing question %q", q.Prompt)
		}
	}
}
