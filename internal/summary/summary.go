// Package summary turns answers to the end-of-day retrospective questions
// into a date section's summary block.
package summary

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chris-regnier/gitdiary/internal/diary"
)

// Question is one retrospective prompt.
type Question struct {
	ID     string
	Label  string
	Prompt string
}

// Questions are asked in this order.
var Questions = []Question{
	{ID: "accomplished", Label: "✅ สิ่งที่ทำสำเร็จ (Accomplished)", Prompt: "วันนี้ทำอะไรสำเร็จบ้าง? (What did you accomplish today?)"},
	{ID: "went_well", Label: "👍 สิ่งที่เป็นไปได้ดี (Went well)", Prompt: "อะไรที่เป็นไปได้ดี? (What went well?)"},
	{ID: "challenges", Label: "⚠️ อุปสรรค (Challenges)", Prompt: "เจออุปสรรคอะไรบ้าง? (What challenges came up?)"},
	{ID: "learned", Label: "💡 สิ่งที่ได้เรียนรู้ (Learned)", Prompt: "ได้เรียนรู้อะไรบ้าง? (What did you learn?)"},
	{ID: "tomorrow", Label: "🎯 พรุ่งนี้ (Tomorrow)", Prompt: "พรุ่งนี้จะทำอะไรต่อ? (What's next for tomorrow?)"},
}

// Answers maps a Question ID to the reply.
type Answers map[string]string

// Compose renders the answered questions as labelled bullets. Unanswered
// questions are left out; when nothing was answered it returns
// diary.ErrNothingToDo.
func Compose(a Answers) (string, error) {
	var lines []string
	for _, q := range Questions {
		reply := strings.TrimSpace(a[q.ID])
		if reply == "" {
			continue
		}
		parts := strings.Split(reply, "\n")
		lines = append(lines, fmt.Sprintf("*   **%s:** %s", q.Label, strings.TrimSpace(parts[0])))
		for _, p := range parts[1:] {
			if p = strings.TrimSpace(p); p != "" {
				lines = append(lines, "    "+p)
			}
		}
	}
	if len(lines) == 0 {
		return "", diary.ErrNothingToDo
	}
	return strings.Join(lines, "\n"), nil
}

// Ask reads one line per question from r, writing each prompt to w.
// Running out of input leaves the remaining answers empty.
func Ask(r io.Reader, w io.Writer) (Answers, error) {
	a := Answers{}
	sc := bufio.NewScanner(r)
	for _, q := range Questions {
		fmt.Fprintf(w, "%s\n> ", q.Prompt)
		if !sc.Scan() {
			fmt.Fprintln(w)
			break
		}
		a[q.ID] = sc.Text()
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading answers: %w", err)
	}
	return a, nil
}

const templateHint = "<!-- Answer under each heading. Leave a section empty to skip it. -->"

// Template is the editor buffer used by `summary --edit`.
func Template() string {
	var b strings.Builder
	b.WriteString(templateHint + "\n")
	for _, q := range Questions {
		fmt.Fprintf(&b, "\n# %s\n", q.Prompt)
	}
	return b.String()
}

// ParseTemplate reads answers back from an edited Template. Text under an
// unrecognized heading belongs to the preceding question.
func ParseTemplate(text string) Answers {
	byPrompt := make(map[string]string, len(Questions))
	for _, q := range Questions {
		byPrompt[q.Prompt] = q.ID
	}

	a := Answers{}
	current := ""
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == templateHint {
			continue
		}
		if strings.HasPrefix(trimmed, "# ") {
			if id, ok := byPrompt[strings.TrimSpace(trimmed[2:])]; ok {
				current = id
				continue
			}
		}
		if current == "" {
			continue
		}
		if a[current] == "" {
			a[current] = line
		} else {
			a[current] += "\n" + line
		}
	}
	for id, v := range a {
		a[id] = strings.TrimSpace(v)
	}
	return a
}
