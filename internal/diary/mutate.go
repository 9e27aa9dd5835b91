package diary

import (
	"errors"
	"strings"

	"github.com/chris-regnier/gitdiary/internal/category"
)

// ErrNothingToDo is returned when an edit would not change the document.
var ErrNothingToDo = errors.New("nothing to do")

// EnsureSection returns the section for date, appending a new one with a
// placeholder summary and an empty next-steps block when none exists.
func (d *Document) EnsureSection(date string) (*DateSection, bool) {
	if s := d.Section(date); s != nil {
		return s, false
	}
	s := &DateSection{
		Date:      date,
		Summary:   []string{SummaryPlaceholder},
		HasLog:    true,
		NextSteps: &NextSteps{},
	}
	d.Sections = append(d.Sections, s)
	return s, true
}

// EnsureCategory returns the group for c. A missing group is inserted
// before the first existing group of higher rank, or at the end.
func (s *DateSection) EnsureCategory(c category.Category) *CategorySection {
	if cs := s.Category(c); cs != nil {
		return cs
	}
	cs := &CategorySection{Category: c}
	at := len(s.Categories)
	for i, existing := range s.Categories {
		if existing.Category.Rank() > c.Rank() {
			at = i
			break
		}
	}
	s.Categories = append(s.Categories, nil)
	copy(s.Categories[at+1:], s.Categories[at:])
	s.Categories[at] = cs
	return cs
}

// AppendEntry files e under date and category c, creating whatever
// structure is missing. Entries are appended in arrival order; no
// deduplication takes place.
func (d *Document) AppendEntry(date string, c category.Category, e *Entry) *DateSection {
	s, _ := d.EnsureSection(date)
	cs := s.EnsureCategory(c)
	cs.Entries = append(cs.Entries, e)
	s.HasLog = true
	s.Touch()
	return s
}

// ReplaceSummary swaps the summary block of date for text, creating the
// section if needed. Categories and next steps are left untouched.
func (d *Document) ReplaceSummary(date, text string) error {
	text = strings.Trim(text, "\n")
	if strings.TrimSpace(text) == "" {
		return ErrNothingToDo
	}
	s, _ := d.EnsureSection(date)
	s.Summary = strings.Split(text, "\n")
	s.Touch()
	return nil
}
