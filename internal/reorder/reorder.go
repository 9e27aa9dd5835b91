// Package reorder restores newest-first presentation order in a diary:
// date sections by calendar date, and log entries by a two-sample
// direction check rather than a full sort.
package reorder

import (
	"sort"

	"github.com/chris-regnier/gitdiary/internal/diary"
)

// ShouldReverse reports whether an entry sequence reads oldest-first.
// Only the first and last keys are compared; equal keys and sequences
// shorter than two leave the order alone.
func ShouldReverse(keys []string) bool {
	if len(keys) < 2 {
		return false
	}
	return keys[0] < keys[len(keys)-1]
}

// Result describes what Document changed.
type Result struct {
	SectionsMoved bool
	Reversed      []string // dates whose entries were reversed
}

// Changed reports whether any reordering happened.
func (r Result) Changed() bool {
	return r.SectionsMoved || len(r.Reversed) > 0
}

// Document returns a reordered copy of doc. Sections are sorted newest date
// first; unparseable dates count as the minimum date and sink to the end.
// Within each section every category's entries get their own reversal
// decision, so a second pass over the result changes nothing. Categories
// keep their positions.
func Document(doc *diary.Document) (*diary.Document, Result) {
	out := doc.Clone()
	var res Result

	before := make([]*diary.DateSection, len(out.Sections))
	copy(before, out.Sections)
	sort.SliceStable(out.Sections, func(i, j int) bool {
		ti, _ := out.Sections[i].ParsedDate()
		tj, _ := out.Sections[j].ParsedDate()
		return ti.After(tj)
	})
	for i := range before {
		if before[i] != out.Sections[i] {
			res.SectionsMoved = true
			break
		}
	}

	for _, s := range out.Sections {
		if Section(s) {
			res.Reversed = append(res.Reversed, s.Date)
		}
	}
	return out, res
}

// Section applies the reversal rule to each category of s in place and
// reports whether it reversed anything.
func Section(s *diary.DateSection) bool {
	reversed := false
	for _, cs := range s.Categories {
		keys := make([]string, len(cs.Entries))
		for i, e := range cs.Entries {
			keys[i] = e.Key()
		}
		if ShouldReverse(keys) {
			reverse(cs.Entries)
			reversed = true
		}
	}
	if reversed {
		s.Touch()
	}
	return reversed
}

func reverse(entries []*diary.Entry) {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
}
