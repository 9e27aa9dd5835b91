package diary

import (
	"strings"

	"github.com/chris-regnier/gitdiary/internal/category"
)

type region int

const (
	regionSummary region = iota
	regionLog
	regionNextSteps
)

// Parse builds a Document from diary text. It never fails: lines it cannot
// place are kept next to the nearest heading and reported in Issues.
func Parse(text string) *Document {
	doc := &Document{}
	seen := make(map[string]bool)

	var (
		date    string
		heading string
		raw     []string
		open    bool
	)
	flush := func() {
		if !open {
			return
		}
		s, issues := parseSection(date, heading, raw)
		if seen[date] {
			doc.Issues = append(doc.Issues, Issue{Kind: IssueDuplicateDate, Date: date})
		}
		seen[date] = true
		doc.Sections = append(doc.Sections, s)
		doc.Issues = append(doc.Issues, issues...)
	}

	for _, line := range splitLines(text) {
		if d, ok := matchDateHeading(line); ok {
			flush()
			date, heading, raw, open = d, line, nil, true
			continue
		}
		if open {
			raw = append(raw, line)
		} else {
			doc.Header = append(doc.Header, line)
		}
	}
	flush()

	doc.Header = trimBlankEdges(doc.Header)
	return doc
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func parseSection(date, heading string, raw []string) (*DateSection, []Issue) {
	s := &DateSection{Date: date}
	s.source = trimBlankEdges(append([]string{heading}, raw...))

	var (
		issues []Issue
		state  = regionSummary
		cat    *CategorySection
		cur    []string
	)
	flushEntry := func() {
		if cur == nil {
			return
		}
		if cat == nil {
			cat = s.uncategorized()
		}
		cat.Entries = append(cat.Entries, entryFromLines(trimBlankEdges(cur)))
		cur = nil
	}

	for _, line := range raw {
		if isNextStepsHeading(line) && s.NextSteps == nil {
			flushEntry()
			s.NextSteps = &NextSteps{}
			state = regionNextSteps
			continue
		}
		if isLogHeading(line) {
			flushEntry()
			// A repeated log heading keeps the current category.
			if !s.HasLog {
				cat = nil
			}
			s.HasLog = true
			state = regionLog
			continue
		}
		if c, ok := category.Match(line); ok {
			flushEntry()
			cat = &CategorySection{Category: c}
			s.Categories = append(s.Categories, cat)
			state = regionLog
			continue
		}

		switch state {
		case regionSummary:
			if !IsEntryBoundary(line) {
				s.Summary = append(s.Summary, line)
				continue
			}
			state = regionLog
		case regionNextSteps:
			s.NextSteps.Lines = append(s.NextSteps.Lines, line)
			continue
		}

		if IsEntryBoundary(line) {
			flushEntry()
			cur = []string{line}
			continue
		}
		if cur != nil {
			cur = append(cur, line)
			continue
		}
		if isBlank(line) {
			continue
		}
		issues = append(issues, Issue{Kind: IssueDrift, Date: date, Line: line})
		if cat == nil {
			s.Preamble = append(s.Preamble, line)
		} else {
			cat.Preamble = append(cat.Preamble, line)
		}
	}
	flushEntry()

	s.Summary = trimBlankEdges(s.Summary)
	if s.NextSteps != nil {
		s.NextSteps.Lines = trimBlankEdges(s.NextSteps.Lines)
	}
	return s, issues
}

// uncategorized returns the heading-less group, creating it first in order.
func (s *DateSection) uncategorized() *CategorySection {
	if cs := s.Category(category.Uncategorized); cs != nil {
		return cs
	}
	cs := &CategorySection{Category: category.Uncategorized}
	s.Categories = append([]*CategorySection{cs}, s.Categories...)
	return cs
}
