// Package diary models the diary document: a header followed by date
// sections, each holding a summary, an operations log of categorized
// entries, and an optional next-steps block.
//
// Parse builds the tree from text, Render writes it back, and the mutation
// methods on Document locate or create the sections an edit needs.
package diary

import (
	"fmt"
	"strings"
	"time"

	"github.com/chris-regnier/gitdiary/internal/category"
	"github.com/chris-regnier/gitdiary/internal/thaidate"
)

// Document is the parsed diary.
type Document struct {
	// Header holds the lines before the first date heading, verbatim.
	Header []string

	Sections []*DateSection

	// Issues lists content the parser kept but could not place structurally.
	Issues []Issue
}

// IssueKind classifies parser findings.
type IssueKind int

const (
	// IssueDrift marks a stray line inside an operations log that precedes
	// any entry. It is re-emitted right after the enclosing heading.
	IssueDrift IssueKind = iota + 1
	// IssueDuplicateDate marks a second section with an already-seen date.
	IssueDuplicateDate
)

// Issue is one parser finding.
type Issue struct {
	Kind IssueKind
	Date string
	Line string
}

func (i Issue) String() string {
	switch i.Kind {
	case IssueDrift:
		return fmt.Sprintf("%s: unattributed line %q", i.Date, i.Line)
	case IssueDuplicateDate:
		return fmt.Sprintf("%s: duplicate date section", i.Date)
	}
	return i.Line
}

// DateSection is everything recorded under one date heading.
type DateSection struct {
	Date string

	// Summary is the raw block between the date heading and the log.
	Summary []string

	// HasLog is set when the section carries an operations-log heading.
	HasLog bool

	// Preamble holds drift lines found in the log before any entry.
	Preamble []string

	Categories []*CategorySection

	// NextSteps is nil when the section has no next-steps heading.
	NextSteps *NextSteps

	// source is the section text as parsed; cleared on any mutation.
	source []string
}

// CategorySection groups entries under one category heading.
type CategorySection struct {
	Category category.Category
	Preamble []string
	Entries  []*Entry
}

// NextSteps is the raw block under the next-steps heading.
type NextSteps struct {
	Lines []string
}

// Section returns the first section for date, or nil.
func (d *Document) Section(date string) *DateSection {
	for _, s := range d.Sections {
		if s.Date == date {
			return s
		}
	}
	return nil
}

// Latest returns the section with the newest parseable date. Ties keep the
// earlier section; when no date parses the first section wins.
func (d *Document) Latest() *DateSection {
	var best *DateSection
	var bestDate time.Time
	for _, s := range d.Sections {
		t, _ := s.ParsedDate()
		if best == nil || t.After(bestDate) {
			best, bestDate = s, t
		}
	}
	return best
}

// Clone returns a copy whose sections and category lists may be reordered
// or mutated without affecting d. Entries are immutable and shared.
func (d *Document) Clone() *Document {
	out := &Document{
		Header:   append([]string(nil), d.Header...),
		Sections: make([]*DateSection, len(d.Sections)),
		Issues:   append([]Issue(nil), d.Issues...),
	}
	for i, s := range d.Sections {
		out.Sections[i] = s.clone()
	}
	return out
}

func (s *DateSection) clone() *DateSection {
	c := &DateSection{
		Date:       s.Date,
		Summary:    append([]string(nil), s.Summary...),
		HasLog:     s.HasLog,
		Preamble:   append([]string(nil), s.Preamble...),
		Categories: make([]*CategorySection, len(s.Categories)),
		source:     s.source,
	}
	for i, cs := range s.Categories {
		c.Categories[i] = &CategorySection{
			Category: cs.Category,
			Preamble: append([]string(nil), cs.Preamble...),
			Entries:  append([]*Entry(nil), cs.Entries...),
		}
	}
	if s.NextSteps != nil {
		c.NextSteps = &NextSteps{Lines: append([]string(nil), s.NextSteps.Lines...)}
	}
	return c
}

// ParsedDate parses the section's date; see thaidate.Parse.
func (s *DateSection) ParsedDate() (time.Time, bool) {
	return thaidate.Parse(s.Date)
}

// Category returns the first category section for c, or nil.
func (s *DateSection) Category(c category.Category) *CategorySection {
	for _, cs := range s.Categories {
		if cs.Category == c {
			return cs
		}
	}
	return nil
}

// Entries returns every log entry in document order.
func (s *DateSection) Entries() []*Entry {
	var out []*Entry
	for _, cs := range s.Categories {
		out = append(out, cs.Entries...)
	}
	return out
}

// SummaryPending reports whether the summary is empty or still the placeholder.
func (s *DateSection) SummaryPending() bool {
	body := strings.TrimSpace(strings.Join(s.Summary, "\n"))
	return body == "" || body == SummaryPlaceholder
}

// Touch marks the section as modified so Text renders it afresh.
func (s *DateSection) Touch() { s.source = nil }

func (s *DateSection) hasLog() bool {
	return s.HasLog || len(s.Preamble) > 0 || len(s.Categories) > 0
}
