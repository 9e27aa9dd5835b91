package diary

import (
	"strings"

	"github.com/chris-regnier/gitdiary/internal/category"
)

// lineWriter accumulates output lines and keeps block separation to a
// single blank line.
type lineWriter struct {
	lines []string
}

func (w *lineWriter) line(s ...string) { w.lines = append(w.lines, s...) }

func (w *lineWriter) blank() {
	if n := len(w.lines); n > 0 && !isBlank(w.lines[n-1]) {
		w.lines = append(w.lines, "")
	}
}

func (w *lineWriter) block(lines []string) { w.line(trimBlankEdges(lines)...) }

func (w *lineWriter) String() string {
	if len(w.lines) == 0 {
		return ""
	}
	return strings.Join(w.lines, "\n") + "\n"
}

// Render serializes doc with canonical headings. Header, summary, entry and
// next-steps text is written as stored.
func Render(doc *Document) string {
	w := &lineWriter{}
	w.block(doc.Header)
	for _, s := range doc.Sections {
		w.blank()
		writeSection(w, s)
	}
	return w.String()
}

// Text returns the section as it appeared in the parsed file, or its
// rendered form once it has been modified.
func (s *DateSection) Text() string {
	if s.source != nil {
		return strings.Join(s.source, "\n") + "\n"
	}
	w := &lineWriter{}
	writeSection(w, s)
	return w.String()
}

func writeSection(w *lineWriter, s *DateSection) {
	w.line(DateHeading(s.Date))
	if len(trimBlankEdges(s.Summary)) > 0 {
		w.blank()
		w.block(s.Summary)
	}

	if s.hasLog() {
		w.blank()
		w.line(LogHeading)
		w.block(s.Preamble)
		for _, cs := range s.Categories {
			writeCategory(w, cs)
		}
	}

	if s.NextSteps != nil {
		w.blank()
		w.line(NextStepsHeading)
		w.block(s.NextSteps.Lines)
	}
}

func writeCategory(w *lineWriter, cs *CategorySection) {
	if cs.Category == category.Uncategorized {
		for _, e := range cs.Entries {
			w.blank()
			w.line(e.lines...)
		}
		return
	}

	w.blank()
	w.line(cs.Category.Heading())
	w.block(cs.Preamble)
	for i, e := range cs.Entries {
		if i > 0 {
			w.blank()
		}
		w.line(e.lines...)
	}
}
