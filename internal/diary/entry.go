package diary

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chris-regnier/gitdiary/internal/timestamp"
)

const bodyIndent = "    *   "

var backtickRe = regexp.MustCompile("`([^`]+)`")

// Entry is one timestamped log item. Its lines are kept exactly as written;
// an Entry is never edited after it is created.
type Entry struct {
	lines []string
}

// NewEntry renders a fresh entry:
//
//	*   **[<ts>] <icon> <title>**
//	    *   <body line>
//
// Blank body lines are dropped and the title is folded onto one line.
func NewEntry(ts, icon, title, body string) *Entry {
	title = strings.Join(strings.Fields(title), " ")
	head := "*   **[" + ts + "] "
	if icon != "" {
		head += icon + " "
	}
	head += title + "**"

	lines := []string{head}
	for _, l := range strings.Split(body, "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, bodyIndent+l)
	}
	return &Entry{lines: lines}
}

func entryFromLines(lines []string) *Entry {
	cp := make([]string, len(lines))
	copy(cp, lines)
	return &Entry{lines: cp}
}

// Lines returns a copy of the entry's text lines, head line first.
func (e *Entry) Lines() []string {
	cp := make([]string, len(e.lines))
	copy(cp, e.lines)
	return cp
}

// Timestamp is the marker between the first [ ] pair of the head line.
func (e *Entry) Timestamp() string { return timestamp.Marker(e.lines[0]) }

// Key is the sort key derived from Timestamp.
func (e *Entry) Key() string { return timestamp.Key(e.Timestamp()) }

// Icon is the glyph before the title, if any.
func (e *Entry) Icon() string {
	icon, _ := e.head()
	return icon
}

// Title is the head line text without timestamp, icon or bold markers.
func (e *Entry) Title() string {
	_, title := e.head()
	return title
}

// Body returns the lines after the head line.
func (e *Entry) Body() []string {
	return append([]string(nil), e.lines[1:]...)
}

// Files returns the names listed on a "Files:" body line.
func (e *Entry) Files() []string {
	for _, l := range e.lines[1:] {
		if !strings.Contains(l, "Files:") {
			continue
		}
		var names []string
		for _, m := range backtickRe.FindAllStringSubmatch(l, -1) {
			names = append(names, m[1])
		}
		return names
	}
	return nil
}

func (e *Entry) head() (icon, title string) {
	line := strings.TrimSpace(e.lines[0])
	if i := strings.Index(line, "]"); i >= 0 {
		line = line[i+1:]
	}
	line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), "**"))
	first, rest, found := strings.Cut(line, " ")
	if found && isGlyph(first) {
		return first, strings.TrimSpace(rest)
	}
	return "", line
}

func isGlyph(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSymbol(r)
}
