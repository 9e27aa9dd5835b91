// Package timestamp turns the bracketed markers at the head of diary entries
// into keys that sort chronologically within a single date section.
package timestamp

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Default is the marker assumed when an entry line carries no [...] pair.
// It sorts before every real time of day.
const Default = "00:00"

// Layouts accepted for newly written entries.
const (
	LayoutTime     = "15:04"
	LayoutDateTime = "2006-01-02 15:04"
)

// Marker returns the text between the first '[' and the following ']' in line.
func Marker(line string) string {
	open := strings.Index(line, "[")
	if open < 0 {
		return Default
	}
	end := strings.Index(line[open+1:], "]")
	if end < 0 {
		return Default
	}
	return line[open+1 : open+1+end]
}

// Key converts a marker into a lexicographically comparable time of day.
//
// Bare "HH:MM" markers are returned as-is. Longer markers are assumed to be
// "YYYY-MM-DD HH:MM" and only the part after the first space is kept, so old
// and new entries inside one date section compare on time alone.
func Key(marker string) string {
	if utf8.RuneCountInString(marker) <= 5 {
		return marker
	}
	if i := strings.Index(marker, " "); i >= 0 {
		return marker[i+1:]
	}
	return marker
}

// KeyOf is Key(Marker(line)).
func KeyOf(line string) string {
	return Key(Marker(line))
}

// Format renders t for a new entry. Unknown layouts fall back to LayoutTime.
func Format(t time.Time, layout string) string {
	switch layout {
	case LayoutTime, LayoutDateTime:
	default:
		layout = LayoutTime
	}
	return t.Format(layout)
}
