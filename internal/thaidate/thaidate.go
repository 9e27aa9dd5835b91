// Package thaidate formats and parses the long-form dates used in diary
// section headings, e.g. "11 ธันวาคม 2025" (Thai month name, Common Era year).
package thaidate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var months = [12]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

var monthIndex = func() map[string]time.Month {
	m := make(map[string]time.Month, 24)
	for i, name := range months {
		m[name] = time.Month(i + 1)
		m[strings.ToLower(time.Month(i+1).String())] = time.Month(i + 1)
	}
	return m
}()

// Format renders the calendar date of t.
func Format(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), months[t.Month()-1], t.Year())
}

// Parse reads "<day> <month> <year>". Thai and English month names are
// accepted; an unrecognised month word falls back to January as older
// tooling did. On failure it returns the zero time, which sorts before any
// real date, and false.
func Parse(s string) (time.Time, bool) {
	parts := strings.Fields(s)
	if len(parts) < 3 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}
	month, ok := monthIndex[strings.ToLower(parts[1])]
	if !ok {
		month = time.January
	}
	if day < 1 || year < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	// time.Date normalizes overflow such as 31 February into March.
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}
