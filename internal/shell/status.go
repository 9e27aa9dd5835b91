package shell

import (
	"time"

	"github.com/chris-regnier/gitdiary/internal/journal"
	"github.com/chris-regnier/gitdiary/internal/thaidate"
)

// Status is what the shell prompt shows about the diary.
type Status struct {
	Today          bool `json:"today"`
	TodayEntries   int  `json:"today_entries"`
	Streak         int  `json:"streak"`
	SummaryPending bool `json:"summary_pending"`
}

// ComputeStatus derives the prompt status from the diary's date sections:
// whether today has entries and how many consecutive days up to today (or
// up to yesterday, while today is still empty) have entries.
func ComputeStatus(dates []journal.DateInfo, now time.Time) Status {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	entries := make(map[string]int, len(dates))
	var st Status
	for _, d := range dates {
		t, ok := thaidate.Parse(d.Date)
		if !ok {
			continue
		}
		key := t.Format("2006-01-02")
		entries[key] += d.Entries
		if key == today.Format("2006-01-02") {
			st.SummaryPending = st.SummaryPending || d.SummaryPending
		}
	}

	st.TodayEntries = entries[today.Format("2006-01-02")]
	st.Today = st.TodayEntries > 0

	check := today
	if !st.Today {
		check = check.AddDate(0, 0, -1)
	}
	for entries[check.Format("2006-01-02")] > 0 {
		st.Streak++
		check = check.AddDate(0, 0, -1)
	}
	return st
}
