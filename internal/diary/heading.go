package diary

import (
	"regexp"
	"strings"
)

// Canonical structural lines. Older files may carry other wordings; the
// parser accepts those and Render always writes these.
const (
	DateIcon           = "📅"
	LogHeading         = "### 📝 บันทึกการปฏิบัติงาน (Operations Log)"
	NextStepsHeading   = "### ⏭️ ขั้นตอนถัดไป (Next Steps)"
	SummaryPlaceholder = "> _ยังไม่ได้สรุปประจำวัน (summary pending)_"
)

var (
	dateHeadingRe     = regexp.MustCompile(`^##\s+📅\s*(.+?)\s*$`)
	bareDateHeadingRe = regexp.MustCompile(`^##\s+(\d{1,2}\s+\S+\s+\d{4})\s*$`)

	// Two bullet styles have been used for entry heads over time:
	// "*   **[HH:MM] ..." and "**[YYYY-MM-DD HH:MM] ...".
	entryBoundaryRes = []*regexp.Regexp{
		regexp.MustCompile(`^\*\s+\*\*\[.*\]`),
		regexp.MustCompile(`^\*\*\[.*\]`),
	}

	logMarkers       = []string{"บันทึกการปฏิบัติงาน", "Operations Log"}
	nextStepsMarkers = []string{"⏭", "Next Steps", "ขั้นตอนถัดไป"}
)

// DateHeading renders the heading line for a date section.
func DateHeading(date string) string {
	return "## " + DateIcon + " " + date
}

func matchDateHeading(line string) (string, bool) {
	line = strings.TrimRight(line, " \t")
	if m := dateHeadingRe.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	if m := bareDateHeadingRe.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	return "", false
}

// IsEntryBoundary reports whether line starts a new log entry.
func IsEntryBoundary(line string) bool {
	t := strings.TrimSpace(line)
	for _, re := range entryBoundaryRes {
		if re.MatchString(t) {
			return true
		}
	}
	return false
}

func isSubHeading(line string, markers []string) bool {
	t := strings.TrimSpace(line)
	if !strings.HasPrefix(t, "###") {
		return false
	}
	for _, m := range markers {
		if strings.Contains(t, m) {
			return true
		}
	}
	return false
}

func isLogHeading(line string) bool       { return isSubHeading(line, logMarkers) }
func isNextStepsHeading(line string) bool { return isSubHeading(line, nextStepsMarkers) }

func isBlank(line string) bool { return strings.TrimSpace(line) == "" }

// trimBlankEdges drops leading and trailing blank lines, keeping inner ones.
func trimBlankEdges(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && isBlank(lines[start]) {
		start++
	}
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	return lines[start:end]
}
