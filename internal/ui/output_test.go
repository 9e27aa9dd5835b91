package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/chris-regnier/gitdiary/internal/category"
	"github.com/chris-regnier/gitdiary/internal/diary"
	"github.com/chris-regnier/gitdiary/internal/export"
	"github.com/chris-regnier/gitdiary/internal/journal"
	"github.com/chris-regnier/gitdiary/internal/reorder"
)

func init() {
	color.NoColor = true
}

func TestFormatAppended(t *testing.T) {
	var buf bytes.Buffer
	FormatAppended(&buf, &journal.Appended{
		Date:     "11 ธันวาคม 2025",
		Category: category.System,
		Entry:    diary.NewEntry("14:30", "🛠", "Deploy config", ""),
	})
	want := "✅ บันทึก 'Deploy config' ลงในหมวด 'system' เรียบร้อย\n   11 ธันวาคม 2025 [14:30]\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestFormatDates(t *testing.T) {
	var buf bytes.Buffer
	FormatDates(&buf, []journal.DateInfo{
		{Date: "11 ธันวาคม 2025", Entries: 3, Categories: map[string]int{"content": 2, "system": 1}, Parsed: true},
		{Date: "someday", Categories: map[string]int{}, SummaryPending: true},
	})
	out := buf.String()
	for _, want := range []string{"DATE", "ENTRIES", "11 ธันวาคม 2025", "content:2 system:1", "written", "someday", "pending"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 3 {
		t.Errorf("expected header plus 2 rows, got %d lines:\n%s", lines, out)
	}
}

func TestFormatDatesEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatDates(&buf, nil)
	if !strings.Contains(buf.String(), "No date sections") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestFormatReorder(t *testing.T) {
	var buf bytes.Buffer
	FormatReorder(&buf, reorder.Result{}, false)
	if !strings.Contains(buf.String(), "already in order") {
		t.Errorf("unexpected output %q", buf.String())
	}

	buf.Reset()
	FormatReorder(&buf, reorder.Result{SectionsMoved: true, Reversed: []string{"1 มกราคม 2026"}}, true)
	out := buf.String()
	for _, want := range []string{"newest first", "Entries reversed: 1 มกราคม 2026", "rewritten"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestFormatExported(t *testing.T) {
	var buf bytes.Buffer
	FormatExported(&buf, []export.Result{{Source: "articles/a.md", Output: "articles/html/a.html"}})
	if !strings.Contains(buf.String(), "articles/a.md -> articles/html/a.html") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestFormatJSONAndYAML(t *testing.T) {
	v := []journal.DateInfo{{Date: "1 มกราคม 2026", Entries: 1, Categories: map[string]int{"other": 1}, Parsed: true}}

	var js bytes.Buffer
	if err := FormatJSON(&js, v); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(js.String(), `"date": "1 มกราคม 2026"`) {
		t.Errorf("unexpected JSON %s", js.String())
	}

	var ym bytes.Buffer
	if err := FormatYAML(&ym, v); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(ym.String(), "- date: 1 มกราคม 2026") || !strings.Contains(ym.String(), "summary_pending: false") {
		t.Errorf("unexpected YAML %s", ym.String())
	}
}
