package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"gopkg.in/yaml.v3"

	"github.com/chris-regnier/gitdiary/internal/category"
	"github.com/chris-regnier/gitdiary/internal/export"
	"github.com/chris-regnier/gitdiary/internal/journal"
	"github.com/chris-regnier/gitdiary/internal/reorder"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	dimColor  = color.New(color.Faint)
	boldColor = color.New(color.Bold)
)

// FormatAppended confirms a new entry.
func FormatAppended(w io.Writer, res *journal.Appended) {
	okColor.Fprintf(w, "✅ บันทึก '%s' ลงในหมวด '%s' เรียบร้อย\n", res.Entry.Title(), res.Category)
	dimColor.Fprintf(w, "   %s [%s]\n", res.Date, res.Entry.Timestamp())
}

// FormatSummaryReplaced confirms a summary update.
func FormatSummaryReplaced(w io.Writer, date string) {
	okColor.Fprintf(w, "✅ อัปเดตสรุปประจำวัน %s เรียบร้อย\n", date)
}

// FormatWarning prints a highlighted warning line.
func FormatWarning(w io.Writer, format string, args ...any) {
	warnColor.Fprintf(w, "⚠️  "+format+"\n", args...)
}

// FormatReorder describes the outcome of a reorder.
func FormatReorder(w io.Writer, res reorder.Result, written bool) {
	if !res.Changed() {
		fmt.Fprintln(w, "Diary is already in order.")
		return
	}
	if res.SectionsMoved {
		fmt.Fprintln(w, "Date sections sorted newest first.")
	}
	for _, d := range res.Reversed {
		fmt.Fprintf(w, "Entries reversed: %s\n", d)
	}
	if written {
		okColor.Fprintln(w, "✅ Diary rewritten.")
	}
}

// FormatDates renders the date sections as a table.
func FormatDates(w io.Writer, dates []journal.DateInfo) {
	if len(dates) == 0 {
		fmt.Fprintln(w, "No date sections found.")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(boldColor.Sprint("DATE"), boldColor.Sprint("ENTRIES"), boldColor.Sprint("CATEGORIES"), boldColor.Sprint("SUMMARY"))
	for _, d := range dates {
		date := d.Date
		if !d.Parsed {
			date = warnColor.Sprint(date)
		}
		status := "written"
		if d.SummaryPending {
			status = dimColor.Sprint("pending")
		}
		tbl.AddRow(date, d.Entries, formatCategories(d.Categories), status)
	}
	fmt.Fprintln(w, tbl)
}

func formatCategories(counts map[string]int) string {
	var parts []string
	for _, c := range append([]category.Category{category.Uncategorized}, category.All()...) {
		if n := counts[c.String()]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", c, n))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

// FormatExported lists converted files.
func FormatExported(w io.Writer, results []export.Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No markdown files found to convert.")
		return
	}
	for _, r := range results {
		fmt.Fprintf(w, "Converting: %s -> %s\n", r.Source, r.Output)
	}
	okColor.Fprintln(w, "✅ HTML generation complete!")
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatYAML writes any value as YAML to the writer.
func FormatYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
