package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/chris-regnier/gitdiary/internal/storage"
)

func TestSummaryRequiresDiary(t *testing.T) {
	path := setupTestEnv(t, "")

	var out bytes.Buffer
	err := summaryRun(context.Background(), strings.NewReader("done\n"), &out, false)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if store.Exists() {
		t.Errorf("%s created by a failed summary", path)
	}
}

func TestSummaryFromLines(t *testing.T) {
	path := setupTestEnv(t, sampleDiary)

	in := strings.NewReader("Shipped reorder\n\nFlaky test\nfsnotify quirks\nDocs\n")
	var out bytes.Buffer
	if err := summaryRun(context.Background(), in, &out, false); err != nil {
		t.Fatalf("summaryRun: %v", err)
	}
	if !strings.Contains(out.String(), "13 ธันวาคม 2025") {
		t.Errorf("unexpected output %q", out.String())
	}

	got := readFile(t, path)
	if strings.Contains(got, "สรุปวันนี้") {
		t.Error("old summary was not replaced")
	}
	for _, want := range []string{"Shipped reorder", "Flaky test", "fsnotify quirks", "Docs"} {
		if !strings.Contains(got, want) {
			t.Errorf("diary missing %q", want)
		}
	}
	if strings.Contains(got, "(Went well)") {
		t.Error("empty answer should be skipped")
	}
	// The older section is untouched.
	if !strings.Contains(got, "*   **[08:00] 📝 Draft**") {
		t.Error("other date section changed")
	}
}

func TestSummaryNoAnswers(t *testing.T) {
	path := setupTestEnv(t, sampleDiary)

	var out bytes.Buffer
	if err := summaryRun(context.Background(), strings.NewReader("\n\n\n\n\n"), &out, false); err != nil {
		t.Fatalf("summaryRun: %v", err)
	}
	if !strings.Contains(out.String(), "summary unchanged") {
		t.Errorf("unexpected output %q", out.String())
	}
	if readFile(t, path) != sampleDiary {
		t.Error("diary rewritten without answers")
	}
}
