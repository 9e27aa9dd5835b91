package cmd

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/chris-regnier/gitdiary/internal/storage"
)

func TestLatestPrintsVerbatim(t *testing.T) {
	setupTestEnv(t, sampleDiary)

	var out bytes.Buffer
	if err := latestRun(&out, false); err != nil {
		t.Fatalf("latestRun: %v", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "## 📅 13 ธันวาคม 2025\n\nสรุปวันนี้\n") {
		t.Errorf("unexpected section start:\n%s", got)
	}
	if !strings.Contains(got, "*   **[09:00] 🛠 First**\n\n*   **[10:00] 🛠 Second**") {
		t.Errorf("entries not verbatim:\n%s", got)
	}
	if strings.Contains(got, "12 ธันวาคม") {
		t.Error("older section printed")
	}
}

func TestLatestMissingDiary(t *testing.T) {
	setupTestEnv(t, "")

	var out bytes.Buffer
	if err := latestRun(&out, false); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestLatestPretty(t *testing.T) {
	setupTestEnv(t, sampleDiary)

	var out bytes.Buffer
	if err := latestRun(&out, true); err != nil {
		t.Fatalf("latestRun: %v", err)
	}
	if out.Len() == 0 {
		t.Error("expected rendered output")
	}
}

// lockedBuffer is written by the follow goroutines and read by the test.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestLatestFollowKeepsPrettyOnReprint(t *testing.T) {
	setupTestEnv(t, sampleDiary)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out lockedBuffer
	done := make(chan error, 1)
	go func() { done <- latestFollowRun(ctx, &out, true) }()

	waitFor := func(want string) string {
		t.Helper()
		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			if got := ansi.ReplaceAllString(out.String(), ""); strings.Contains(got, want) {
				return got
			}
			time.Sleep(20 * time.Millisecond)
		}
		t.Fatalf("timed out waiting for %q in:\n%s", want, out.String())
		return ""
	}

	waitFor("Second")
	// Give the watcher time to register before changing the file.
	time.Sleep(100 * time.Millisecond)
	if _, err := jrnl.Append("system", "Followed", ""); err != nil {
		t.Fatalf("Append: %v", err)
	}
	got := waitFor("Followed")

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("latestFollowRun: %v", err)
	}
	if strings.Contains(got, "*   **[") {
		t.Errorf("reprint fell back to raw markdown:\n%s", got)
	}
}
