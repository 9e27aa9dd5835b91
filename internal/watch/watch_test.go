package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/chris-regnier/gitdiary/internal/storage"
)

func startFollower(t *testing.T, path string, onChange func() error) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	f := &Follower{Path: path, Debounce: 50 * time.Millisecond, OnChange: onChange}
	go func() { done <- f.Run(ctx) }()
	// Give the watcher time to register.
	time.Sleep(100 * time.Millisecond)
	return cancel, done
}

func TestFollowerSeesAtomicSaves(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "git_diary.md")
	file, err := storage.New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := file.Write([]byte("v1\n")); err != nil {
		t.Fatal(err)
	}

	calls := make(chan struct{}, 10)
	cancel, done := startFollower(t, path, func() error {
		calls <- struct{}{}
		return nil
	})
	defer cancel()

	if err := file.Write([]byte("v2\n")); err != nil {
		t.Fatal(err)
	}
	select {
	case <-calls:
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}

	// a second save after the first settles is reported again
	if err := file.Write([]byte("v3\n")); err != nil {
		t.Fatal(err)
	}
	select {
	case <-calls:
	case <-time.After(3 * time.Second):
		t.Fatal("second change not reported")
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run returned %v", err)
	}
}

func TestFollowerDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "git_diary.md")
	if err := os.WriteFile(path, []byte("start\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var n atomic.Int32
	cancel, _ := startFollower(t, path, func() error {
		n.Add(1)
		return nil
	})
	defer cancel()

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("burst\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	time.Sleep(500 * time.Millisecond)
	if got := n.Load(); got != 1 {
		t.Errorf("expected 1 coalesced callback, got %d", got)
	}
}

func TestFollowerIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "git_diary.md")
	if err := os.WriteFile(path, []byte("start\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var n atomic.Int32
	cancel, _ := startFollower(t, path, func() error {
		n.Add(1)
		return nil
	})
	defer cancel()

	if err := os.WriteFile(filepath.Join(dir, "other.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(300 * time.Millisecond)
	if got := n.Load(); got != 0 {
		t.Errorf("expected no callbacks, got %d", got)
	}
}

func TestFollowerStopsOnCallbackError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "git_diary.md")
	if err := os.WriteFile(path, []byte("start\n"), 0644); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	cancel, done := startFollower(t, path, func() error { return boom })
	defer cancel()

	if err := os.WriteFile(path, []byte("change\n"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case err := <-done:
		if !errors.Is(err, boom) {
			t.Errorf("expected boom, got %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestFollowerMissingDirectory(t *testing.T) {
	f := &Follower{Path: filepath.Join(t.TempDir(), "missing", "git_diary.md"), OnChange: func() error { return nil }}
	if err := f.Run(context.Background()); err == nil {
		t.Error("expected error watching a missing directory")
	}
}
