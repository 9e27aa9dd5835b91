package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chris-regnier/gitdiary/internal/config"
	"github.com/chris-regnier/gitdiary/internal/journal"
	"github.com/chris-regnier/gitdiary/internal/logging"
	"github.com/chris-regnier/gitdiary/internal/storage"
)

// testNow is 13 ธันวาคม 2025, 15:04 local time.
var testNow = time.Date(2025, time.December, 13, 15, 4, 0, 0, time.Local)

const sampleDiary = `# Git Diary

## 📅 13 ธันวาคม 2025

สรุปวันนี้

### 📝 บันทึกการปฏิบัติงาน (Operations Log)

### 🔧 System & Workflow (งานระบบและคำสั่ง)
*   **[09:00] 🛠 First**

*   **[10:00] 🛠 Second**

## 📅 12 ธันวาคม 2025

### 📝 บันทึกการปฏิบัติงาน (Operations Log)

### ✍️ Content & Research (งานเนื้อหาและค้นคว้า)
*   **[08:00] 📝 Draft**
`

// setupTestEnv points the package globals at a diary inside a temp dir and
// returns the diary path. The file is created only when content is non-empty.
func setupTestEnv(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "git_diary.md")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing diary: %v", err)
		}
	}

	appConfig = &config.Config{
		DiaryFile:       path,
		ContentDir:      filepath.Join(dir, "articles"),
		ExportDir:       filepath.Join(dir, "articles", "html"),
		TimestampLayout: "15:04",
		GitTimeout:      "3s",
		LogLevel:        "warn",
		MaxWidth:        80,
		Theme:           config.ThemeConfig{Preset: "default-dark"},
		Shell: config.ShellConfig{
			TodayIcon:   "✓",
			NoTodayIcon: "✗",
			StreakIcon:  "🔥",
			PendingIcon: "📝",
		},
	}
	logger = logging.Discard()

	var err error
	store, err = storage.New(path)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	jrnl = journal.New(store,
		journal.WithClock(func() time.Time { return testNow }),
		journal.WithLogger(logger))

	gitDir = dir
	cacheDir = filepath.Join(dir, "cache")
	clock = func() time.Time { return testNow }
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))
	t.Cleanup(func() {
		gitDir, cacheDir = "", ""
		clock = time.Now
	})
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
