package shell

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const cacheFileName = ".prompt-cache"

// PromptCache holds the last computed Status for one diary file.
type PromptCache struct {
	Status
	DiaryPath string    `json:"diary_path"`
	DiaryMod  time.Time `json:"diary_mod"`
	DiarySize int64     `json:"diary_size"`
	TodayDate string    `json:"today_date"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CachePath returns the full path to the prompt cache file.
func CachePath(dataDir string) string {
	return filepath.Join(dataDir, cacheFileName)
}

// ReadCache reads the prompt cache from disk. Returns nil if the cache
// does not exist or cannot be parsed.
func ReadCache(dataDir string) *PromptCache {
	data, err := os.ReadFile(CachePath(dataDir))
	if err != nil {
		return nil
	}
	var c PromptCache
	if err := json.Unmarshal(data, &c); err != nil {
		return nil
	}
	return &c
}

// WriteCache writes the prompt cache to disk.
func WriteCache(dataDir string, c *PromptCache) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(CachePath(dataDir), data, 0o600)
}

// NewCache records st against the current state of the diary at diaryPath.
// A missing diary is recorded with a zero size and time.
func NewCache(st Status, diaryPath string, now time.Time) *PromptCache {
	c := &PromptCache{
		Status:    st,
		DiaryPath: absPath(diaryPath),
		TodayDate: now.Format("2006-01-02"),
		UpdatedAt: now,
	}
	if fi, err := os.Stat(diaryPath); err == nil {
		c.DiaryMod = fi.ModTime()
		c.DiarySize = fi.Size()
	}
	return c
}

// IsFresh reports whether the cache still describes the diary at
// diaryPath. It goes stale at midnight, when the diary changes, or when it
// was written for another diary.
func (c *PromptCache) IsFresh(diaryPath string, now time.Time) bool {
	if c == nil {
		return false
	}
	if c.TodayDate != now.Format("2006-01-02") || c.DiaryPath != absPath(diaryPath) {
		return false
	}
	fi, err := os.Stat(diaryPath)
	if err != nil {
		return c.DiarySize == 0 && c.DiaryMod.IsZero()
	}
	return fi.Size() == c.DiarySize && fi.ModTime().Equal(c.DiaryMod)
}

// InvalidateCache removes the prompt cache file.
func InvalidateCache(dataDir string) error {
	path := CachePath(dataDir)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
