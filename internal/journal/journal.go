// Package journal runs diary operations as single read-modify-write cycles
// against a Store.
package journal

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/chris-regnier/gitdiary/internal/category"
	"github.com/chris-regnier/gitdiary/internal/diary"
	"github.com/chris-regnier/gitdiary/internal/logging"
	"github.com/chris-regnier/gitdiary/internal/reorder"
	"github.com/chris-regnier/gitdiary/internal/storage"
	"github.com/chris-regnier/gitdiary/internal/thaidate"
	"github.com/chris-regnier/gitdiary/internal/timestamp"
)

var (
	// ErrEmptyTitle is returned by Append for a blank title.
	ErrEmptyTitle = fmt.Errorf("%w: title is required", storage.ErrValidation)
	// ErrEmpty is returned by Latest when the diary has no date sections.
	ErrEmpty = errors.New("diary has no date sections")
)

// Store loads and saves the diary document.
type Store interface {
	Load() (*diary.Document, error)
	LoadOrEmpty() (*diary.Document, error)
	Save(doc *diary.Document) error
}

// Journal applies diary operations. It is safe for concurrent use within
// one process; separate processes are not coordinated.
type Journal struct {
	mu     sync.Mutex
	store  Store
	now    func() time.Time
	layout string
	logger *slog.Logger
}

// Option configures a Journal.
type Option func(*Journal)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(j *Journal) { j.now = now }
}

// WithLayout sets the timestamp layout for new entries.
func WithLayout(layout string) Option {
	return func(j *Journal) { j.layout = layout }
}

// WithLogger sets the logger used for parser findings and fallbacks.
func WithLogger(logger *slog.Logger) Option {
	return func(j *Journal) { j.logger = logger }
}

// New returns a Journal backed by store.
func New(store Store, opts ...Option) *Journal {
	j := &Journal{
		store:  store,
		now:    time.Now,
		layout: timestamp.LayoutTime,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Today returns the date section key for the current day.
func (j *Journal) Today() string {
	return thaidate.Format(j.now())
}

// Appended describes the result of Append.
type Appended struct {
	Date     string
	Category category.Category
	Entry    *diary.Entry
	// Fallback is set when the requested category name was unknown.
	Fallback bool
}

// Append files a new entry for today. An unknown category name is logged
// and filed under category.Default. A missing diary file is created.
func (j *Journal) Append(categoryName, title, body string) (*Appended, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}

	cat, ok := category.Parse(categoryName)
	if !ok {
		j.logger.Warn("unknown category, using default",
			slog.String("category", categoryName),
			slog.String("default", cat.String()))
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	doc, err := j.load(false)
	if err != nil {
		return nil, err
	}

	now := j.now()
	date := thaidate.Format(now)
	e := diary.NewEntry(timestamp.Format(now, j.layout), cat.Icon(), title, body)
	doc.AppendEntry(date, cat, e)

	if err := j.store.Save(doc); err != nil {
		return nil, err
	}
	j.logger.Debug("entry appended",
		slog.String("date", date),
		slog.String("category", cat.String()),
		slog.String("timestamp", e.Timestamp()))

	return &Appended{Date: date, Category: cat, Entry: e, Fallback: !ok}, nil
}

// ReplaceSummary replaces today's summary block. The diary must exist.
// Blank text yields diary.ErrNothingToDo and leaves the file alone.
func (j *Journal) ReplaceSummary(text string) (string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	doc, err := j.load(true)
	if err != nil {
		return "", err
	}
	date := j.Today()
	if err := doc.ReplaceSummary(date, text); err != nil {
		return "", err
	}
	if err := j.store.Save(doc); err != nil {
		return "", err
	}
	j.logger.Debug("summary replaced", slog.String("date", date))
	return date, nil
}

// Reorder rewrites the diary newest-first. Nothing is written when the
// document is already in order.
func (j *Journal) Reorder() (reorder.Result, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	doc, err := j.load(true)
	if err != nil {
		return reorder.Result{}, err
	}
	out, res := reorder.Document(doc)
	if !res.Changed() {
		return res, nil
	}
	if err := j.store.Save(out); err != nil {
		return res, err
	}
	j.logger.Debug("diary reordered",
		slog.Bool("sections_moved", res.SectionsMoved),
		slog.Int("sections_reversed", len(res.Reversed)))
	return res, nil
}

// Preview returns the reordered document without saving it.
func (j *Journal) Preview() (*diary.Document, reorder.Result, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	doc, err := j.load(true)
	if err != nil {
		return nil, reorder.Result{}, err
	}
	out, res := reorder.Document(doc)
	return out, res, nil
}

// Latest returns the most recent date section. The diary must exist.
func (j *Journal) Latest() (*diary.DateSection, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	doc, err := j.load(true)
	if err != nil {
		return nil, err
	}
	s := doc.Latest()
	if s == nil {
		return nil, ErrEmpty
	}
	return s, nil
}

// DateInfo summarizes one date section.
type DateInfo struct {
	Date           string         `json:"date" yaml:"date"`
	Entries        int            `json:"entries" yaml:"entries"`
	Categories     map[string]int `json:"categories" yaml:"categories"`
	SummaryPending bool           `json:"summary_pending" yaml:"summary_pending"`
	Parsed         bool           `json:"parsed" yaml:"parsed"`
}

// Dates lists the date sections in document order.
func (j *Journal) Dates() ([]DateInfo, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	doc, err := j.load(true)
	if err != nil {
		return nil, err
	}
	out := make([]DateInfo, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		_, parsed := s.ParsedDate()
		info := DateInfo{
			Date:           s.Date,
			Categories:     map[string]int{},
			SummaryPending: s.SummaryPending(),
			Parsed:         parsed,
		}
		for _, cs := range s.Categories {
			info.Categories[cs.Category.String()] += len(cs.Entries)
			info.Entries += len(cs.Entries)
		}
		out = append(out, info)
	}
	return out, nil
}

func (j *Journal) load(mustExist bool) (*diary.Document, error) {
	var (
		doc *diary.Document
		err error
	)
	if mustExist {
		doc, err = j.store.Load()
	} else {
		doc, err = j.store.LoadOrEmpty()
	}
	if err != nil {
		return nil, err
	}
	for _, issue := range doc.Issues {
		j.logger.Warn("diary structure", slog.String("issue", issue.String()))
	}
	return doc, nil
}
