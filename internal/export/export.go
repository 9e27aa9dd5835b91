// Package export renders the Markdown articles of the content directory to
// standalone printable HTML pages.
package export

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/chris-regnier/gitdiary/internal/logging"
)

// DefaultTitle is used when a document names no title.
const DefaultTitle = "Document"

// Exporter converts every *.md file directly inside SrcDir into
// OutDir/<name>.html.
type Exporter struct {
	SrcDir string
	OutDir string
	Now    func() time.Time
	Logger *slog.Logger
}

// Result reports one converted file.
type Result struct {
	Source string
	Output string
	Title  string
}

// Run converts all articles. It stops at the first failure.
func (e *Exporter) Run(ctx context.Context) ([]Result, error) {
	logger := e.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	sources, err := filepath.Glob(filepath.Join(e.SrcDir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", e.SrcDir, err)
	}
	sort.Strings(sources)
	if len(sources) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(e.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", e.OutDir, err)
	}

	results := make([]Result, 0, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		data, err := os.ReadFile(src)
		if err != nil {
			return results, fmt.Errorf("reading %s: %w", src, err)
		}
		title, page, err := Convert(data, now())
		if err != nil {
			return results, fmt.Errorf("converting %s: %w", src, err)
		}
		out := filepath.Join(e.OutDir, strings.TrimSuffix(filepath.Base(src), ".md")+".html")
		if err := os.WriteFile(out, page, 0o644); err != nil {
			return results, fmt.Errorf("writing %s: %w", out, err)
		}
		logger.Debug("exported", slog.String("source", src), slog.String("output", out))
		results = append(results, Result{Source: src, Output: out, Title: title})
	}
	return results, nil
}

type meta struct {
	Title string `yaml:"title" toml:"title" json:"title"`
}

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		gmhtml.WithUnsafe(),
	),
)

// Convert renders one Markdown document as a full HTML page. Front matter
// is stripped; its title wins over the first level-one heading.
func Convert(src []byte, now time.Time) (string, []byte, error) {
	var fm meta
	body, err := frontmatter.Parse(bytes.NewReader(src), &fm)
	if err != nil {
		return "", nil, fmt.Errorf("front matter: %w", err)
	}

	title := strings.TrimSpace(fm.Title)
	if title == "" {
		title = firstHeading(body)
	}

	var content bytes.Buffer
	if err := markdown.Convert(body, &content); err != nil {
		return "", nil, err
	}

	var page bytes.Buffer
	err = pageTemplate.Execute(&page, pageData{
		Title:   title,
		Content: template.HTML(content.String()),
		Updated: now.Format("02/01/2006 15:04"),
	})
	if err != nil {
		return "", nil, err
	}
	return title, page.Bytes(), nil
}

func firstHeading(body []byte) string {
	for _, line := range strings.Split(string(body), "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return DefaultTitle
}
