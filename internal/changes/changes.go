// Package changes inspects the working tree and proposes a diary entry for
// the pending changes.
package changes

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/chris-regnier/gitdiary/internal/category"
)

// DefaultTimeout bounds a git invocation when Git.Timeout is zero.
const DefaultTimeout = 3 * time.Second

// Git lists changed files in a working tree.
type Git struct {
	Dir     string // working directory; empty = current dir
	Timeout time.Duration
}

// ChangedFiles returns the paths reported by `git status --porcelain`,
// including untracked files. Renames report the new path.
func (g Git) ChangedFiles(ctx context.Context) ([]string, error) {
	out, err := g.run(ctx, "status", "--porcelain", "-z", "--untracked-files=all")
	if err != nil {
		return nil, err
	}
	return parsePorcelain(out), nil
}

func (g Git) run(ctx context.Context, args ...string) ([]byte, error) {
	timeout := g.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	if g.Dir != "" {
		cmd.Dir = g.Dir
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("git %s: %w", args[0], ctx.Err())
		}
		return nil, fmt.Errorf("git %s: %v: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

// parsePorcelain reads NUL-separated porcelain v1 records ("XY path").
// Rename and copy records carry the source path as an extra field.
func parsePorcelain(out []byte) []string {
	var files []string
	fields := strings.Split(string(out), "\x00")
	for i := 0; i < len(fields); i++ {
		rec := fields[i]
		if len(rec) < 4 {
			continue
		}
		xy, name := rec[:2], rec[3:]
		files = append(files, name)
		if strings.ContainsAny(xy, "RC") {
			i++
		}
	}
	return files
}

// Suggestion is a proposed diary entry.
type Suggestion struct {
	Category category.Category
	Title    string
	Body     string
}

// Fallback is suggested when nothing has changed.
var Fallback = Suggestion{Category: category.System, Title: "General maintenance"}

const maxNamed = 3

// Suggest classifies files. Markdown files under contentDir only make a
// content entry; anything else makes a system entry.
func Suggest(files []string, contentDir string) Suggestion {
	if len(files) == 0 {
		return Fallback
	}

	cat := category.Content
	for _, f := range files {
		if !isContent(f, contentDir) {
			cat = category.System
			break
		}
	}

	var title string
	switch {
	case cat == category.Content:
		names := make([]string, len(files))
		for i, f := range files {
			names[i] = strings.TrimSuffix(path.Base(filepath.ToSlash(f)), ".md")
		}
		title = "Update content: " + listNames(names)
	case len(files) == 1:
		title = "Update " + filepath.ToSlash(files[0])
	default:
		title = fmt.Sprintf("Update %d files in %s", len(files), listNames(topDirs(files)))
	}

	quoted := make([]string, len(files))
	for i, f := range files {
		quoted[i] = "`" + filepath.ToSlash(f) + "`"
	}
	return Suggestion{
		Category: cat,
		Title:    title,
		Body:     "Files: " + strings.Join(quoted, ", "),
	}
}

// Line renders s as "<category>|<title>|<body>" on one line.
func (s Suggestion) Line() string {
	return strings.Join([]string{s.Category.String(), scrub(s.Title), scrub(s.Body)}, "|")
}

func scrub(s string) string {
	s = strings.ReplaceAll(s, "|", "/")
	return strings.Join(strings.Fields(s), " ")
}

func isContent(file, contentDir string) bool {
	f := path.Clean(filepath.ToSlash(file))
	if !strings.EqualFold(path.Ext(f), ".md") {
		return false
	}
	dir := path.Clean(filepath.ToSlash(contentDir))
	if dir == "." || dir == "" {
		return true
	}
	return strings.HasPrefix(f, dir+"/")
}

func topDirs(files []string) []string {
	seen := map[string]bool{}
	var dirs []string
	for _, f := range files {
		top, _, found := strings.Cut(filepath.ToSlash(f), "/")
		if !found {
			top = "."
		}
		if !seen[top] {
			seen[top] = true
			dirs = append(dirs, top)
		}
	}
	return dirs
}

func listNames(names []string) string {
	if len(names) <= maxNamed {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s and %d more", strings.Join(names[:maxNamed], ", "), len(names)-maxNamed)
}
