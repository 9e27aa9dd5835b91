package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// renderers caches glamour renderers by style and width.
var (
	renderersMu sync.Mutex
	renderers   = map[rendererKey]*glamour.TermRenderer{}
)

type rendererKey struct {
	style string
	width int
}

func renderer(width int, style string) (*glamour.TermRenderer, error) {
	if width < 1 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}
	key := rendererKey{style: style, width: width}

	renderersMu.Lock()
	defer renderersMu.Unlock()
	if r, ok := renderers[key]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	renderers[key] = r
	return r, nil
}

// RenderMarkdownWithStyle renders markdown content using the specified glamour style.
// Returns the original content if rendering fails.
func RenderMarkdownWithStyle(content string, width int, style string) string {
	if content == "" {
		return ""
	}

	r, err := renderer(width, style)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimRight(rendered, "\n")
}

// RenderMarkdown renders markdown content to a rich text string suitable for terminal display.
// Uses "dark" style by default.
func RenderMarkdown(content string, width int) string {
	return RenderMarkdownWithStyle(content, width, "dark")
}
