package ui

import (
	"strings"
	"testing"
)

func TestRenderMarkdownWithStyle(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		style        string
		wantContains []string
	}{
		{
			name:         "plain text",
			input:        "Hello world",
			style:        "dark",
			wantContains: []string{"Hello world"},
		},
		{
			name:         "markdown heading",
			input:        "# Main Title",
			style:        "dark",
			wantContains: []string{"Main Title"},
		},
		{
			name:         "markdown list",
			input:        "- Item 1\n- Item 2\n- Item 3",
			style:        "light",
			wantContains: []string{"Item 1", "Item 2", "Item 3"},
		},
		{
			name: "diary section",
			input: "## 📅 11 ธันวาคม 2025\n\n### 🔧 System & Workflow (งานระบบและคำสั่ง)\n" +
				"*   **[14:30] 🛠 Deploy config**\n    *   rolled out",
			style:        "notty",
			wantContains: []string{"11 ธันวาคม 2025", "Deploy config", "rolled out"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := stripANSI(RenderMarkdownWithStyle(tt.input, 80, tt.style))
			for _, want := range tt.wantContains {
				if !strings.Contains(result, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, result)
				}
			}
		})
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if got := RenderMarkdown("", 80); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestRenderMarkdownUnknownStyleReturnsInput(t *testing.T) {
	in := "**bold**"
	if got := RenderMarkdownWithStyle(in, 80, "/no/such/style.json"); got != in {
		t.Errorf("expected raw content on failure, got %q", got)
	}
}

func TestRendererIsCached(t *testing.T) {
	a, err := renderer(60, "dark")
	if err != nil {
		t.Fatal(err)
	}
	b, err := renderer(60, "dark")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("expected the same renderer for identical settings")
	}
	c, err := renderer(70, "dark")
	if err != nil {
		t.Fatal(err)
	}
	if a == c {
		t.Error("expected a new renderer for a different width")
	}
}
