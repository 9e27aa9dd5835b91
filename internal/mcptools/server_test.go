package mcptools_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/gitdiary/internal/changes"
	"github.com/chris-regnier/gitdiary/internal/journal"
	"github.com/chris-regnier/gitdiary/internal/mcptools"
	"github.com/chris-regnier/gitdiary/internal/storage"
)

var fixedNow = time.Date(2025, time.December, 11, 14, 30, 0, 0, time.Local)

func setup(t *testing.T) (*mcp.ClientSession, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "git_diary.md")
	f, err := storage.New(path)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	j := journal.New(f, journal.WithClock(func() time.Time { return fixedNow }))

	_, clientTransport := mcptools.NewDiaryMCPServer(mcptools.Deps{
		Journal:    j,
		Git:        changes.Git{Dir: dir, Timeout: time.Second},
		ContentDir: "articles",
	})
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	if err != nil {
		t.Fatalf("failed to connect client: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session, path
}

func call(t *testing.T, session *mcp.ClientSession, name string, args any, out any) *mcp.CallToolResult {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool %s failed: %v", name, err)
	}
	if result.IsError || out == nil {
		return result
	}
	if result.StructuredContent == nil {
		t.Fatalf("%s: expected structured content", name)
	}
	outputJSON, _ := json.Marshal(result.StructuredContent)
	if err := json.Unmarshal(outputJSON, out); err != nil {
		t.Fatalf("failed to unmarshal structured content: %v", err)
	}
	return result
}

// expectToolError accepts either a protocol error or an IsError result.
func expectToolError(t *testing.T, session *mcp.ClientSession, name string, args any) {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err == nil && (result == nil || !result.IsError) {
		t.Errorf("%s: expected an error", name)
	}
}

func TestMCPServer_ListsTools(t *testing.T) {
	session, _ := setup(t)
	res, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	got := map[string]bool{}
	for _, tool := range res.Tools {
		got[tool.Name] = true
	}
	for _, name := range []string{"append_entry", "replace_summary", "read_latest", "list_dates", "reorder_diary", "suggest_entry"} {
		if !got[name] {
			t.Errorf("tool %s not registered", name)
		}
	}
}

func TestMCPServer_AppendEntry(t *testing.T) {
	session, path := setup(t)

	var out mcptools.AppendEntryOutput
	call(t, session, "append_entry", mcptools.AppendEntryInput{
		Category: "content",
		Title:    "Draft chapter",
		Body:     "outline",
	}, &out)

	if out.Date != "11 ธันวาคม 2025" || out.Category != "content" || out.Timestamp != "14:30" || out.Fallback {
		t.Errorf("unexpected output %+v", out)
	}
	if out.Text != "*   **[14:30] 📝 Draft chapter**\n    *   outline" {
		t.Errorf("text = %q", out.Text)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Draft chapter") {
		t.Errorf("entry not written:\n%s", data)
	}
}

func TestMCPServer_AppendEntryFallback(t *testing.T) {
	session, _ := setup(t)
	var out mcptools.AppendEntryOutput
	call(t, session, "append_entry", mcptools.AppendEntryInput{Category: "bogus", Title: "Misc"}, &out)
	if out.Category != "other" || !out.Fallback {
		t.Errorf("unexpected output %+v", out)
	}
}

func TestMCPServer_AppendEntryRequiresTitle(t *testing.T) {
	session, path := setup(t)
	expectToolError(t, session, "append_entry", mcptools.AppendEntryInput{Category: "system", Title: " "})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no diary should be written")
	}
}

func TestMCPServer_ReadLatest(t *testing.T) {
	session, _ := setup(t)
	expectToolError(t, session, "read_latest", map[string]any{})

	call(t, session, "append_entry", mcptools.AppendEntryInput{Category: "system", Title: "Hook"}, nil)

	var out mcptools.ReadLatestOutput
	call(t, session, "read_latest", map[string]any{}, &out)
	if out.Date != "11 ธันวาคม 2025" || !strings.Contains(out.Text, "Hook") {
		t.Errorf("unexpected output %+v", out)
	}
}

func TestMCPServer_ReplaceSummary(t *testing.T) {
	session, path := setup(t)
	call(t, session, "append_entry", mcptools.AppendEntryInput{Category: "system", Title: "Hook"}, nil)

	var out mcptools.ReplaceSummaryOutput
	call(t, session, "replace_summary", mcptools.ReplaceSummaryInput{
		Answers: map[string]string{"learned": "fsnotify"},
	}, &out)
	if out.Date != "11 ธันวาคม 2025" || !strings.Contains(out.Summary, "fsnotify") {
		t.Errorf("unexpected output %+v", out)
	}

	call(t, session, "replace_summary", mcptools.ReplaceSummaryInput{Text: "verbatim text"}, &out)
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "verbatim text") || strings.Contains(string(data), "fsnotify") {
		t.Errorf("summary not replaced:\n%s", data)
	}

	expectToolError(t, session, "replace_summary", mcptools.ReplaceSummaryInput{})
}

func TestMCPServer_ListDatesAndReorder(t *testing.T) {
	session, path := setup(t)
	src := "## 📅 1 มกราคม 2026\n*   **[08:00] a**\n*   **[09:00] b**\n\n## 📅 2 มกราคม 2026\n*   **[10:00] c**\n"
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	var dates mcptools.ListDatesOutput
	call(t, session, "list_dates", mcptools.ListDatesInput{Limit: 1}, &dates)
	if len(dates.Dates) != 1 || dates.Dates[0].Date != "1 มกราคม 2026" || dates.Dates[0].Entries != 2 {
		t.Errorf("unexpected dates %+v", dates)
	}

	var dry mcptools.ReorderOutput
	call(t, session, "reorder_diary", mcptools.ReorderInput{DryRun: true}, &dry)
	if !dry.Changed || dry.Written {
		t.Errorf("unexpected dry run %+v", dry)
	}
	if data, _ := os.ReadFile(path); string(data) != src {
		t.Error("dry run must not write")
	}

	var out mcptools.ReorderOutput
	call(t, session, "reorder_diary", mcptools.ReorderInput{}, &out)
	if !out.Written || !out.SectionsMoved || len(out.Reversed) != 1 {
		t.Errorf("unexpected reorder %+v", out)
	}

	call(t, session, "list_dates", mcptools.ListDatesInput{}, &dates)
	if len(dates.Dates) != 2 || dates.Dates[0].Date != "2 มกราคม 2026" {
		t.Errorf("unexpected dates after reorder %+v", dates)
	}
}

func TestMCPServer_SuggestOutsideRepo(t *testing.T) {
	t.Setenv("GIT_CEILING_DIRECTORIES", os.TempDir())
	session, _ := setup(t)
	var out mcptools.SuggestOutput
	call(t, session, "suggest_entry", map[string]any{}, &out)
	if out.Line != "system|General maintenance|" {
		t.Errorf("line = %q", out.Line)
	}
}
