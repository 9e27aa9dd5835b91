package mcptools

import "github.com/chris-regnier/gitdiary/internal/journal"

// AppendEntryInput is the input schema for the append_entry MCP tool.
type AppendEntryInput struct {
	Category string `json:"category" jsonschema:"Entry category: content, system or other. Unknown names fall back to other"`
	Title    string `json:"title" jsonschema:"One-line entry title"`
	Body     string `json:"body,omitempty" jsonschema:"Optional detail lines, one bullet per line"`
}

// AppendEntryOutput is the output schema for the append_entry MCP tool.
type AppendEntryOutput struct {
	Date      string `json:"date"`
	Category  string `json:"category"`
	Timestamp string `json:"timestamp"`
	Fallback  bool   `json:"fallback"`
	Text      string `json:"text"`
}

// ReplaceSummaryInput is the input schema for the replace_summary MCP tool.
type ReplaceSummaryInput struct {
	Text    string            `json:"text,omitempty" jsonschema:"Summary text written verbatim. Takes precedence over answers"`
	Answers map[string]string `json:"answers,omitempty" jsonschema:"Retrospective answers keyed by accomplished, went_well, challenges, learned or tomorrow"`
}

// ReplaceSummaryOutput is the output schema for the replace_summary MCP tool.
type ReplaceSummaryOutput struct {
	Date    string `json:"date"`
	Summary string `json:"summary"`
}

// ReadLatestInput is the input schema for the read_latest MCP tool.
type ReadLatestInput struct{}

// ReadLatestOutput is the output schema for the read_latest MCP tool.
type ReadLatestOutput struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

// ListDatesInput is the input schema for the list_dates MCP tool.
type ListDatesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum number of dates to return, 0 for all"`
}

// ListDatesOutput is the output schema for the list_dates MCP tool.
type ListDatesOutput struct {
	Dates []journal.DateInfo `json:"dates"`
}

// ReorderInput is the input schema for the reorder_diary MCP tool.
type ReorderInput struct {
	DryRun bool `json:"dry_run,omitempty" jsonschema:"Report what would change without writing"`
}

// ReorderOutput is the output schema for the reorder_diary MCP tool.
type ReorderOutput struct {
	Changed       bool     `json:"changed"`
	SectionsMoved bool     `json:"sections_moved"`
	Reversed      []string `json:"reversed"`
	Written       bool     `json:"written"`
}

// SuggestInput is the input schema for the suggest_entry MCP tool.
type SuggestInput struct{}

// SuggestOutput is the output schema for the suggest_entry MCP tool.
type SuggestOutput struct {
	Category string   `json:"category"`
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Line     string   `json:"line"`
	Files    []string `json:"files"`
}
