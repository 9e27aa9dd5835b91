package mcptools

import (
	"context"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/gitdiary/internal/changes"
	"github.com/chris-regnier/gitdiary/internal/journal"
	"github.com/chris-regnier/gitdiary/internal/summary"
)

// AppendEntryHandler returns the handler function for the append_entry MCP tool.
func AppendEntryHandler(d Deps) func(ctx context.Context, req *mcp.CallToolRequest, input AppendEntryInput) (*mcp.CallToolResult, AppendEntryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AppendEntryInput) (*mcp.CallToolResult, AppendEntryOutput, error) {
		res, err := d.Journal.Append(input.Category, input.Title, input.Body)
		if err != nil {
			return nil, AppendEntryOutput{}, err
		}
		return nil, AppendEntryOutput{
			Date:      res.Date,
			Category:  res.Category.String(),
			Timestamp: res.Entry.Timestamp(),
			Fallback:  res.Fallback,
			Text:      strings.Join(res.Entry.Lines(), "\n"),
		}, nil
	}
}

// ReplaceSummaryHandler returns the handler function for the replace_summary MCP tool.
func ReplaceSummaryHandler(d Deps) func(ctx context.Context, req *mcp.CallToolRequest, input ReplaceSummaryInput) (*mcp.CallToolResult, ReplaceSummaryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ReplaceSummaryInput) (*mcp.CallToolResult, ReplaceSummaryOutput, error) {
		text := input.Text
		if strings.TrimSpace(text) == "" {
			composed, err := summary.Compose(input.Answers)
			if err != nil {
				return nil, ReplaceSummaryOutput{}, err
			}
			text = composed
		}
		date, err := d.Journal.ReplaceSummary(text)
		if err != nil {
			return nil, ReplaceSummaryOutput{}, err
		}
		return nil, ReplaceSummaryOutput{Date: date, Summary: strings.Trim(text, "\n")}, nil
	}
}

// ReadLatestHandler returns the handler function for the read_latest MCP tool.
func ReadLatestHandler(d Deps) func(ctx context.Context, req *mcp.CallToolRequest, input ReadLatestInput) (*mcp.CallToolResult, ReadLatestOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ReadLatestInput) (*mcp.CallToolResult, ReadLatestOutput, error) {
		s, err := d.Journal.Latest()
		if err != nil {
			return nil, ReadLatestOutput{}, err
		}
		return nil, ReadLatestOutput{Date: s.Date, Text: s.Text()}, nil
	}
}

// ListDatesHandler returns the handler function for the list_dates MCP tool.
func ListDatesHandler(d Deps) func(ctx context.Context, req *mcp.CallToolRequest, input ListDatesInput) (*mcp.CallToolResult, ListDatesOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListDatesInput) (*mcp.CallToolResult, ListDatesOutput, error) {
		dates, err := d.Journal.Dates()
		if err != nil {
			return nil, ListDatesOutput{}, err
		}
		if input.Limit > 0 && len(dates) > input.Limit {
			dates = dates[:input.Limit]
		}
		if dates == nil {
			dates = []journal.DateInfo{}
		}
		return nil, ListDatesOutput{Dates: dates}, nil
	}
}

// ReorderHandler returns the handler function for the reorder_diary MCP tool.
func ReorderHandler(d Deps) func(ctx context.Context, req *mcp.CallToolRequest, input ReorderInput) (*mcp.CallToolResult, ReorderOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ReorderInput) (*mcp.CallToolResult, ReorderOutput, error) {
		if input.DryRun {
			_, res, err := d.Journal.Preview()
			if err != nil {
				return nil, ReorderOutput{}, err
			}
			return nil, reorderOutput(res.Changed(), res.SectionsMoved, res.Reversed, false), nil
		}
		res, err := d.Journal.Reorder()
		if err != nil {
			return nil, ReorderOutput{}, err
		}
		return nil, reorderOutput(res.Changed(), res.SectionsMoved, res.Reversed, res.Changed()), nil
	}
}

func reorderOutput(changed, moved bool, reversed []string, written bool) ReorderOutput {
	if reversed == nil {
		reversed = []string{}
	}
	return ReorderOutput{Changed: changed, SectionsMoved: moved, Reversed: reversed, Written: written}
}

// SuggestHandler returns the handler function for the suggest_entry MCP tool.
// Git failures degrade to the generic suggestion.
func SuggestHandler(d Deps) func(ctx context.Context, req *mcp.CallToolRequest, input SuggestInput) (*mcp.CallToolResult, SuggestOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SuggestInput) (*mcp.CallToolResult, SuggestOutput, error) {
		files, err := d.Git.ChangedFiles(ctx)
		if err != nil {
			d.logger().Warn("listing changes failed", slog.String("error", err.Error()))
		}
		s := changes.Suggest(files, d.ContentDir)
		if files == nil {
			files = []string{}
		}
		return nil, SuggestOutput{
			Category: s.Category.String(),
			Title:    s.Title,
			Body:     s.Body,
			Line:     s.Line(),
			Files:    files,
		}, nil
	}
}
