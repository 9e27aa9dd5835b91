package mcptools

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/gitdiary/internal/changes"
	"github.com/chris-regnier/gitdiary/internal/journal"
	"github.com/chris-regnier/gitdiary/internal/logging"
)

// Deps are the services the tools operate on.
type Deps struct {
	Journal    *journal.Journal
	Git        changes.Git
	ContentDir string
	Logger     *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return logging.Discard()
	}
	return d.Logger
}

// NewDiaryMCPServer creates an in-memory MCP server exposing diary tools.
// Returns the server and a client transport for connecting to it.
func NewDiaryMCPServer(d Deps) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(d, "dev")

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered diary tools.
func CreateMCPServer(d Deps, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "gitdiary",
		Version: version,
	}, nil)

	// Read tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_latest",
		Description: "Return the most recent date section of the diary verbatim",
	}, ReadLatestHandler(d))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_dates",
		Description: "List diary date sections with entry counts per category",
	}, ListDatesHandler(d))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "suggest_entry",
		Description: "Propose a category, title and body for an entry describing the uncommitted git changes",
	}, SuggestHandler(d))

	// Write tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "append_entry",
		Description: "Append a timestamped entry to today's operations log",
	}, AppendEntryHandler(d))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "replace_summary",
		Description: "Replace today's summary block, either verbatim or from retrospective answers",
	}, ReplaceSummaryHandler(d))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "reorder_diary",
		Description: "Rewrite the diary newest date first and newest entry first",
	}, ReorderHandler(d))

	return server
}
