// Package mcp exposes the workout history as read-only MCP tools, so an
// assistant can answer questions about recent sessions and personal bests.
package mcp

import (
	"log/slog"
	"net/http"

	"github.com/claude/liftlog/internal/logbook"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(book *logbook.Logbook, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("LiftLog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("LiftLog workout history server. Query saved workout sessions, the most recent session per category, and the best recorded set per exercise with estimated one-rep maxes. Categories are Push, Pull and Legs."),
	)

	h := &handlers{book: book, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolListSessions, Handler: h.listSessions},
		server.ServerTool{Tool: toolGetLastWorkout, Handler: h.getLastWorkout},
		server.ServerTool{Tool: toolGetBestSets, Handler: h.getBestSets},
		server.ServerTool{Tool: toolEstimateOneRepMax, Handler: h.estimateOneRepMax},
	)

	s.AddResources(
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
	)

	return s
}

// Handler returns the MCP server wrapped in its streamable HTTP transport,
// for mounting into the main router.
func Handler(s *server.MCPServer) http.Handler {
	return server.NewStreamableHTTPServer(s)
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	book *logbook.Logbook
	log  *slog.Logger
}

var resExerciseCatalog = mcp.NewResource(
	"liftlog://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All known exercises grouped by workout category; the first entry per category is the default for new sets"),
	mcp.WithMIMEType("application/json"),
)
