package mcp

import (
	"context"
	"log/slog"

	"github.com/claude/liftplan/internal/engine"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, eng *engine.Engine, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("LiftPlan", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("LiftPlan training program server. Generate strength/hypertrophy programs, calculate starting weights and session-to-session progression, and query the exercise catalog and progression history. All data is scoped to the authenticated user."),
	)

	h := &handlers{ds: ds, eng: eng, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGenerateProgram, Handler: h.generateProgram},
		server.ServerTool{Tool: toolGetPrograms, Handler: h.getPrograms},
		server.ServerTool{Tool: toolGetProgram, Handler: h.getProgram},
		server.ServerTool{Tool: toolCalculateStartingWeights, Handler: h.calculateStartingWeights},
		server.ServerTool{Tool: toolCalculateProgression, Handler: h.calculateProgression},
		server.ServerTool{Tool: toolGetProgressionLog, Handler: h.getProgressionLog},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resCatalog, Handler: h.catalogResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	eng *engine.Engine
	log *slog.Logger
}

// --- Resource definitions ---

var resCatalog = mcp.NewResource(
	"liftplan://catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All exercises with muscle group, compound flag, equipment type, and goal-specific rep ranges"),
	mcp.WithMIMEType("application/json"),
)
