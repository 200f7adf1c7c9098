package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/liftlog/internal/catalog"
	"github.com/claude/liftlog/internal/history"
	"github.com/claude/liftlog/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolListSessions = mcp.NewTool("list_sessions",
	mcp.WithDescription("List stored workout sessions newest-first, optionally filtered by category. Each session includes its sets (exercise, weight, reps)."),
	mcp.WithString("type", mcp.Description("Filter by workout category"), mcp.Enum("Push", "Pull", "Legs")),
)

var toolGetLastWorkout = mcp.NewTool("get_last_workout",
	mcp.WithDescription("Get the most recent workout session of a category, with all its sets."),
	mcp.WithString("type", mcp.Required(), mcp.Description("Workout category"), mcp.Enum("Push", "Pull", "Legs")),
)

var toolGetBestSets = mcp.NewTool("get_best_sets",
	mcp.WithDescription("Get the best recorded set per exercise for a category (highest weight, then reps, then most recent), each with an estimated one-rep max."),
	mcp.WithString("type", mcp.Required(), mcp.Description("Workout category"), mcp.Enum("Push", "Pull", "Legs")),
)

var toolEstimateOneRepMax = mcp.NewTool("estimate_one_rep_max",
	mcp.WithDescription("Estimate a one-rep max from a weight and rep count using the Epley formula, rounded to the nearest integer."),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Load lifted, non-negative")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Repetitions performed, non-negative integer")),
)

// --- Tool handlers ---

func (h *handlers) listSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessions := h.book.Sessions()

	if raw := req.GetString("type", ""); raw != "" {
		wt, err := models.ParseWorkoutType(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		filtered := sessions[:0]
		for _, s := range sessions {
			if s.Type == wt {
				filtered = append(filtered, s)
			}
		}
		sessions = filtered
	}

	result, err := mcp.NewToolResultJSON(sessions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getLastWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("type")
	if err != nil {
		return mcp.NewToolResultError("type parameter is required"), nil
	}
	wt, err := models.ParseWorkoutType(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	last := h.book.LastWorkout(wt)
	if last == nil {
		return mcp.NewToolResultText("no " + raw + " session recorded yet"), nil
	}

	result, err := mcp.NewToolResultJSON(last)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getBestSets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("type")
	if err != nil {
		return mcp.NewToolResultError("type parameter is required"), nil
	}
	wt, err := models.ParseWorkoutType(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(h.book.BestSets(wt))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) estimateOneRepMax(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}
	reps, err := req.RequireInt("reps")
	if err != nil {
		return mcp.NewToolResultError("reps parameter is required"), nil
	}
	if weight < 0 || reps < 0 {
		return mcp.NewToolResultError("weight and reps must be non-negative"), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"weight":      weight,
		"reps":        reps,
		"one_rep_max": history.OneRepMax(weight, reps),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// --- Resource handlers ---

func (h *handlers) exerciseCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(catalog.All())
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
