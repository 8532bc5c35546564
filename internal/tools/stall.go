package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jweingardt12/bbq-mcp/internal/engine"
	"github.com/jweingardt12/bbq-mcp/internal/readings"
)

// StallTool handles the bbq_detect_stall MCP tool.
type StallTool struct {
	engine *engine.Engine
	store  *readings.Store
}

// NewStallTool creates a StallTool.
func NewStallTool(e *engine.Engine, store *readings.Store) *StallTool {
	return &StallTool{engine: e, store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *StallTool) Definition() mcp.Tool {
	return mcp.NewTool("bbq_detect_stall",
		mcp.WithDescription(
			"Check whether a cook has hit the stall (the evaporative-cooling plateau typical of "+
				"brisket and pork butt) and get advice on riding it out or wrapping.",
		),
		mcp.WithString("protein",
			mcp.Required(),
			mcp.Description("Protein id, e.g. 'beef_brisket'."),
		),
		mcp.WithNumber("current_temp",
			mcp.Required(),
			mcp.Description("Current internal temperature in °F."),
		),
		mcp.WithString("readings",
			mcp.Description(`Recent readings as a JSON array, oldest first (at least 3 for confirmation): [{"temp":155,"time":"2026-07-04T11:00:00Z"}, ...]`),
		),
		mcp.WithString("device_id",
			mcp.Description("Pull recent readings from this logged device instead of supplying them inline."),
		),
	)
}

// Handle processes the bbq_detect_stall tool call.
func (t *StallTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	protein := req.GetString("protein", "")
	if protein == "" {
		return mcp.NewToolResultError("'protein' is required"), nil
	}
	if _, ok := req.GetArguments()["current_temp"].(float64); !ok {
		return mcp.NewToolResultError("'current_temp' is required"), nil
	}
	current := req.GetFloat("current_temp", 0)

	var rs []engine.Reading
	if raw := req.GetString("readings", ""); raw != "" {
		var err error
		if rs, err = parseReadings(raw); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	} else if deviceID := req.GetString("device_id", ""); deviceID != "" {
		if t.store == nil {
			return mcp.NewToolResultError("the reading log is unavailable; supply 'readings' inline instead"), nil
		}
		var err error
		if rs, err = t.store.Recent(deviceID, deviceHistoryWindow); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("loading readings for %s: %v", deviceID, err)), nil
		}
	}

	got, err := t.engine.DetectStall(protein, current, rs)
	if err != nil {
		return toolError(err), nil
	}

	status := "Not stalled"
	if got.IsStalled {
		status = fmt.Sprintf("STALLED for about %d minutes", got.DurationMins)
	}

	response := fmt.Sprintf(
		"# Stall Check\n\n"+
			"**Status:** %s\n"+
			"**In stall zone:** %v\n\n"+
			"%s\n",
		status, got.InStallZone, got.Recommendation,
	)

	return mcp.NewToolResultText(response), nil
}
