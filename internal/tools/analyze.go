package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jweingardt12/bbq-mcp/internal/engine"
	"github.com/jweingardt12/bbq-mcp/internal/readings"
)

// deviceHistoryWindow is how many logged readings a device-backed
// analysis pulls from the store.
const deviceHistoryWindow = 12

// AnalyzeTool handles the bbq_analyze_temperature MCP tool.
//
// Readings can come inline (a JSON array argument) or from the reading
// log by device id. The store may be nil — device sourcing is then
// unavailable, inline analysis still works.
type AnalyzeTool struct {
	engine *engine.Engine
	store  *readings.Store
}

// NewAnalyzeTool creates an AnalyzeTool.
func NewAnalyzeTool(e *engine.Engine, store *readings.Store) *AnalyzeTool {
	return &AnalyzeTool{engine: e, store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *AnalyzeTool) Definition() mcp.Tool {
	return mcp.NewTool("bbq_analyze_temperature",
		mcp.WithDescription(
			"Analyze cook progress: percent complete, temperature trend, stall-zone status, "+
				"time remaining, and recommendations. Supply recent readings for trend analysis.",
		),
		mcp.WithNumber("current_temp",
			mcp.Required(),
			mcp.Description("Current internal temperature in °F."),
		),
		mcp.WithNumber("target_temp",
			mcp.Required(),
			mcp.Description("Target internal temperature in °F."),
		),
		mcp.WithString("protein",
			mcp.Required(),
			mcp.Description("Protein id, e.g. 'beef_brisket'."),
		),
		mcp.WithString("method",
			mcp.Description("Cook method id (informs recommendations, e.g. fuel advice for smokers)."),
		),
		mcp.WithString("readings",
			mcp.Description(`Recent readings as a JSON array, oldest first: [{"temp":145,"time":"2026-07-04T11:00:00Z"}, ...]`),
		),
		mcp.WithString("device_id",
			mcp.Description("Pull recent readings from this logged device instead of supplying them inline."),
		),
	)
}

// Handle processes the bbq_analyze_temperature tool call.
func (t *AnalyzeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	protein := req.GetString("protein", "")
	if protein == "" {
		return mcp.NewToolResultError("'protein' is required"), nil
	}
	args := req.GetArguments()
	if _, ok := args["current_temp"].(float64); !ok {
		return mcp.NewToolResultError("'current_temp' is required"), nil
	}
	if _, ok := args["target_temp"].(float64); !ok {
		return mcp.NewToolResultError("'target_temp' is required"), nil
	}
	current := req.GetFloat("current_temp", 0)
	target := req.GetFloat("target_temp", 0)
	method := req.GetString("method", "")

	rs, errResult := t.sourceReadings(req)
	if errResult != nil {
		return errResult, nil
	}

	got, err := t.engine.AnalyzeTemperature(current, target, protein, method, rs)
	if err != nil {
		return toolError(err), nil
	}

	response := fmt.Sprintf(
		"# Temperature Analysis\n\n"+
			"**Current:** %.1f°F → **Target:** %.1f°F (%.1f°F to go)\n"+
			"**Progress:** %.1f%%\n"+
			"**Trend:** %s",
		got.CurrentTemp, got.TargetTemp, got.TempDelta,
		got.PercentComplete,
		got.Trend,
	)
	if len(rs) >= 2 {
		response += fmt.Sprintf(" (%.1f°F/hr)", got.RatePerHour)
	}
	response += "\n"

	if got.InStallZone {
		response += "**In the stall zone.**\n"
	}
	if got.EstimatedMinutesRemaining != nil {
		response += fmt.Sprintf("**Estimated time remaining:** about %d minutes\n", *got.EstimatedMinutesRemaining)
	} else if got.Trend == engine.TrendStalled {
		response += "**Estimated time remaining:** unknown while stalled\n"
	}

	if len(got.Recommendations) > 0 {
		response += "\n## Recommendations\n\n" + bullets(got.Recommendations)
	}

	return mcp.NewToolResultText(response), nil
}

// sourceReadings resolves the readings argument: inline JSON wins,
// then the device log, then none.
func (t *AnalyzeTool) sourceReadings(req mcp.CallToolRequest) ([]engine.Reading, *mcp.CallToolResult) {
	if raw := req.GetString("readings", ""); raw != "" {
		rs, err := parseReadings(raw)
		if err != nil {
			return nil, mcp.NewToolResultError(err.Error())
		}
		return rs, nil
	}

	deviceID := req.GetString("device_id", "")
	if deviceID == "" {
		return nil, nil
	}
	if t.store == nil {
		return nil, mcp.NewToolResultError("the reading log is unavailable; supply 'readings' inline instead")
	}
	rs, err := t.store.Recent(deviceID, deviceHistoryWindow)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("loading readings for %s: %v", deviceID, err))
	}
	return rs, nil
}
