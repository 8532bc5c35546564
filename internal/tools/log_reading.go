package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jweingardt12/bbq-mcp/internal/engine"
	"github.com/jweingardt12/bbq-mcp/internal/readings"
)

// LogReadingTool handles the bbq_log_reading MCP tool — manual probe
// checks go into the same log device polls do.
type LogReadingTool struct {
	store *readings.Store
}

// NewLogReadingTool creates a LogReadingTool over the reading store.
func NewLogReadingTool(store *readings.Store) *LogReadingTool {
	return &LogReadingTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *LogReadingTool) Definition() mcp.Tool {
	return mcp.NewTool("bbq_log_reading",
		mcp.WithDescription(
			"Log a manual thermometer reading so trend and stall analysis can use it later. "+
				"Use a stable device_id per cook, e.g. 'manual-brisket'.",
		),
		mcp.WithString("device_id",
			mcp.Required(),
			mcp.Description("Identifier to log under (any stable name)."),
		),
		mcp.WithNumber("temp",
			mcp.Required(),
			mcp.Description("Internal temperature in °F."),
		),
		mcp.WithString("time",
			mcp.Description("When the reading was taken, RFC3339. Defaults to now."),
		),
	)
}

// Handle processes the bbq_log_reading tool call.
func (t *LogReadingTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceID := req.GetString("device_id", "")
	if deviceID == "" {
		return mcp.NewToolResultError("'device_id' is required"), nil
	}
	if _, ok := req.GetArguments()["temp"].(float64); !ok {
		return mcp.NewToolResultError("'temp' is required"), nil
	}
	temp := req.GetFloat("temp", 0)

	takenAt := time.Now()
	if raw := req.GetString("time", ""); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("'time' %q is not RFC3339", raw)), nil
		}
		takenAt = ts
	}

	if err := t.store.Log(deviceID, engine.Reading{TempF: temp, Time: takenAt}); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("logging reading: %v", err)), nil
	}

	sum, err := t.store.Summarize(deviceID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("summarizing %s: %v", deviceID, err)), nil
	}

	response := fmt.Sprintf("Logged %.1f°F for `%s` at %s.", temp, deviceID, takenAt.Format("3:04:05 PM"))
	if sum.Count >= 2 {
		response += fmt.Sprintf(
			"\n\n%d readings on record (%.1f-%.1f°F), overall trend %.1f°F/hr.",
			sum.Count, sum.MinF, sum.MaxF, sum.RatePerHour,
		)
	}

	return mcp.NewToolResultText(response), nil
}
