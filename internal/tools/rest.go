package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jweingardt12/bbq-mcp/internal/engine"
)

// RestTool handles the bbq_calculate_rest_time MCP tool.
type RestTool struct {
	engine *engine.Engine
}

// NewRestTool creates a RestTool over the given engine.
func NewRestTool(e *engine.Engine) *RestTool {
	return &RestTool{engine: e}
}

// Definition returns the MCP tool definition for registration.
func (t *RestTool) Definition() mcp.Tool {
	return mcp.NewTool("bbq_calculate_rest_time",
		mcp.WithDescription(
			"Get rest instructions and the expected carryover rise after pulling food off the heat.",
		),
		mcp.WithString("protein",
			mcp.Required(),
			mcp.Description("Protein id, e.g. 'beef_prime_rib'."),
		),
		mcp.WithNumber("current_temp",
			mcp.Required(),
			mcp.Description("Internal temperature at pull, in °F."),
		),
		mcp.WithNumber("target_final_temp",
			mcp.Description("Desired final temperature in °F. Adds an undershoot/overshoot check."),
		),
	)
}

// Handle processes the bbq_calculate_rest_time tool call.
func (t *RestTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	protein := req.GetString("protein", "")
	if protein == "" {
		return mcp.NewToolResultError("'protein' is required"), nil
	}
	if _, ok := req.GetArguments()["current_temp"].(float64); !ok {
		return mcp.NewToolResultError("'current_temp' is required"), nil
	}
	current := req.GetFloat("current_temp", 0)

	got, err := t.engine.CalculateRestTime(protein, current, optionalFloat(req, "target_final_temp"))
	if err != nil {
		return toolError(err), nil
	}

	response := fmt.Sprintf(
		"# Rest & Carryover\n\n"+
			"**Recommended rest:** %d minutes\n"+
			"**Expected carryover:** +%.0f°F\n"+
			"**Expected final temperature:** %.0f°F\n\n"+
			"## Instructions\n\n%s",
		got.RestMinutes, got.CarryoverDegrees, got.ExpectedFinalTemp,
		bullets(got.Instructions),
	)

	return mcp.NewToolResultText(response), nil
}
