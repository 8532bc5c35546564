package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jweingardt12/bbq-mcp/internal/engine"
)

// EstimateTool handles the bbq_estimate_cook_time MCP tool.
type EstimateTool struct {
	engine *engine.Engine
}

// NewEstimateTool creates an EstimateTool over the given engine.
func NewEstimateTool(e *engine.Engine) *EstimateTool {
	return &EstimateTool{engine: e}
}

// Definition returns the MCP tool definition for registration.
func (t *EstimateTool) Definition() mcp.Tool {
	return mcp.NewTool("bbq_estimate_cook_time",
		mcp.WithDescription(
			"Estimate total cook time for a protein, weight, and cook method. "+
				"The estimate is 'from now': the projected done time assumes the cook starts immediately.",
		),
		mcp.WithString("protein",
			mcp.Required(),
			mcp.Description("Protein id, e.g. 'beef_brisket'."),
		),
		mcp.WithNumber("weight_lbs",
			mcp.Required(),
			mcp.Description("Weight in pounds."),
		),
		mcp.WithString("method",
			mcp.Description("Cook method id, e.g. 'smoke_low_slow'. Defaults to the protein's recommended method."),
		),
		mcp.WithNumber("smoker_temp",
			mcp.Description("Actual pit temperature in °F. Adjusts the estimate relative to the method's baseline."),
		),
	)
}

// Handle processes the bbq_estimate_cook_time tool call.
func (t *EstimateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	protein := req.GetString("protein", "")
	if protein == "" {
		return mcp.NewToolResultError("'protein' is required"), nil
	}
	weight := req.GetFloat("weight_lbs", 0)
	if weight <= 0 {
		return mcp.NewToolResultError("'weight_lbs' must be a positive number"), nil
	}

	method := req.GetString("method", "")
	if method == "" {
		if p, ok := t.engine.Base().Profile(protein); ok {
			method = p.DefaultMethod()
		}
	}

	got, err := t.engine.EstimateCookTime(protein, weight, method, optionalFloat(req, "smoker_temp"))
	if err != nil {
		return toolError(err), nil
	}

	response := fmt.Sprintf(
		"# Cook Time Estimate\n\n"+
			"**Protein:** %s (%.1f lbs, %s)\n"+
			"**Estimated cook time:** %s\n"+
			"**Projected done time:** %s\n"+
			"**Confidence:** %s\n",
		protein, weight, method,
		got.Formatted,
		got.EstimatedDoneTime.Format(time.Kitchen+" on Mon Jan 2"),
		got.Confidence,
	)

	if len(got.Warnings) > 0 {
		response += "\n## Warnings\n\n" + bullets(got.Warnings)
	}
	if len(got.Assumptions) > 0 {
		response += "\n## Assumptions\n\n" + bullets(got.Assumptions)
	}

	return mcp.NewToolResultText(response), nil
}
