package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jweingardt12/bbq-mcp/internal/schedule"
)

// StartTimeTool handles the bbq_calculate_start_time MCP tool.
type StartTimeTool struct {
	calc *schedule.Calculator
}

// NewStartTimeTool creates a StartTimeTool over the given calculator.
func NewStartTimeTool(c *schedule.Calculator) *StartTimeTool {
	return &StartTimeTool{calc: c}
}

// Definition returns the MCP tool definition for registration.
func (t *StartTimeTool) Definition() mcp.Tool {
	return mcp.NewTool("bbq_calculate_start_time",
		mcp.WithDescription(
			"Work backward from a target serving time to when the cook should start, "+
				"including rest time and a safety buffer sized by estimate confidence.",
		),
		mcp.WithString("protein",
			mcp.Required(),
			mcp.Description("Protein id, e.g. 'beef_brisket'."),
		),
		mcp.WithNumber("weight_lbs",
			mcp.Required(),
			mcp.Description("Weight in pounds."),
		),
		mcp.WithString("serving_time",
			mcp.Required(),
			mcp.Description("Target serving time, RFC3339 (e.g. 2026-07-04T18:00:00-05:00)."),
		),
		mcp.WithString("method",
			mcp.Description("Cook method id. Defaults to the protein's recommended method."),
		),
		mcp.WithNumber("smoker_temp",
			mcp.Description("Actual pit temperature in °F."),
		),
	)
}

// Handle processes the bbq_calculate_start_time tool call.
func (t *StartTimeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	protein := req.GetString("protein", "")
	if protein == "" {
		return mcp.NewToolResultError("'protein' is required"), nil
	}
	weight := req.GetFloat("weight_lbs", 0)
	if weight <= 0 {
		return mcp.NewToolResultError("'weight_lbs' must be a positive number"), nil
	}
	servingRaw := req.GetString("serving_time", "")
	serving, err := time.Parse(time.RFC3339, servingRaw)
	if err != nil {
		return mcp.NewToolResultError(
			fmt.Sprintf("'serving_time' %q is not RFC3339 (try 2026-07-04T18:00:00-05:00)", servingRaw)), nil
	}

	method := req.GetString("method", "")
	if method == "" {
		if p, ok := t.calc.Engine().Base().Profile(protein); ok {
			method = p.DefaultMethod()
		}
	}

	plan, err := t.calc.StartTime(protein, weight, method, serving, optionalFloat(req, "smoker_temp"))
	if err != nil {
		return toolError(err), nil
	}

	const layout = "3:04 PM on Mon, Jan 2"
	response := fmt.Sprintf(
		"# Cook Schedule\n\n"+
			"**Start the cook at: %s**\n\n"+
			"| | |\n|---|---|\n"+
			"| Serving time | %s |\n"+
			"| Cook time | %s (%s confidence) |\n"+
			"| Rest | %d min |\n"+
			"| Safety buffer | %d min |\n",
		plan.StartTime.Format(layout),
		serving.Format(layout),
		plan.CookTime.Formatted, plan.CookTime.Confidence,
		plan.RestMinutes,
		plan.BufferMinutes,
	)

	if len(plan.CookTime.Warnings) > 0 {
		response += "\n## Warnings\n\n" + bullets(plan.CookTime.Warnings)
	}
	if len(plan.CookTime.Assumptions) > 0 {
		response += "\n## Assumptions\n\n" + bullets(plan.CookTime.Assumptions)
	}
	response += "\nIf the cook finishes early, a wrapped brisket or butt holds happily in a dry cooler until serving."

	return mcp.NewToolResultText(response), nil
}
