package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jweingardt12/bbq-mcp/internal/engine"
)

// TargetsTool handles the bbq_get_temperature_targets MCP tool.
type TargetsTool struct {
	engine *engine.Engine
}

// NewTargetsTool creates a TargetsTool over the given engine.
func NewTargetsTool(e *engine.Engine) *TargetsTool {
	return &TargetsTool{engine: e}
}

// Definition returns the MCP tool definition for registration.
func (t *TargetsTool) Definition() mcp.Tool {
	return mcp.NewTool("bbq_get_temperature_targets",
		mcp.WithDescription(
			"Get the target internal temperature and pull temperature for a protein. "+
				"The pull temperature accounts for carryover cooking during the rest.",
		),
		mcp.WithString("protein",
			mcp.Required(),
			mcp.Description("Protein id, e.g. 'beef_brisket' or 'pork_butt'. Use bbq_list_proteins to discover ids."),
		),
		mcp.WithString("doneness",
			mcp.Description("Doneness level, e.g. 'medium_rare' or 'tender'. Defaults to the protein's most common target."),
		),
	)
}

// Handle processes the bbq_get_temperature_targets tool call.
func (t *TargetsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	protein := req.GetString("protein", "")
	if protein == "" {
		return mcp.NewToolResultError("'protein' is required"), nil
	}
	doneness := req.GetString("doneness", "")

	got, err := t.engine.ResolveTarget(protein, doneness)
	if err != nil {
		return toolError(err), nil
	}

	p, _ := t.engine.Base().Profile(protein)

	response := fmt.Sprintf(
		"# Temperature Targets: %s\n\n"+
			"**Doneness:** %s\n"+
			"**Target temperature:** %.0f°F\n"+
			"**Pull temperature:** %.0f°F (carryover adds about %.0f°F during the rest)\n"+
			"**USDA safe minimum:** %.0f°F\n",
		p.Name, got.Doneness, got.TargetTemp, got.PullTemp, p.CarryoverDegrees, got.SafeTemp,
	)

	if len(p.Tips) > 0 {
		response += "\n## Tips\n\n" + bullets(p.Tips)
	}

	return mcp.NewToolResultText(response), nil
}
