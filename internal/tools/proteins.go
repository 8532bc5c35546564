package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jweingardt12/bbq-mcp/internal/knowledge"
)

// ProteinsTool handles the bbq_list_proteins MCP tool.
type ProteinsTool struct {
	kb *knowledge.Base
}

// NewProteinsTool creates a ProteinsTool over the knowledge base.
func NewProteinsTool(kb *knowledge.Base) *ProteinsTool {
	return &ProteinsTool{kb: kb}
}

// Definition returns the MCP tool definition for registration.
func (t *ProteinsTool) Definition() mcp.Tool {
	return mcp.NewTool("bbq_list_proteins",
		mcp.WithDescription(
			"List the proteins this server knows about, with their doneness levels, "+
				"recommended methods, and whether they stall.",
		),
		mcp.WithString("category",
			mcp.Description("Filter by category: beef, pork, poultry, lamb, fish, game."),
		),
	)
}

// Handle processes the bbq_list_proteins tool call.
func (t *ProteinsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := knowledge.Category(req.GetString("category", ""))

	var sb strings.Builder
	sb.WriteString("# Known Proteins\n\n")
	sb.WriteString("| ID | Name | Category | Default target | Methods | Stalls? |\n")
	sb.WriteString("|---|---|---|---|---|---|\n")

	count := 0
	for _, p := range t.kb.Profiles() {
		if category != "" && p.Category != category {
			continue
		}
		count++

		stall := "no"
		if p.StallRange != nil {
			stall = fmt.Sprintf("yes (%.0f-%.0f°F)", p.StallRange.StartF, p.StallRange.EndF)
		}
		d := p.Doneness[0]
		sb.WriteString(fmt.Sprintf("| `%s` | %s | %s | %s @ %.0f°F | %s | %s |\n",
			p.ID, p.Name, p.Category, d.Level, d.TempF,
			strings.Join(p.Methods, ", "), stall))
	}

	if count == 0 {
		return mcp.NewToolResultError(
			fmt.Sprintf("no proteins in category %q (valid categories: beef, pork, poultry, lamb, fish, game)", category)), nil
	}

	sb.WriteString("\nUse `bbq_get_temperature_targets` with an ID for full doneness options and tips.\n")

	return mcp.NewToolResultText(sb.String()), nil
}

// MethodsTool handles the bbq_list_methods MCP tool.
type MethodsTool struct {
	kb *knowledge.Base
}

// NewMethodsTool creates a MethodsTool over the knowledge base.
func NewMethodsTool(kb *knowledge.Base) *MethodsTool {
	return &MethodsTool{kb: kb}
}

// Definition returns the MCP tool definition for registration.
func (t *MethodsTool) Definition() mcp.Tool {
	return mcp.NewTool("bbq_list_methods",
		mcp.WithDescription("List the cook methods this server knows about, with their temperature ranges."),
	)
}

// Handle processes the bbq_list_methods tool call.
func (t *MethodsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	sb.WriteString("# Cook Methods\n\n")

	for _, m := range t.kb.Methods() {
		sb.WriteString(fmt.Sprintf("## %s (`%s`)\n\n%.0f-%.0f°F. %s\n\n",
			m.Name, m.ID, m.TempLowF, m.TempHighF, m.Description))
	}

	return mcp.NewToolResultText(sb.String()), nil
}
