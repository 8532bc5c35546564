package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jweingardt12/bbq-mcp/internal/engine"
)

// ConvertTool handles the bbq_convert_temperature MCP tool.
type ConvertTool struct{}

// NewConvertTool creates a ConvertTool.
func NewConvertTool() *ConvertTool {
	return &ConvertTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *ConvertTool) Definition() mcp.Tool {
	return mcp.NewTool("bbq_convert_temperature",
		mcp.WithDescription(
			"Convert a temperature between Fahrenheit and Celsius.",
		),
		mcp.WithNumber("value",
			mcp.Required(),
			mcp.Description("Temperature value to convert."),
		),
		mcp.WithString("from_unit",
			mcp.Required(),
			mcp.Description("Source unit: 'F' or 'C'."),
			mcp.Enum("F", "C"),
		),
		mcp.WithString("to_unit",
			mcp.Required(),
			mcp.Description("Destination unit: 'F' or 'C'."),
			mcp.Enum("F", "C"),
		),
	)
}

// Handle processes the bbq_convert_temperature tool call.
func (t *ConvertTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, ok := req.GetArguments()["value"].(float64); !ok {
		return mcp.NewToolResultError("'value' is required"), nil
	}
	value := req.GetFloat("value", 0)
	from := req.GetString("from_unit", "")
	to := req.GetString("to_unit", "")

	got, err := engine.ConvertTemperature(value, from, to)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(
		fmt.Sprintf("%g°%s = %g°%s", value, from, got, to),
	), nil
}
