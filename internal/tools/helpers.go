// Package tools implements the MCP tool handlers for BBQ guidance.
//
// Each tool is a struct holding its dependencies (engine, scheduler,
// device client, reading store) injected via constructor, with a
// Definition() returning the mcp.Tool schema and a Handle method
// compatible with mcp-go's CallToolRequest signature.
//
// Caller input problems come back as tool errors
// (mcp.NewToolResultError), never as Go errors — a bad protein id is
// the user's problem, not the server's.
package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jweingardt12/bbq-mcp/internal/engine"
)

// readingArg is the wire shape of one element of a readings argument.
type readingArg struct {
	Temp float64 `json:"temp"`
	Time string  `json:"time"`
}

// parseReadings decodes a JSON readings array. Timestamps are RFC3339.
// The array must be chronological, oldest first; the engine treats
// misordered data defensively, so ordering is not validated here.
func parseReadings(raw string) ([]engine.Reading, error) {
	var args []readingArg
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("readings must be a JSON array of {temp, time} objects: %w", err)
	}

	out := make([]engine.Reading, 0, len(args))
	for i, a := range args {
		ts, err := time.Parse(time.RFC3339, a.Time)
		if err != nil {
			return nil, fmt.Errorf("readings[%d].time %q is not RFC3339: %w", i, a.Time, err)
		}
		out = append(out, engine.Reading{TempF: a.Temp, Time: ts})
	}
	return out, nil
}

// optionalFloat extracts a float argument as a pointer: nil when the
// key is absent (JSON numbers arrive as float64).
func optionalFloat(req mcp.CallToolRequest, key string) *float64 {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return nil
	}
	return &v
}

// toolError renders an engine error as a tool result. Unknown-protein
// errors get a friendlier message; anything else passes through.
func toolError(err error) *mcp.CallToolResult {
	if errors.Is(err, engine.ErrUnknownProtein) {
		return mcp.NewToolResultError(
			err.Error() + ". Use bbq_list_proteins to see what's available.")
	}
	return mcp.NewToolResultError(err.Error())
}

// bullets renders strings as a markdown bullet list.
func bullets(items []string) string {
	var sb strings.Builder
	for _, it := range items {
		sb.WriteString("- ")
		sb.WriteString(it)
		sb.WriteString("\n")
	}
	return sb.String()
}
