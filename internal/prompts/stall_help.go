package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// StallHelpPrompt handles the bbq-stall-help MCP prompt.
// It walks the AI through diagnosing a mid-cook plateau.
type StallHelpPrompt struct{}

// NewStallHelpPrompt creates a StallHelpPrompt.
func NewStallHelpPrompt() *StallHelpPrompt {
	return &StallHelpPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StallHelpPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("bbq-stall-help",
		mcp.WithPromptDescription(
			"My cook stopped climbing. Figure out whether it's the stall and what to do about it.",
		),
		mcp.WithArgument("protein",
			mcp.ArgumentDescription("What you're cooking, e.g. 'pork_butt'"),
		),
		mcp.WithArgument("current_temp",
			mcp.ArgumentDescription("Current internal temperature in °F"),
		),
	)
}

// Handle processes the bbq-stall-help prompt request.
func (p *StallHelpPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	protein := ""
	currentTemp := ""
	if args := req.Params.Arguments; args != nil {
		protein = args["protein"]
		currentTemp = args["current_temp"]
	}

	intro := "My cook has stopped climbing and I'm worried something is wrong."
	if protein != "" && currentTemp != "" {
		intro = fmt.Sprintf("My %s is stuck at %s°F and has stopped climbing.", protein, currentTemp)
	}

	return &mcp.GetPromptResult{
		Description: "Diagnose a temperature plateau",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(intro + "\n\n" +
					"Please:\n" +
					"1. Ask me for the protein and current temperature if I haven't given them\n" +
					"2. Ask for a few recent readings with timestamps (or a device_id if I'm logging readings)\n" +
					"3. Run `bbq_detect_stall` with those readings\n" +
					"4. Explain whether this is a normal stall, and whether I should wrap or ride it out\n" +
					"5. If I'm on a deadline, run `bbq_analyze_temperature` to re-estimate my finish time"),
			},
		},
	}, nil
}
