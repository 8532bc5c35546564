// Package prompts implements MCP prompt handlers for cook planning.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// PlanCookPrompt handles the bbq-plan-cook MCP prompt.
// It guides the AI through a full cook plan: targets, estimate, schedule.
type PlanCookPrompt struct{}

// NewPlanCookPrompt creates a PlanCookPrompt.
func NewPlanCookPrompt() *PlanCookPrompt {
	return &PlanCookPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *PlanCookPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("bbq-plan-cook",
		mcp.WithPromptDescription(
			"Plan a barbecue cook end to end: temperature targets, cook time estimate, "+
				"and when to light the smoker to hit a serving time.",
		),
		mcp.WithArgument("protein",
			mcp.ArgumentDescription("What you're cooking, e.g. 'beef_brisket' or just 'brisket'"),
		),
		mcp.WithArgument("weight_lbs",
			mcp.ArgumentDescription("Weight in pounds"),
		),
		mcp.WithArgument("serving_time",
			mcp.ArgumentDescription("When you want to serve, e.g. '2026-07-04T18:00:00-05:00'"),
		),
	)
}

// Handle processes the bbq-plan-cook prompt request.
func (p *PlanCookPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	protein := "beef_brisket"
	weight := "12"
	serving := ""
	if args := req.Params.Arguments; args != nil {
		if v, ok := args["protein"]; ok && v != "" {
			protein = v
		}
		if v, ok := args["weight_lbs"]; ok && v != "" {
			weight = v
		}
		if v, ok := args["serving_time"]; ok && v != "" {
			serving = v
		}
	}

	scheduleStep := "4. Ask me when I want to serve, then run `bbq_calculate_start_time` with that time"
	if serving != "" {
		scheduleStep = fmt.Sprintf("4. Run `bbq_calculate_start_time` with serving_time='%s'", serving)
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Plan a cook: %s lbs of %s", weight, protein),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Help me plan a cook for %s lbs of %s.\n\n"+
						"Please:\n"+
						"1. If '%s' isn't an exact protein id, run `bbq_list_proteins` and pick the closest match\n"+
						"2. Run `bbq_get_temperature_targets` so I know the target and pull temperatures\n"+
						"3. Run `bbq_estimate_cook_time` with the weight\n"+
						"%s\n"+
						"5. Summarize the plan: light time, pull temperature, rest, and serving time",
					weight, protein, protein, scheduleStep,
				)),
			},
		},
	}, nil
}
