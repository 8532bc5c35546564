// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools/prompts/resources that depend on them.
// No business logic lives here, only wiring.
package server

import (
	"errors"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/jweingardt12/bbq-mcp/internal/engine"
	"github.com/jweingardt12/bbq-mcp/internal/knowledge"
	"github.com/jweingardt12/bbq-mcp/internal/prompts"
	"github.com/jweingardt12/bbq-mcp/internal/readings"
	"github.com/jweingardt12/bbq-mcp/internal/resources"
	"github.com/jweingardt12/bbq-mcp/internal/schedule"
	"github.com/jweingardt12/bbq-mcp/internal/thermoworks"
	"github.com/jweingardt12/bbq-mcp/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
//
// The returned cleanup function closes the reading log's database
// connection and must be called on shutdown (typically via defer).
// It is always non-nil and safe to call even if the log init failed.
func New() (*server.MCPServer, func(), error) {
	// Logs go to stderr: stdout is the MCP transport.
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// --- Create shared dependencies ---

	kb := knowledge.Builtin()
	eng := engine.New(kb)
	calc := schedule.NewCalculator(eng)

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"bbq-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Reading log (optional) ---
	//
	// The reading log is an independent subsystem: if it fails to
	// initialize, the planning and analysis tools keep working with
	// inline readings. We log a warning and carry a nil store.

	cleanup := noop
	store, storeErr := readings.New(readings.DefaultConfig())
	if storeErr != nil {
		log.Warn().Err(storeErr).Msg("reading log disabled")
		store = nil
	} else {
		cleanup = func() {
			if err := store.Close(); err != nil {
				log.Warn().Err(err).Msg("closing reading log")
			}
		}
	}

	// --- Register planning and analysis tools ---

	targetsTool := tools.NewTargetsTool(eng)
	s.AddTool(targetsTool.Definition(), targetsTool.Handle)

	estimateTool := tools.NewEstimateTool(eng)
	s.AddTool(estimateTool.Definition(), estimateTool.Handle)

	startTimeTool := tools.NewStartTimeTool(calc)
	s.AddTool(startTimeTool.Definition(), startTimeTool.Handle)

	analyzeTool := tools.NewAnalyzeTool(eng, store)
	s.AddTool(analyzeTool.Definition(), analyzeTool.Handle)

	stallTool := tools.NewStallTool(eng, store)
	s.AddTool(stallTool.Definition(), stallTool.Handle)

	restTool := tools.NewRestTool(eng)
	s.AddTool(restTool.Definition(), restTool.Handle)

	convertTool := tools.NewConvertTool()
	s.AddTool(convertTool.Definition(), convertTool.Handle)

	proteinsTool := tools.NewProteinsTool(kb)
	s.AddTool(proteinsTool.Definition(), proteinsTool.Handle)

	methodsTool := tools.NewMethodsTool(kb)
	s.AddTool(methodsTool.Definition(), methodsTool.Handle)

	if store != nil {
		logReadingTool := tools.NewLogReadingTool(store)
		s.AddTool(logReadingTool.Definition(), logReadingTool.Handle)
	}

	// --- Register ThermoWorks device tools (optional) ---
	//
	// Device tools only appear when credentials are configured. A missing
	// .env is normal: most users type temperatures in by hand.

	twCfg, twErr := thermoworks.LoadConfig()
	switch {
	case errors.Is(twErr, thermoworks.ErrNotConfigured):
		log.Debug().Msg("thermoworks credentials not configured, device tools disabled")
	case twErr != nil:
		log.Warn().Err(twErr).Msg("thermoworks config invalid, device tools disabled")
	default:
		client := thermoworks.NewClient(twCfg, log)

		devicesTool := tools.NewDevicesTool(client)
		s.AddTool(devicesTool.Definition(), devicesTool.Handle)

		deviceTempTool := tools.NewDeviceTemperatureTool(client, store)
		s.AddTool(deviceTempTool.Definition(), deviceTempTool.Handle)
	}

	// --- Register prompts ---

	planCookPrompt := prompts.NewPlanCookPrompt()
	s.AddPrompt(planCookPrompt.Definition(), planCookPrompt.Handle)

	stallHelpPrompt := prompts.NewStallHelpPrompt()
	s.AddPrompt(stallHelpPrompt.Definition(), stallHelpPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(kb)
	s.AddResource(resourceHandler.ProteinsResource(), resourceHandler.HandleProteins)
	s.AddResource(resourceHandler.MethodsResource(), resourceHandler.HandleMethods)

	return s, cleanup, nil
}

// noop is a no-op cleanup function used as the default when the
// reading log is disabled or hasn't been initialized.
func noop() {}

// serverInstructions returns the system instructions that tell the AI
// how to use the BBQ tools effectively.
func serverInstructions() string {
	return `You have access to bbq-mcp, a barbecue cooking guidance MCP server.

## WHEN TO USE THESE TOOLS

Use the bbq tools whenever the user:
- Asks what temperature to cook a protein to
- Asks how long a cook will take, or when to start one
- Reports a mid-cook temperature and wants to know how it's going
- Says their cook is "stuck" or "stopped climbing" (likely the stall)
- Asks about resting meat or carryover cooking

## IMPORTANT RULES

- Protein and method arguments are ids (beef_brisket, smoke_low_slow).
  If the user says "brisket", call bbq_list_proteins to find the id
  rather than guessing.
- All temperatures are Fahrenheit unless the tool says otherwise. Use
  bbq_convert_temperature when the user works in Celsius.
- Cook time estimates are planning guidance, not promises. Always relay
  the confidence level and any warnings to the user.
- Trend and stall analysis need timestamped readings. If the user has
  been reporting temperatures during the conversation, pass them as the
  readings argument with the times they were reported. If readings are
  being logged to a device (bbq_log_reading or a ThermoWorks probe),
  pass device_id instead.
- The meat is done at temperature and feel, never at the estimate.
  Remind users to verify with a probe.

## TYPICAL FLOWS

Planning a cook:
1. bbq_get_temperature_targets for the target and pull temperatures
2. bbq_estimate_cook_time with the weight
3. bbq_calculate_start_time with the serving time

Mid-cook check-in:
1. bbq_analyze_temperature with current temp and recent readings
2. If progress has flattened, bbq_detect_stall for plateau advice

Finishing:
1. bbq_calculate_rest_time when the meat comes off the heat`
}
