package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jweingardt12/bbq-mcp/internal/readings"
	"github.com/jweingardt12/bbq-mcp/internal/thermoworks"
)

// DevicesTool handles the bbq_get_devices MCP tool. It is only
// registered when ThermoWorks credentials are configured.
type DevicesTool struct {
	client *thermoworks.Client
}

// NewDevicesTool creates a DevicesTool over the cloud client.
func NewDevicesTool(client *thermoworks.Client) *DevicesTool {
	return &DevicesTool{client: client}
}

// Definition returns the MCP tool definition for registration.
func (t *DevicesTool) Definition() mcp.Tool {
	return mcp.NewTool("bbq_get_devices",
		mcp.WithDescription(
			"List the ThermoWorks thermometers registered to the configured account.",
		),
	)
}

// Handle processes the bbq_get_devices tool call.
func (t *DevicesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	devices, err := t.client.Devices(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing devices: %v", err)), nil
	}
	if len(devices) == 0 {
		return mcp.NewToolResultText("No thermometers registered to this account."), nil
	}

	var sb strings.Builder
	sb.WriteString("# Thermometers\n\n| ID | Name | Probes | Online |\n|---|---|---|---|\n")
	for _, d := range devices {
		online := "no"
		if d.Online {
			online = "yes"
		}
		sb.WriteString(fmt.Sprintf("| `%s` | %s | %d | %s |\n", d.ID, d.Name, d.ProbeCount, online))
	}
	sb.WriteString("\nUse `bbq_get_device_temperature` with a device ID to read a probe.\n")

	return mcp.NewToolResultText(sb.String()), nil
}

// DeviceTemperatureTool handles the bbq_get_device_temperature MCP
// tool. Every fetched reading is also appended to the reading log so
// later trend analysis has history to work with.
type DeviceTemperatureTool struct {
	client *thermoworks.Client
	store  *readings.Store
}

// NewDeviceTemperatureTool creates a DeviceTemperatureTool. store may
// be nil; readings are then returned but not logged.
func NewDeviceTemperatureTool(client *thermoworks.Client, store *readings.Store) *DeviceTemperatureTool {
	return &DeviceTemperatureTool{client: client, store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *DeviceTemperatureTool) Definition() mcp.Tool {
	return mcp.NewTool("bbq_get_device_temperature",
		mcp.WithDescription(
			"Read the current temperature from a ThermoWorks probe and log it for trend analysis.",
		),
		mcp.WithString("device_id",
			mcp.Required(),
			mcp.Description("Device ID from bbq_get_devices."),
		),
		mcp.WithNumber("probe",
			mcp.Description("Probe number (default 1)."),
		),
	)
}

// Handle processes the bbq_get_device_temperature tool call.
func (t *DeviceTemperatureTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceID := req.GetString("device_id", "")
	if deviceID == "" {
		return mcp.NewToolResultError("'device_id' is required"), nil
	}
	probe := int(req.GetFloat("probe", 1))

	r, err := t.client.LatestReading(ctx, deviceID, probe)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("reading probe: %v", err)), nil
	}

	logged := ""
	if t.store != nil {
		if logErr := t.store.Log(deviceID, r); logErr != nil {
			logged = fmt.Sprintf("\n(Note: the reading could not be logged: %v)", logErr)
		} else {
			logged = "\nLogged — analysis tools can now use this device's history via `device_id`."
		}
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"**%s probe %d:** %.1f°F at %s%s",
		deviceID, probe, r.TempF, r.Time.Format("3:04:05 PM"), logged,
	)), nil
}
