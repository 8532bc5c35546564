// Package resources implements MCP resource handlers for the knowledge base.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (bbq://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jweingardt12/bbq-mcp/internal/knowledge"
)

// Handler serves knowledge-base resource endpoints.
type Handler struct {
	kb *knowledge.Base
}

// NewHandler creates a resource Handler over the knowledge base.
func NewHandler(kb *knowledge.Base) *Handler {
	return &Handler{kb: kb}
}

// ProteinsResource returns the MCP resource definition for the protein catalog.
func (h *Handler) ProteinsResource() mcp.Resource {
	return mcp.NewResource(
		"bbq://knowledge/proteins",
		"Protein Profiles",
		mcp.WithResourceDescription("All protein profiles: doneness levels, stall zones, rest and carryover data"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleProteins returns every protein profile as JSON.
func (h *Handler) HandleProteins(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(h.kb.Profiles(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling proteins: %w", err)
	}
	return jsonResource(req.Params.URI, data), nil
}

// MethodsResource returns the MCP resource definition for the cook method catalog.
func (h *Handler) MethodsResource() mcp.Resource {
	return mcp.NewResource(
		"bbq://knowledge/methods",
		"Cook Methods",
		mcp.WithResourceDescription("All cook methods with their typical pit temperature ranges"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleMethods returns every cook method as JSON.
func (h *Handler) HandleMethods(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(h.kb.Methods(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling methods: %w", err)
	}
	return jsonResource(req.Params.URI, data), nil
}

func jsonResource(uri string, data []byte) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}
}
