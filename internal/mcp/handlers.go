// ABOUTME: MCP tool handler implementations for the movienight server
// ABOUTME: Decodes preference arguments and returns JSON tool results
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rasheed1306/movienight/internal/models"
)

// Handlers contains the handler functions for the movienight tools
type Handlers struct {
	recommender Recommender
}

// RecommendMovie handles the recommend_movie tool
func (h *Handlers) RecommendMovie(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	rawPrefs, ok := args["preferences"]
	if !ok {
		return mcp.NewToolResultError("preferences argument is required"), nil
	}

	// Re-encode the argument so the order-preserving decoder can run on it
	prefsJSON, err := json.Marshal(rawPrefs)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid preferences argument: %v", err)), nil
	}

	var prefs models.PreferenceRecord
	if err := json.Unmarshal(prefsJSON, &prefs); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid preferences argument: %v", err)), nil
	}
	if err := prefs.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	templateName := request.GetString("template_name", "")

	results, err := h.recommender.Recommend(ctx, prefs, templateName)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("recommendation failed: %v", err)), nil
	}
	if results == nil {
		results = []models.RankedResult{}
	}

	response := map[string]interface{}{
		"recommendations": results,
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ListTemplates handles the list_templates tool
func (h *Handlers) ListTemplates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	response := map[string]interface{}{
		"templates": h.recommender.TemplateNames(),
		"default":   h.recommender.DefaultTemplateName(),
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
