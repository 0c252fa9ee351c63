// ABOUTME: MCP tool definitions and registration for the movienight server
// ABOUTME: Exposes recommend_movie and list_templates over stdio
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/rasheed1306/movienight/internal/models"
)

// Recommender is the core surface the MCP tools expose.
type Recommender interface {
	Recommend(ctx context.Context, prefs models.PreferenceRecord, templateName string) ([]models.RankedResult, error)
	TemplateNames() []string
	DefaultTemplateName() string
}

// RegisterTools registers the movienight tools with the server
func RegisterTools(server *mcpserver.MCPServer, recommender Recommender) *Handlers {
	handlers := &Handlers{recommender: recommender}

	server.AddTool(mcp.Tool{
		Name:        "recommend_movie",
		Description: "Recommend movies for a group. Takes each member's quiz answers, combines them into one semantic query, and returns the closest catalog matches with an explanation for the top pick.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"preferences": map[string]interface{}{
					"type":        "object",
					"description": "Mapping of member name to an object of question/answer pairs, e.g. {\"Ahmed\": {\"What's your mood for tonight?\": \"Light & uplifting\"}}",
				},
				"template_name": map[string]interface{}{
					"type":        "string",
					"description": "Optional explanation template name; unknown names fall back to the default",
				},
			},
			Required: []string{"preferences"},
		},
	}, handlers.RecommendMovie)

	server.AddTool(mcp.Tool{
		Name:        "list_templates",
		Description: "List the available explanation template names and the default.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListTemplates)

	return handlers
}
