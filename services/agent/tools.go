package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"smartphones/services/docindex"
	"smartphones/services/llm"

	"github.com/samber/lo"
)

// NotFoundMessage is returned by the catalog tool when no model matches.
const NotFoundMessage = "Could not find information for the specified model."

// AgentTool interface that all tools must implement. Call always produces
// text for the model; an error is only returned for failures the model
// cannot act on.
type AgentTool interface {
	Name() string
	Description() string
	Call(ctx context.Context, input string) (string, error)
	Parameters() map[string]any
}

type CatalogLookup interface {
	Lookup(ctx context.Context, model string) (*docindex.Document, error)
}

type SmartphoneInfoToolInput struct {
	Model string `json:"model" jsonschema:"required,description=The smartphone model to search for"`
}

type SmartphoneInfoTool struct {
	catalog CatalogLookup
}

func NewSmartphoneInfoTool(catalog CatalogLookup) SmartphoneInfoTool {
	return SmartphoneInfoTool{catalog: catalog}
}

func (t SmartphoneInfoTool) Name() string {
	return "SmartphoneInfo"
}

func (t SmartphoneInfoTool) Description() string {
	return "Retrieves information about a smartphone model from the product database: specifications, price, rating and availability."
}

func (t SmartphoneInfoTool) Parameters() map[string]any {
	return llm.SchemaFor[SmartphoneInfoToolInput]()
}

func (t SmartphoneInfoTool) Call(ctx context.Context, input string) (string, error) {
	var params SmartphoneInfoToolInput
	if err := json.Unmarshal([]byte(input), &params); err != nil {
		return fmt.Sprintf("Error: could not read the requested model from %q: %v", input, err), nil
	}

	model := strings.TrimSpace(params.Model)
	if model == "" {
		return NotFoundMessage, nil
	}

	doc, err := t.catalog.Lookup(ctx, model)
	if err != nil {
		log.Printf("[ERROR] Smartphone lookup failed for model %s: %v", model, err)
		return fmt.Sprintf("Error during smartphone information retrieval for model %s: %v", model, err), nil
	}

	if doc == nil {
		log.Printf("[INFO] No results found for model: %s", model)
		return NotFoundMessage, nil
	}

	return doc.Content, nil
}

func toolTable(tools []AgentTool) map[string]AgentTool {
	return lo.SliceToMap(tools, func(t AgentTool) (string, AgentTool) {
		return t.Name(), t
	})
}

func toolDefinitions(tools []AgentTool) []llm.ToolDefinition {
	return lo.Map(tools, func(t AgentTool, _ int) llm.ToolDefinition {
		return llm.ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		}
	})
}
