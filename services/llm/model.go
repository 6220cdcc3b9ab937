package llm

import (
	"context"
	"fmt"
	"strings"

	"smartphones/config"
	"smartphones/models"

	"github.com/invopop/jsonschema"
)

// ToolDefinition describes a tool the model may call. Parameters is a JSON
// Schema object.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// Model is a chat model that may answer with text or with tool calls.
// A nil or empty tools slice means the request is made without tool access.
type Model interface {
	Generate(ctx context.Context, system string, messages []models.Message, tools []ToolDefinition, opts ...CallOption) (models.Message, error)
}

type CallOptions struct {
	// DisableToolUse keeps the tool definitions on the request, so earlier
	// tool rounds stay valid, but forbids the model from calling them.
	DisableToolUse bool
}

type CallOption func(*CallOptions)

func WithoutToolUse() CallOption {
	return func(o *CallOptions) {
		o.DisableToolUse = true
	}
}

func applyCallOptions(opts []CallOption) CallOptions {
	var o CallOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func NewModel(cfg *config.Config) (Model, error) {
	switch strings.ToLower(cfg.LLMProvider) {
	case "openai":
		return NewOpenAIModel(cfg.OpenAIModel, cfg.OpenAIBaseURL, cfg.OpenAIAPIKey)
	case "anthropic":
		return NewAnthropicModel(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}

// SchemaFor reflects the JSON Schema of a tool input struct.
func SchemaFor[T any]() map[string]any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)

	required := schema.Required
	if required == nil {
		required = []string{}
	}

	return map[string]any{
		"type":       "object",
		"properties": schema.Properties,
		"required":   required,
	}
}
