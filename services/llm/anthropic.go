package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"smartphones/models"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicModel struct {
	client *anthropic.Client
	model  string
}

func NewAnthropicModel(apiKey, model string, opts ...option.RequestOption) *AnthropicModel {
	client := anthropic.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
	return &AnthropicModel{client: &client, model: model}
}

func (m *AnthropicModel) Generate(ctx context.Context, system string, messages []models.Message, tools []ToolDefinition, opts ...CallOption) (models.Message, error) {
	callOpts := applyCallOptions(opts)
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(m.model),
		MaxTokens: 4096,
		Messages:  toAnthropicMessages(messages),
		Tools:     toAnthropicTools(tools),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}
	if callOpts.DisableToolUse && len(tools) > 0 {
		params.ToolChoice = anthropic.ToolChoiceUnionParam{OfNone: &anthropic.ToolChoiceNoneParam{}}
	}

	log.Printf("[INFO] Calling Anthropic with %d messages and %d tools", len(params.Messages), len(tools))
	response, err := m.client.Messages.New(ctx, params)
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to call Anthropic API: %w", err)
	}

	var text strings.Builder
	var calls []models.ToolCall
	for _, block := range response.Content {
		switch block := block.AsAny().(type) {
		case anthropic.TextBlock:
			text.WriteString(block.Text)
		case anthropic.ToolUseBlock:
			inputJSON, err := json.Marshal(block.Input)
			if err != nil {
				return models.Message{}, fmt.Errorf("failed to marshal tool input: %w", err)
			}
			calls = append(calls, models.ToolCall{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: string(inputJSON),
			})
		}
	}

	log.Printf("[INFO] Anthropic responded (stop reason %s) with %d tool calls", response.StopReason, len(calls))
	return models.NewAssistantMessage(text.String(), calls...), nil
}

func toAnthropicTools(tools []ToolDefinition) []anthropic.ToolUnionParam {
	var specs []anthropic.ToolUnionParam
	for _, tool := range tools {
		required, _ := tool.Parameters["required"].([]string)
		specs = append(specs, anthropic.ToolUnionParam{
			OfTool: &anthropic.ToolParam{
				Name:        tool.Name,
				Description: anthropic.String(tool.Description),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: tool.Parameters["properties"],
					Required:   required,
				},
			},
		})
	}
	return specs
}

// toAnthropicMessages converts the log into Anthropic turns. Tool results
// that follow the same assistant turn are merged into one user turn of
// tool_result blocks, which is what the API expects.
func toAnthropicMessages(messages []models.Message) []anthropic.MessageParam {
	var out []anthropic.MessageParam
	var pending []anthropic.ContentBlockParamUnion

	flush := func() {
		if len(pending) > 0 {
			out = append(out, anthropic.NewUserMessage(pending...))
			pending = nil
		}
	}

	for _, msg := range messages {
		switch msg.Kind {
		case models.KindUser:
			flush()
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		case models.KindAssistant:
			flush()
			var blocks []anthropic.ContentBlockParamUnion
			if msg.Content != "" {
				blocks = append(blocks, anthropic.NewTextBlock(msg.Content))
			}
			for _, call := range msg.ToolCalls {
				args := call.Arguments
				if strings.TrimSpace(args) == "" {
					args = "{}"
				}
				blocks = append(blocks, anthropic.ContentBlockParamUnion{
					OfToolUse: &anthropic.ToolUseBlockParam{
						ID:    call.ID,
						Name:  call.Name,
						Input: json.RawMessage(args),
					},
				})
			}
			out = append(out, anthropic.NewAssistantMessage(blocks...))
		case models.KindTool:
			pending = append(pending, anthropic.ContentBlockParamUnion{
				OfToolResult: &anthropic.ToolResultBlockParam{
					ToolUseID: msg.ToolCallID,
					Content: []anthropic.ToolResultBlockParamContentUnion{
						{OfText: &anthropic.TextBlockParam{Text: msg.Content}},
					},
				},
			})
		}
	}
	flush()

	return out
}
