package llm

import (
	"context"
	"fmt"
	"log"

	"smartphones/models"

	"github.com/samber/lo"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAIModel talks to any OpenAI compatible chat completion endpoint.
type OpenAIModel struct {
	llm llms.Model
}

func NewOpenAIModel(model, baseURL, apiKey string) (*OpenAIModel, error) {
	opts := []openai.Option{
		openai.WithModel(model),
		openai.WithToken(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &OpenAIModel{llm: client}, nil
}

func (m *OpenAIModel) Generate(ctx context.Context, system string, messages []models.Message, tools []ToolDefinition, opts ...CallOption) (models.Message, error) {
	content := toMessageContent(system, messages)
	callOpts := applyCallOptions(opts)

	var llmOpts []llms.CallOption
	if len(tools) > 0 {
		llmOpts = append(llmOpts, llms.WithTools(toLLMTools(tools)))
		if callOpts.DisableToolUse {
			llmOpts = append(llmOpts, llms.WithToolChoice("none"))
		}
	}

	log.Printf("[INFO] Calling OpenAI with %d messages and %d tools", len(content), len(tools))
	resp, err := m.llm.GenerateContent(ctx, content, llmOpts...)
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Choices) == 0 {
		return models.Message{}, fmt.Errorf("no choices in model response")
	}

	choice := resp.Choices[0]
	var calls []models.ToolCall
	for _, tc := range choice.ToolCalls {
		if tc.FunctionCall == nil {
			continue
		}
		calls = append(calls, models.ToolCall{
			ID:        tc.ID,
			Name:      tc.FunctionCall.Name,
			Arguments: tc.FunctionCall.Arguments,
		})
	}

	log.Printf("[INFO] OpenAI responded with %d characters and %d tool calls", len(choice.Content), len(calls))
	return models.NewAssistantMessage(choice.Content, calls...), nil
}

func toLLMTools(tools []ToolDefinition) []llms.Tool {
	return lo.Map(tools, func(t ToolDefinition, _ int) llms.Tool {
		return llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	})
}

func toMessageContent(system string, messages []models.Message) []llms.MessageContent {
	var content []llms.MessageContent
	if system != "" {
		content = append(content, llms.TextParts(llms.ChatMessageTypeSystem, system))
	}

	for _, msg := range messages {
		switch msg.Kind {
		case models.KindUser:
			content = append(content, llms.TextParts(llms.ChatMessageTypeHuman, msg.Content))
		case models.KindAssistant:
			var parts []llms.ContentPart
			if msg.Content != "" {
				parts = append(parts, llms.TextContent{Text: msg.Content})
			}
			for _, call := range msg.ToolCalls {
				parts = append(parts, llms.ToolCall{
					ID:   call.ID,
					Type: "function",
					FunctionCall: &llms.FunctionCall{
						Name:      call.Name,
						Arguments: call.Arguments,
					},
				})
			}
			content = append(content, llms.MessageContent{Role: llms.ChatMessageTypeAI, Parts: parts})
		case models.KindTool:
			content = append(content, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{
					llms.ToolCallResponse{
						ToolCallID: msg.ToolCallID,
						Name:       msg.Name,
						Content:    msg.Content,
					},
				},
			})
		}
	}

	return content
}
