package llm

import (
	"testing"

	"smartphones/config"
	"smartphones/models"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type lookupInput struct {
	Model string `json:"model" jsonschema:"required,description=Smartphone model name"`
}

func TestSchemaFor(t *testing.T) {
	schema := SchemaFor[lookupInput]()

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []string{"model"}, schema["required"])
	assert.NotNil(t, schema["properties"])
}

func TestNewModel(t *testing.T) {
	m, err := NewModel(&config.Config{LLMProvider: "openai", OpenAIModel: "gpt-4o-mini", OpenAIAPIKey: "sk-test"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIModel{}, m)

	m, err = NewModel(&config.Config{LLMProvider: "anthropic", AnthropicAPIKey: "test", AnthropicModel: "claude"})
	require.NoError(t, err)
	assert.IsType(t, &AnthropicModel{}, m)

	_, err = NewModel(&config.Config{LLMProvider: "mystery"})
	assert.ErrorContains(t, err, "unknown LLM provider")
}

func conversationWithToolRound() []models.Message {
	calls := []models.ToolCall{
		{ID: "call_1", Name: "SmartphoneInfo", Arguments: `{"model":"PhoneX"}`},
		{ID: "call_2", Name: "SmartphoneInfo", Arguments: `{"model":"PhoneY"}`},
	}
	return []models.Message{
		models.NewUserMessage("Compare PhoneX and PhoneY"),
		models.NewAssistantMessage("", calls...),
		models.NewToolResult(calls[0], "Model: PhoneX"),
		models.NewToolResult(calls[1], "Model: PhoneY"),
	}
}

func TestToMessageContent(t *testing.T) {
	content := toMessageContent("be helpful", conversationWithToolRound())

	require.Len(t, content, 5)
	assert.Equal(t, llms.ChatMessageTypeSystem, content[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, content[1].Role)

	assert.Equal(t, llms.ChatMessageTypeAI, content[2].Role)
	require.Len(t, content[2].Parts, 2)
	call, ok := content[2].Parts[0].(llms.ToolCall)
	require.True(t, ok)
	assert.Equal(t, "call_1", call.ID)
	assert.Equal(t, "SmartphoneInfo", call.FunctionCall.Name)

	for i, id := range []string{"call_1", "call_2"} {
		msg := content[3+i]
		assert.Equal(t, llms.ChatMessageTypeTool, msg.Role)
		require.Len(t, msg.Parts, 1)
		resp, ok := msg.Parts[0].(llms.ToolCallResponse)
		require.True(t, ok)
		assert.Equal(t, id, resp.ToolCallID)
	}
}

func TestToMessageContentWithoutSystem(t *testing.T) {
	content := toMessageContent("", []models.Message{models.NewUserMessage("hi")})
	require.Len(t, content, 1)
	assert.Equal(t, llms.ChatMessageTypeHuman, content[0].Role)
}

func TestToLLMTools(t *testing.T) {
	tools := toLLMTools([]ToolDefinition{{Name: "SmartphoneInfo", Description: "lookup", Parameters: SchemaFor[lookupInput]()}})

	require.Len(t, tools, 1)
	assert.Equal(t, "function", tools[0].Type)
	assert.Equal(t, "SmartphoneInfo", tools[0].Function.Name)
}

func TestToAnthropicMessagesMergesToolResults(t *testing.T) {
	msgs := toAnthropicMessages(conversationWithToolRound())

	require.Len(t, msgs, 3)
	assert.Equal(t, anthropic.MessageParamRoleUser, msgs[0].Role)
	assert.Equal(t, anthropic.MessageParamRoleAssistant, msgs[1].Role)
	require.Len(t, msgs[1].Content, 2)
	assert.Equal(t, "call_1", msgs[1].Content[0].OfToolUse.ID)

	assert.Equal(t, anthropic.MessageParamRoleUser, msgs[2].Role)
	require.Len(t, msgs[2].Content, 2)
	assert.Equal(t, "call_1", msgs[2].Content[0].OfToolResult.ToolUseID)
	assert.Equal(t, "call_2", msgs[2].Content[1].OfToolResult.ToolUseID)
}

func TestToAnthropicTools(t *testing.T) {
	specs := toAnthropicTools([]ToolDefinition{{Name: "SmartphoneInfo", Description: "lookup", Parameters: SchemaFor[lookupInput]()}})

	require.Len(t, specs, 1)
	assert.Equal(t, "SmartphoneInfo", specs[0].OfTool.Name)
	assert.NotNil(t, specs[0].OfTool.InputSchema.Properties)
	assert.Equal(t, []string{"model"}, specs[0].OfTool.InputSchema.Required)
	assert.Empty(t, toAnthropicTools(nil))
}
