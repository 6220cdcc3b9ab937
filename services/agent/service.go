package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"smartphones/models"
	"smartphones/services/llm"

	"github.com/samber/lo"
)

var exitCommands = []string{"exit", "quit", "bye", "end"}

// IsExitCommand reports whether input ends the conversation.
func IsExitCommand(input string) bool {
	return lo.Contains(exitCommands, strings.ToLower(strings.TrimSpace(input)))
}

type Service struct {
	model        llm.Model
	tools        map[string]AgentTool
	toolDefs     []llm.ToolDefinition
	userID       string
	conversation *Conversation
}

func NewService(model llm.Model, userID string, tools ...AgentTool) *Service {
	return &Service{
		model:        model,
		tools:        toolTable(tools),
		toolDefs:     toolDefinitions(tools),
		userID:       userID,
		conversation: NewConversation(),
	}
}

// Respond runs one user turn against the service's own conversation.
func (s *Service) Respond(ctx context.Context, input string) (string, error) {
	return s.runTurn(ctx, s.conversation, input)
}

func (s *Service) Conversation() []models.Message {
	return s.conversation.Messages()
}

// ProcessMessages runs a turn over a history supplied by the caller. The
// last message must be the new user message.
func (s *Service) ProcessMessages(ctx context.Context, history []models.Message) (*models.AgentResponse, error) {
	log.Printf("[INFO] Starting agent message processing with %d messages", len(history))

	if len(history) == 0 {
		return nil, fmt.Errorf("at least one message is required")
	}

	last := history[len(history)-1]
	if last.Kind != models.KindUser {
		return nil, fmt.Errorf("last message must be a user message, got %s", last.Kind)
	}

	conv, err := ConversationFrom(history[:len(history)-1])
	if err != nil {
		return nil, err
	}

	reply, err := s.runTurn(ctx, conv, last.Content)
	if err != nil {
		return nil, err
	}

	return &models.AgentResponse{Messages: conv.Messages(), Reply: reply}, nil
}

func (s *Service) runTurn(ctx context.Context, conv *Conversation, input string) (string, error) {
	if err := conv.Append(models.NewUserMessage(input)); err != nil {
		return "", err
	}

	response, err := s.model.Generate(ctx, SystemPrompt, conv.Messages(), s.toolDefs)
	if err != nil {
		return "", fmt.Errorf("failed to get assistant response: %w", err)
	}

	if err := conv.Append(response); err != nil {
		return "", err
	}

	if !response.HasToolCalls() {
		return response.Content, nil
	}

	log.Printf("[INFO] Assistant requested %d tool calls", len(response.ToolCalls))
	for _, call := range response.ToolCalls {
		result := s.executeTool(ctx, call)
		if err := conv.Append(models.NewToolResult(call, result)); err != nil {
			return "", err
		}
	}

	answer, err := s.model.Generate(ctx, AnswerPrompt, conv.Messages(), s.toolDefs, llm.WithoutToolUse())
	if err != nil {
		return "", fmt.Errorf("failed to get assistant answer: %w", err)
	}

	if answer.HasToolCalls() {
		log.Printf("[WARN] Ignoring %d tool calls in the answer", len(answer.ToolCalls))
		answer = models.NewAssistantMessage(answer.Content)
	}

	if err := conv.Append(answer); err != nil {
		return "", err
	}
	return answer.Content, nil
}

func (s *Service) executeTool(ctx context.Context, call models.ToolCall) string {
	log.Printf("[INFO] Executing tool: %s with arguments: %s", call.Name, call.Arguments)

	tool, ok := s.tools[call.Name]
	if !ok {
		log.Printf("[ERROR] Unknown tool requested: %s", call.Name)
		return fmt.Sprintf("Error: tool %s not found", call.Name)
	}

	result, err := tool.Call(ctx, call.Arguments)
	if err != nil {
		log.Printf("[ERROR] Tool execution failed: %v", err)
		return fmt.Sprintf("Error: %v", err)
	}

	return result
}

// Farewell asks the model, without tools or history, for a goodbye message.
func (s *Service) Farewell(ctx context.Context) (string, error) {
	prompt := fmt.Sprintf(GoodbyePrompt, s.userID)

	msg, err := s.model.Generate(ctx, "", []models.Message{models.NewUserMessage(prompt)}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate goodbye message: %w", err)
	}
	return msg.Content, nil
}
