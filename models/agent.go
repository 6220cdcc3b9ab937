package models

type MessageKind string

const (
	KindUser      MessageKind = "user"
	KindAssistant MessageKind = "assistant"
	KindTool      MessageKind = "tool"
)

// Message is one entry in a conversation. Kind decides which fields are
// meaningful: ToolCalls only on assistant messages, ToolCallID and Name
// only on tool results.
type Message struct {
	Kind       MessageKind `json:"kind"`
	Content    string      `json:"content"`
	ToolCalls  []ToolCall  `json:"tool_calls,omitempty"`
	ToolCallID string      `json:"tool_call_id,omitempty"`
	Name       string      `json:"name,omitempty"`
}

// ToolCall is a tool invocation requested by the assistant. Arguments is
// the raw JSON object the model produced.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

func NewUserMessage(content string) Message {
	return Message{Kind: KindUser, Content: content}
}

func NewAssistantMessage(content string, toolCalls ...ToolCall) Message {
	return Message{Kind: KindAssistant, Content: content, ToolCalls: toolCalls}
}

func NewToolResult(call ToolCall, content string) Message {
	return Message{Kind: KindTool, Content: content, ToolCallID: call.ID, Name: call.Name}
}

func (m Message) HasToolCalls() bool {
	return m.Kind == KindAssistant && len(m.ToolCalls) > 0
}

type AgentRequest struct {
	Messages []Message `json:"messages"`
}

type AgentResponse struct {
	Messages []Message `json:"messages"`
	Reply    string    `json:"reply"`
}

type LookupResponse struct {
	Model  string `json:"model"`
	Result string `json:"result"`
}
