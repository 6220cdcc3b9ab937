package agent

import (
	"fmt"

	"smartphones/models"
)

// Conversation is the append-only message log of one chat. It enforces
// that every tool call of an assistant message is answered by a tool
// result before the next user message.
type Conversation struct {
	messages []models.Message
	pending  []string
}

func NewConversation() *Conversation {
	return &Conversation{}
}

// ConversationFrom replays history through Append so the same ordering
// rules apply to conversations received from clients.
func ConversationFrom(history []models.Message) (*Conversation, error) {
	c := NewConversation()
	for i, msg := range history {
		if err := c.Append(msg); err != nil {
			return nil, fmt.Errorf("invalid message %d: %w", i, err)
		}
	}
	return c, nil
}

func (c *Conversation) Append(msg models.Message) error {
	switch msg.Kind {
	case models.KindUser, models.KindAssistant:
		if len(c.pending) > 0 {
			return fmt.Errorf("%s message while %d tool calls are unanswered", msg.Kind, len(c.pending))
		}
		if msg.Kind == models.KindAssistant {
			for _, call := range msg.ToolCalls {
				c.pending = append(c.pending, call.ID)
			}
		}
	case models.KindTool:
		if len(c.pending) == 0 {
			return fmt.Errorf("tool result %q without a pending tool call", msg.ToolCallID)
		}
		if c.pending[0] != msg.ToolCallID {
			return fmt.Errorf("tool result %q does not answer pending call %q", msg.ToolCallID, c.pending[0])
		}
		c.pending = c.pending[1:]
	default:
		return fmt.Errorf("unknown message kind %q", msg.Kind)
	}

	c.messages = append(c.messages, msg)
	return nil
}

// Messages returns a copy of the log.
func (c *Conversation) Messages() []models.Message {
	out := make([]models.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) Len() int {
	return len(c.messages)
}

func (c *Conversation) Pending() int {
	return len(c.pending)
}
