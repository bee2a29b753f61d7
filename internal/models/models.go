package models

import (
	"context"
	"fmt"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultSystemPrompt is the first message of every new chat.
const DefaultSystemPrompt = "You are a helpful assistant."

// CompletionEvent is one item on a completion stream. It is either a string
// fragment, an error, a NoopEvent or a StopEvent.
type CompletionEvent any

// NoopEvent carries no content, for instance keep-alives or empty deltas.
type NoopEvent struct{}

// StopEvent signals that the remote side finished the completion.
type StopEvent struct{}

// ChatService is anything which can stream completions of a chat and list
// the models it is able to complete with.
type ChatService interface {
	// StreamCompletions of the chat using model. The returned channel is
	// closed once the stream ends.
	StreamCompletions(ctx context.Context, model string, chat Chat) (chan CompletionEvent, error)
	ListModels(ctx context.Context) ([]string, error)
}

type Chat struct {
	Messages []Message `json:"messages"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NewChat returns a chat holding only the system message.
func NewChat(systemPrompt string) Chat {
	return Chat{
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
		},
	}
}

// Append a message with role and content. The chat is only ever grown, never
// edited.
func (c *Chat) Append(role, content string) {
	c.Messages = append(c.Messages, Message{Role: role, Content: content})
}

// Copy returns a chat which doesn't share its backing array with c.
func (c Chat) Copy() Chat {
	cpy := make([]Message, len(c.Messages))
	copy(cpy, c.Messages)
	return Chat{Messages: cpy}
}

func (c *Chat) LastOfRole(role string) (Message, int, error) {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		msg := c.Messages[i]
		if msg.Role == role {
			return msg, i, nil
		}
	}
	return Message{}, -1, fmt.Errorf("failed to find any %v message", role)
}
