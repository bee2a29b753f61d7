package vendors

import (
	"context"

	"github.com/baalimago/gptc/internal/models"
)

// Mock is a ChatService that echoes the last user message back as the answer.
// It records the model of every completion and how often models were listed.
type Mock struct {
	Models     []string
	Err        error
	Streamed   []string
	ListCalled int
}

func (m *Mock) StreamCompletions(ctx context.Context, model string, chat models.Chat) (chan models.CompletionEvent, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Streamed = append(m.Streamed, model)
	ch := make(chan models.CompletionEvent, 2)
	go func() {
		uMsg, _, _ := chat.LastOfRole(models.RoleUser)
		defer close(ch)
		ch <- uMsg.Content
		ch <- models.StopEvent{}
	}()
	return ch, nil
}

func (m *Mock) ListModels(ctx context.Context) ([]string, error) {
	m.ListCalled++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Models, nil
}
