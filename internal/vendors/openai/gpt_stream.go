package openai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	"github.com/baalimago/gptc/internal/models"
)

var (
	dataPrefix = []byte("data: ")
	doneToken  = []byte("[DONE]")
)

// StreamCompletions of the chat, using model. Fragments of the answer are sent
// as strings on the returned channel, in the order they are received. The
// channel is closed when the server closes the stream or ctx is cancelled.
func (g *ChatGPT) StreamCompletions(ctx context.Context, model string, chat models.Chat) (chan models.CompletionEvent, error) {
	req, err := g.createRequest(ctx, model, chat)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	res, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		defer res.Body.Close()
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("unexpected status code: %v, body: %v", res.Status, string(body))
	}
	return g.handleStreamResponse(ctx, res), nil
}

func (g *ChatGPT) createRequest(ctx context.Context, model string, chat models.Chat) (*http.Request, error) {
	reqData := gptReq{
		Model:            model,
		Messages:         chat.Messages,
		Stream:           true,
		FrequencyPenalty: g.FrequencyPenalty,
		MaxTokens:        g.MaxTokens,
		PresencePenalty:  g.PresencePenalty,
		Temperature:      g.Temperature,
		TopP:             g.TopP,
	}
	if g.debug {
		ancli.PrintOK(fmt.Sprintf("openai request: %v\n", debug.IndentedJsonFmt(reqData)))
	}
	jsonData, err := json.Marshal(reqData)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.URL+chatPath, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %v", g.apiKey))
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Connection", "keep-alive")
	return req, nil
}

func (g *ChatGPT) handleStreamResponse(ctx context.Context, res *http.Response) chan models.CompletionEvent {
	outChan := make(chan models.CompletionEvent)
	go func() {
		br := bufio.NewReader(res.Body)
		defer func() {
			res.Body.Close()
			close(outChan)
		}()
		send := func(ev models.CompletionEvent) bool {
			select {
			case outChan <- ev:
				return true
			case <-ctx.Done():
				return false
			}
		}
		for {
			token, err := br.ReadBytes('\n')
			if len(token) > 0 {
				ev := g.handleStreamChunk(token)
				if !send(ev) {
					return
				}
				switch ev.(type) {
				case models.StopEvent, error:
					return
				}
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				send(fmt.Errorf("failed to read line: %w", err))
				return
			}
		}
	}()

	return outChan
}

func (g *ChatGPT) handleStreamChunk(token []byte) models.CompletionEvent {
	token = bytes.TrimSpace(token)
	if !bytes.HasPrefix(token, dataPrefix) {
		// Comments, event names and keep-alive newlines
		return models.NoopEvent{}
	}
	token = bytes.TrimSpace(bytes.TrimPrefix(token, dataPrefix))
	if bytes.Equal(token, doneToken) {
		return models.StopEvent{}
	}

	if g.debug {
		ancli.PrintOK(fmt.Sprintf("token: %+v\n", string(token)))
	}
	var chunk chatCompletionChunk
	err := json.Unmarshal(token, &chunk)
	if err != nil {
		if g.debug {
			// Expect some failing unmarshalls, which seems to be fine
			ancli.PrintWarn(fmt.Sprintf("failed to unmarshal token: %v, err: %v\n", string(token), err))
		}
		return models.NoopEvent{}
	}
	if chunk.Error != nil {
		return fmt.Errorf("stream error: %w", chunk.Error)
	}
	if len(chunk.Choices) == 0 {
		return models.NoopEvent{}
	}

	// Only one choice is ever requested
	content := chunk.Choices[0].Delta.Content
	if content == nil || *content == "" {
		return models.NoopEvent{}
	}
	return *content
}
