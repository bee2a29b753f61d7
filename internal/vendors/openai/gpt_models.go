package openai

import (
	"fmt"

	"github.com/baalimago/gptc/internal/models"
)

type chatCompletionChunk struct {
	ID                string    `json:"id"`
	Object            string    `json:"object"`
	Created           int       `json:"created"`
	Model             string    `json:"model"`
	SystemFingerprint string    `json:"system_fingerprint"`
	Choices           []Choice  `json:"choices"`
	Error             *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    any    `json:"code"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%v (type: %v)", e.Message, e.Type)
}

type Choice struct {
	Index        int    `json:"index"`
	Delta        Delta  `json:"delta"`
	Logprobs     any    `json:"logprobs"` // null or complex object
	FinishReason string `json:"finish_reason"`
}

type Delta struct {
	Content *string `json:"content"`
	Role    string  `json:"role"`
}

type gptReq struct {
	Model            string           `json:"model"`
	Messages         []models.Message `json:"messages"`
	Stream           bool             `json:"stream"`
	FrequencyPenalty *float64         `json:"frequency_penalty,omitempty"`
	MaxTokens        *int             `json:"max_tokens,omitempty"`
	PresencePenalty  *float64         `json:"presence_penalty,omitempty"`
	Temperature      *float64         `json:"temperature,omitempty"`
	TopP             *float64         `json:"top_p,omitempty"`
}

type modelList struct {
	Object string       `json:"object"`
	Data   []modelEntry `json:"data"`
}

type modelEntry struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}
