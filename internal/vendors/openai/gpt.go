package openai

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/misc"
)

// GptDefault leaves every sampling parameter unset, letting the API decide.
// Setup fills them in from the environment.
var GptDefault = ChatGPT{
	URL: BaseURL,
}

// ChatGPT streams chat completions and lists models from the OpenAI API. It
// implements models.ChatService.
type ChatGPT struct {
	FrequencyPenalty *float64
	MaxTokens        *int
	PresencePenalty  *float64
	Temperature      *float64
	TopP             *float64
	URL              string

	client *http.Client
	apiKey string
	debug  bool
}

// New returns a ready to use ChatGPT, authenticated with apiKey.
func New(apiKey string) (*ChatGPT, error) {
	g := GptDefault
	if err := g.Setup(apiKey); err != nil {
		return nil, fmt.Errorf("failed to setup openai: %w", err)
	}
	return &g, nil
}

// Setup the client. OPENAI_BASE_URL overrides the URL, which is useful for
// proxies and API compatible servers. The sampling parameters are read from
// OPENAI_TEMPERATURE, OPENAI_TOP_P, OPENAI_MAX_TOKENS,
// OPENAI_FREQUENCY_PENALTY and OPENAI_PRESENCE_PENALTY, when set.
func (g *ChatGPT) Setup(apiKey string) error {
	g.apiKey = apiKey
	if g.client == nil {
		g.client = &http.Client{}
	}
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		g.URL = baseURL
	}
	if g.URL == "" {
		g.URL = BaseURL
	}
	g.URL = strings.TrimSuffix(g.URL, "/")
	if misc.Truthy(os.Getenv("DEBUG")) || misc.Truthy(os.Getenv("DEBUG_OPENAI")) {
		g.debug = true
	}

	floats := []struct {
		env  string
		dest **float64
	}{
		{"OPENAI_TEMPERATURE", &g.Temperature},
		{"OPENAI_TOP_P", &g.TopP},
		{"OPENAI_FREQUENCY_PENALTY", &g.FrequencyPenalty},
		{"OPENAI_PRESENCE_PENALTY", &g.PresencePenalty},
	}
	for _, f := range floats {
		v, err := envFloat(f.env)
		if err != nil {
			return err
		}
		if v != nil {
			*f.dest = v
		}
	}
	if raw := os.Getenv("OPENAI_MAX_TOKENS"); raw != "" {
		maxTokens, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("failed to parse OPENAI_MAX_TOKENS: %w", err)
		}
		g.MaxTokens = &maxTokens
	}
	return nil
}

func envFloat(env string) (*float64, error) {
	raw := os.Getenv(env)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %v: %w", env, err)
	}
	return &v, nil
}
