package openai

const (
	BaseURL      = "https://api.openai.com/v1"
	chatPath     = "/chat/completions"
	modelsPath   = "/models"
	DefaultModel = "gpt-3.5-turbo"
)
