package openai

import (
	"net/http"
	"os"
	"time"

	basecfg "github.com/viant/aiperson/genai/llm/provider/base"
)

const (
	openAIEndpoint = "https://api.openai.com/v1"
	defaultEnvKey  = "OPENAI_API_KEY"
)

// Client talks to an OpenAI-compatible text completions endpoint.
type Client struct {
	basecfg.Config
	APIKey string
}

// NewClient creates a new OpenAI client with the given API key and model.
// When apiKey is empty OPENAI_API_KEY is used.
func NewClient(apiKey, model string, options ...ClientOption) *Client {
	client := &Client{
		Config: basecfg.Config{
			BaseURL: openAIEndpoint,
			Model:   model,
			Timeout: 5 * time.Minute,
		},
		APIKey: apiKey,
	}
	for _, option := range options {
		option(client)
	}
	if client.HTTPClient == nil {
		client.HTTPClient = &http.Client{Timeout: client.Timeout}
	}
	if client.APIKey == "" {
		client.APIKey = os.Getenv(defaultEnvKey)
	}
	return client
}
