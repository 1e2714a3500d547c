package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/aiperson/genai/llm"
	"github.com/viant/aiperson/genai/llm/provider/ollama"
	"github.com/viant/aiperson/genai/llm/provider/openai"
)

func TestFactory_CreateModel(t *testing.T) {
	t.Setenv("TEST_COMPLETIONS_KEY", "k-123")
	testCases := []struct {
		description string
		options     *Options
		check       func(t *testing.T, model llm.Model)
		expectError bool
	}{
		{
			description: "ollama",
			options:     &Options{Provider: ProviderOllama, Model: "gpt2", URL: "http://ollama:11434"},
			check: func(t *testing.T, model llm.Model) {
				client, ok := model.(*ollama.Client)
				if assert.True(t, ok) {
					assert.Equal(t, "gpt2", client.Model)
					assert.Equal(t, "http://ollama:11434", client.BaseURL)
				}
			},
		},
		{
			description: "openai key from env",
			options:     &Options{Provider: ProviderOpenAI, Model: "davinci-002", EnvKey: "TEST_COMPLETIONS_KEY"},
			check: func(t *testing.T, model llm.Model) {
				client, ok := model.(*openai.Client)
				if assert.True(t, ok) {
					assert.Equal(t, "k-123", client.APIKey)
				}
			},
		},
		{description: "unsupported", options: &Options{Provider: "nope", Model: "x"}, expectError: true},
		{description: "missing model", options: &Options{Provider: ProviderOllama}, expectError: true},
		{description: "nil options", expectError: true},
	}

	factory := New()
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			model, err := factory.CreateModel(context.Background(), tc.options)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			tc.check(t, model)
		})
	}
}

func TestFactory_LoadModel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	factory := New()
	_, err := factory.LoadModel(context.Background(), &Options{Provider: ProviderOllama, Model: "missing", URL: server.URL})
	assert.True(t, errors.Is(err, llm.ErrModelLoad))

	_, err = factory.LoadModel(context.Background(), &Options{Provider: "nope", Model: "x"})
	assert.True(t, errors.Is(err, llm.ErrModelLoad))

	listing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":"davinci-002"}]}`))
	}))
	defer listing.Close()
	_, err = factory.LoadModel(context.Background(), &Options{Provider: ProviderOpenAI, Model: "davinci-02", URL: listing.URL})
	assert.True(t, errors.Is(err, llm.ErrModelLoad), "mistyped completions model is rejected")
	model, err := factory.LoadModel(context.Background(), &Options{Provider: ProviderOpenAI, Model: "davinci-002", URL: listing.URL})
	assert.NoError(t, err)
	assert.NotNil(t, model)
}
