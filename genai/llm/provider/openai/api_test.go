package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/aiperson/genai/llm"
)

func TestClient_Generate(t *testing.T) {
	testCases := []struct {
		description string
		status      int
		body        string
		expected    string
		expectError bool
	}{
		{
			description: "first choice returned",
			status:      http.StatusOK,
			body:        `{"model":"gpt","choices":[{"index":0,"text":" Hi there!\nUser: next"}],"usage":{"prompt_tokens":2,"completion_tokens":3,"total_tokens":5}}`,
			expected:    " Hi there!\nUser: next",
		},
		{
			description: "error envelope",
			status:      http.StatusOK,
			body:        `{"error":{"message":"bad model","type":"invalid_request_error"}}`,
			expectError: true,
		},
		{
			description: "unauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"error":{"message":"no key"}}`,
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			var received Request
			var auth string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/completions", r.URL.Path)
				auth = r.Header.Get("Authorization")
				_ = json.NewDecoder(r.Body).Decode(&received)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewClient("secret", "gpt", WithBaseURL(server.URL))
			resp, err := client.Generate(context.Background(), &llm.GenerateRequest{
				Prompt:  "Eve:",
				Options: &llm.Options{TopK: 10},
			})
			assert.Equal(t, "Bearer secret", auth)
			if tc.expectError {
				assert.True(t, errors.Is(err, llm.ErrInference))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, resp.Text)
			assert.Equal(t, 5, resp.Usage.TotalTokens)
			assert.Equal(t, "Eve:", received.Prompt)
			assert.Equal(t, llm.DefaultMaxTokens, received.MaxTokens)
			if assert.NotNil(t, received.Temperature) {
				assert.Equal(t, llm.DefaultTemperature, *received.Temperature)
			}
		})
	}
}

func TestClient_Load(t *testing.T) {
	testCases := []struct {
		description string
		model       string
		status      int
		body        string
		expectError bool
	}{
		{
			description: "listed model",
			model:       "davinci-002",
			status:      http.StatusOK,
			body:        `{"object":"list","data":[{"id":"gpt2"},{"id":"davinci-002"}]}`,
		},
		{
			description: "mistyped model",
			model:       "davinci-02",
			status:      http.StatusOK,
			body:        `{"object":"list","data":[{"id":"davinci-002"}]}`,
			expectError: true,
		},
		{
			description: "unauthorized",
			model:       "davinci-002",
			status:      http.StatusUnauthorized,
			body:        `{"error":{"message":"no key"}}`,
			expectError: true,
		},
		{
			description: "missing model",
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/models", r.URL.Path)
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewClient("secret", tc.model, WithBaseURL(server.URL))
			var loader llm.Loader = client
			err := loader.Load(context.Background())
			if tc.expectError {
				assert.True(t, errors.Is(err, llm.ErrModelLoad), "got %v", err)
				return
			}
			require.NoError(t, err)
		})
	}
}
