package ollama

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/aiperson/genai/llm"
)

func TestToRequest(t *testing.T) {
	zero := 0
	testCases := []struct {
		description string
		input       llm.GenerateRequest
		options     *llm.Options
		expected    *Request
	}{
		{
			description: "sampling options mapped",
			input:       llm.GenerateRequest{Prompt: "Be concise.\nUser: hi\nEve:"},
			options:     &llm.Options{Temperature: 0.7, TopP: 0.9, TopK: 50, MaxTokens: 500, Device: llm.DeviceAuto},
			expected: &Request{
				Model:  "test-model",
				Prompt: "Be concise.\nUser: hi\nEve:",
				Stream: true,
				Raw:    true,
				Options: &Options{
					Temperature: 0.7,
					TopP:        0.9,
					TopK:        50,
					NumPredict:  500,
				},
			},
		},
		{
			description: "cpu device disables gpu layers",
			input:       llm.GenerateRequest{Prompt: "x"},
			options:     &llm.Options{MaxTokens: 5, Device: llm.DeviceCPU, StopWords: []string{"\nUser:"}},
			expected: &Request{
				Model:  "test-model",
				Prompt: "x",
				Stream: true,
				Raw:    true,
				Options: &Options{
					NumPredict: 5,
					NumGPU:     &zero,
					Stop:       []string{"\nUser:"},
				},
			},
		},
		{
			description: "no options",
			input:       llm.GenerateRequest{Prompt: "Test"},
			expected: &Request{
				Model:  "test-model",
				Prompt: "Test",
				Stream: true,
				Raw:    true,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual := ToRequest(&tc.input, "test-model", tc.options)
			assert.EqualValues(t, tc.expected, actual)
		})
	}
}
