package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/aiperson/genai/llm"
)

func TestConfig_RequestOptions(t *testing.T) {
	testCases := []struct {
		description string
		defaults    *llm.Options
		request     *llm.GenerateRequest
		expected    *llm.Options
	}{
		{
			description: "package defaults when nothing set",
			request:     &llm.GenerateRequest{Prompt: "x"},
			expected:    llm.DefaultOptions(),
		},
		{
			description: "client defaults override package defaults",
			defaults:    &llm.Options{MaxTokens: 64, Device: llm.DeviceCPU},
			request:     &llm.GenerateRequest{Prompt: "x"},
			expected: &llm.Options{
				MaxTokens:   64,
				Temperature: llm.DefaultTemperature,
				TopP:        llm.DefaultTopP,
				TopK:        llm.DefaultTopK,
				Device:      llm.DeviceCPU,
			},
		},
		{
			description: "request options win",
			defaults:    &llm.Options{MaxTokens: 64},
			request:     &llm.GenerateRequest{Options: &llm.Options{MaxTokens: 8, TopK: 5, StopWords: []string{"\n"}}},
			expected: &llm.Options{
				MaxTokens:   8,
				Temperature: llm.DefaultTemperature,
				TopP:        llm.DefaultTopP,
				TopK:        5,
				StopWords:   []string{"\n"},
				Device:      llm.DeviceAuto,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			cfg := &Config{}
			WithDefaults(tc.defaults)(cfg)
			assert.EqualValues(t, tc.expected, cfg.RequestOptions(tc.request))
		})
	}
}
