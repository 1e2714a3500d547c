package ollama

import (
	"github.com/viant/aiperson/genai/llm"
)

// ToRequest converts an llm.GenerateRequest to a raw Ollama generate request.
// The prompt is sent verbatim: the caller has already rendered the persona
// context, so no model template is applied.
func ToRequest(request *llm.GenerateRequest, model string, options *llm.Options) *Request {
	req := &Request{
		Model:  model,
		Prompt: request.Prompt,
		Stream: true,
		Raw:    true,
	}
	if options == nil {
		return req
	}
	req.Options = &Options{
		Temperature: options.Temperature,
		TopP:        options.TopP,
		TopK:        options.TopK,
		NumPredict:  options.MaxTokens,
		Stop:        options.StopWords,
	}
	if options.Device == llm.DeviceCPU {
		zero := 0
		req.Options.NumGPU = &zero
	}
	return req
}

// ToLLMResponse converts an aggregated Ollama Response to an llm.GenerateResponse
func ToLLMResponse(resp *Response) *llm.GenerateResponse {
	return &llm.GenerateResponse{
		Text:  resp.Response,
		Model: resp.Model,
		Usage: &llm.Usage{
			PromptTokens:     resp.PromptEvalCount,
			CompletionTokens: resp.EvalCount,
			TotalTokens:      resp.PromptEvalCount + resp.EvalCount,
		},
	}
}
