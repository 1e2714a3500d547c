package openai

import "github.com/viant/aiperson/genai/llm"

// ToRequest converts an llm.GenerateRequest to a completions Request. The
// completions API has no top_k parameter, so it is dropped.
func ToRequest(request *llm.GenerateRequest, model string, options *llm.Options) *Request {
	req := &Request{
		Model:  model,
		Prompt: request.Prompt,
		N:      1,
	}
	if options == nil {
		return req
	}
	temperature := options.Temperature
	req.Temperature = &temperature
	req.MaxTokens = options.MaxTokens
	req.TopP = options.TopP
	req.Stop = options.StopWords
	return req
}

// ToLLMResponse converts a completions Response to an llm.GenerateResponse.
func ToLLMResponse(resp *Response) *llm.GenerateResponse {
	out := &llm.GenerateResponse{Model: resp.Model}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Text
	}
	if resp.Usage != nil {
		out.Usage = &llm.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return out
}
