package llm

// GenerateRequest carries the full text context to continue.
type GenerateRequest struct {
	Prompt  string   `json:"prompt"`
	Options *Options `json:"options,omitempty"`
}

// GenerateResponse holds the raw generated text as returned by the backend.
// Some backends echo the prompt in front of the continuation, some do not;
// callers must not assume either.
type GenerateResponse struct {
	Text  string `json:"text"`
	Model string `json:"model,omitempty"`
	Usage *Usage `json:"usage,omitempty"`
}

// Usage represents token usage information.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
