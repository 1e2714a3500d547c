package ollama

// Request represents the request structure for the Ollama generate API.
type Request struct {
	Model   string   `json:"model"`
	Prompt  string   `json:"prompt"`
	Stream  bool     `json:"stream"`
	Raw     bool     `json:"raw,omitempty"`
	Options *Options `json:"options,omitempty"`
}

// Options represents the sampling options for an Ollama API request
type Options struct {
	Temperature float64  `json:"temperature,omitempty"`
	TopP        float64  `json:"top_p,omitempty"`
	TopK        int      `json:"top_k,omitempty"`
	NumPredict  int      `json:"num_predict,omitempty"`
	NumGPU      *int     `json:"num_gpu,omitempty"`
	Stop        []string `json:"stop,omitempty"`
}

// Response represents one (possibly partial) response chunk from the Ollama API
type Response struct {
	Model           string `json:"model"`
	CreatedAt       string `json:"created_at"`
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	Error           string `json:"error,omitempty"`
	PromptEvalCount int    `json:"prompt_eval_count,omitempty"`
	EvalCount       int    `json:"eval_count,omitempty"`
}

// PullRequest represents the request structure for pulling a model from Ollama API
type PullRequest struct {
	Stream bool   `json:"stream"`
	Name   string `json:"name"`
}

// PullResponse represents the response structure from pulling a model from Ollama API
type PullResponse struct {
	Status string `json:"status"`
	Digest string `json:"digest,omitempty"`
	Total  int64  `json:"total,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ShowRequest asks Ollama for model metadata; used as a load check.
type ShowRequest struct {
	Name string `json:"name"`
}
