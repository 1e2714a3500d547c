package provider

const (
	// ProviderOllama identifies local Ollama API
	ProviderOllama = "ollama"

	// ProviderOpenAI identifies an OpenAI-compatible completions API
	ProviderOpenAI = "openai"
)
