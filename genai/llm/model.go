package llm

import "context"

// Model generates a continuation of a raw text context.
type Model interface {
	Generate(ctx context.Context, request *GenerateRequest) (*GenerateResponse, error)
}

// Loader is implemented by models that can verify their weights are reachable
// before the first generation.
type Loader interface {
	Load(ctx context.Context) error
}
