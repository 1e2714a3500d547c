package provider

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/viant/aiperson/genai/llm"
	"github.com/viant/aiperson/genai/llm/provider/ollama"
	"github.com/viant/aiperson/genai/llm/provider/openai"
	"github.com/viant/scy/cred/secret"
)

type Factory struct {
	secrets *secret.Service
}

// CreateModel creates a model client for options.Model on options.Provider.
func (f *Factory) CreateModel(ctx context.Context, options *Options) (llm.Model, error) {
	if options == nil || options.Provider == "" {
		return nil, fmt.Errorf("provider was empty")
	}
	if options.Model == "" {
		return nil, fmt.Errorf("model was empty")
	}
	timeout := time.Duration(options.TimeoutSec) * time.Second
	switch options.Provider {
	case ProviderOllama:
		return ollama.NewClient(ctx, options.Model,
			ollama.WithBaseURL(options.URL),
			ollama.WithTimeout(timeout),
			ollama.WithAutoPull(options.AutoPull),
			ollama.WithDefaults(options.Sampling),
			ollama.WithUsageListener(options.UsageListener))
	case ProviderOpenAI:
		apiKey, err := f.apiKey(ctx, options)
		if err != nil {
			return nil, err
		}
		return openai.NewClient(apiKey, options.Model,
			openai.WithBaseURL(options.URL),
			openai.WithTimeout(timeout),
			openai.WithDefaults(options.Sampling),
			openai.WithUsageListener(options.UsageListener)), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %v", options.Provider)
	}
}

// LoadModel creates the model and runs its load check when it has one.
// Any failure is reported as llm.ErrModelLoad.
func (f *Factory) LoadModel(ctx context.Context, options *Options) (llm.Model, error) {
	model, err := f.CreateModel(ctx, options)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrModelLoad, err)
	}
	if loader, ok := model.(llm.Loader); ok {
		if err := loader.Load(ctx); err != nil {
			return nil, err
		}
	}
	return model, nil
}

func (f *Factory) apiKey(ctx context.Context, options *Options) (string, error) {
	if options.APIKeyURL != "" {
		key, err := f.secrets.GeyKey(ctx, options.APIKeyURL)
		if err != nil {
			return "", err
		}
		return key.Secret, nil
	}
	if options.EnvKey != "" {
		return os.Getenv(options.EnvKey), nil
	}
	return "", nil
}

func New() *Factory {
	return &Factory{secrets: secret.New()}
}
