package provider

import (
	"github.com/viant/aiperson/genai/llm"
	basecfg "github.com/viant/aiperson/genai/llm/provider/base"
)

type Options struct {
	Provider   string `yaml:"name,omitempty" json:"name,omitempty"`
	Model      string `yaml:"-" json:"-"`
	URL        string `yaml:"url,omitempty" json:"url,omitempty"`
	TimeoutSec int    `yaml:"timeoutSec,omitempty" json:"timeoutSec,omitempty"`
	// AutoPull lets an Ollama backend download unknown models on load.
	AutoPull  bool   `yaml:"autoPull,omitempty" json:"autoPull,omitempty"`
	APIKeyURL string `yaml:"apiKeyURL,omitempty" json:"apiKeyURL,omitempty"`
	EnvKey    string `yaml:"envKey,omitempty" json:"envKey,omitempty"` // environment variable key to use for API key
	// LocalPath hands the backend the local weights directory instead of the
	// model identifier when a persona's model is saved locally.
	LocalPath bool `yaml:"localPath,omitempty" json:"localPath,omitempty"`

	Sampling      *llm.Options          `yaml:"-" json:"-"`
	UsageListener basecfg.UsageListener `yaml:"-" json:"-"`
}

// WithModel returns a copy of o bound to model.
func (o *Options) WithModel(model string) *Options {
	clone := *o
	clone.Model = model
	return &clone
}
