package llm

const (
	DefaultMaxTokens   = 500
	DefaultTemperature = 0.7
	DefaultTopP        = 0.9
	DefaultTopK        = 50
)

type Options struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int `json:"max_tokens" yaml:"maxTokens"`

	// Temperature is the temperature for sampling, between 0 and 1.
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// TopP is the cumulative probability for top-p sampling.
	TopP float64 `json:"top_p" yaml:"topP"`

	// TopK is the number of tokens to consider for top-k sampling.
	TopK int `json:"top_k" yaml:"topK"`

	// StopWords is a list of words to stop on.
	StopWords []string `json:"stop_words,omitempty" yaml:"stopWords,omitempty"`

	// Device selects where the backend should run the model.
	Device Device `json:"device,omitempty" yaml:"device,omitempty"`
}

// DefaultOptions returns the sampling parameters used when a caller supplies none.
func DefaultOptions() *Options {
	return &Options{
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
		TopP:        DefaultTopP,
		TopK:        DefaultTopK,
		Device:      DeviceAuto,
	}
}

// Merge fills zero fields of o with values from defaults.
func (o *Options) Merge(defaults *Options) *Options {
	if defaults == nil {
		return o
	}
	if o == nil {
		clone := *defaults
		return &clone
	}
	out := *o
	if out.MaxTokens == 0 {
		out.MaxTokens = defaults.MaxTokens
	}
	if out.Temperature == 0 {
		out.Temperature = defaults.Temperature
	}
	if out.TopP == 0 {
		out.TopP = defaults.TopP
	}
	if out.TopK == 0 {
		out.TopK = defaults.TopK
	}
	if len(out.StopWords) == 0 {
		out.StopWords = defaults.StopWords
	}
	if out.Device == "" {
		out.Device = defaults.Device
	}
	return &out
}
