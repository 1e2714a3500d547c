package base

import (
	"net/http"
	"time"

	"github.com/viant/aiperson/genai/llm"
)

// Config holds the connection parameters shared by every provider client.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Model      string
	Timeout    time.Duration
	// Defaults fill sampling fields a request leaves unset.
	Defaults *llm.Options

	// UsageListener, when set, receives token usage for each successful call.
	UsageListener UsageListener
}

// ClientOption mutates Config; providers wrap it in their own option type.
type ClientOption func(*Config)

// WithBaseURL overrides the default endpoint of the provider.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Config) {
		if baseURL != "" {
			c.BaseURL = baseURL
		}
	}
}

// WithHTTPClient injects a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Config) {
		if client != nil {
			c.HTTPClient = client
		}
	}
}

// WithModel selects the model name.
func WithModel(model string) ClientOption {
	return func(c *Config) {
		if model != "" {
			c.Model = model
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Config) {
		if timeout > 0 {
			c.Timeout = timeout
		}
	}
}

// WithDefaults sets sampling defaults merged into every request.
func WithDefaults(options *llm.Options) ClientOption {
	return func(c *Config) {
		if options != nil {
			c.Defaults = options
		}
	}
}

// WithUsageListener registers a callback to receive token usage metrics.
func WithUsageListener(l UsageListener) ClientOption {
	return func(c *Config) {
		c.UsageListener = l
	}
}

// RequestOptions merges request options with client defaults and the
// package-wide defaults, in that order of precedence.
func (c *Config) RequestOptions(request *llm.GenerateRequest) *llm.Options {
	var options *llm.Options
	if request != nil {
		options = request.Options
	}
	return options.Merge(c.Defaults).Merge(llm.DefaultOptions())
}
