package ollama

import (
	"net/http"
	"time"

	"github.com/viant/aiperson/genai/llm"
	basecfg "github.com/viant/aiperson/genai/llm/provider/base"
)

type ClientOption func(*Client)

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) { basecfg.WithBaseURL(baseURL)(&c.Config) }
}

func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) { basecfg.WithHTTPClient(client)(&c.Config) }
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) { basecfg.WithTimeout(timeout)(&c.Config) }
}

func WithModel(model string) ClientOption {
	return func(c *Client) { basecfg.WithModel(model)(&c.Config) }
}

func WithDefaults(options *llm.Options) ClientOption {
	return func(c *Client) { basecfg.WithDefaults(options)(&c.Config) }
}

// WithAutoPull makes Load pull a model the server does not have yet.
func WithAutoPull(autoPull bool) ClientOption {
	return func(c *Client) { c.AutoPull = autoPull }
}

// WithUsageListener registers a callback to receive token usage information.
func WithUsageListener(l basecfg.UsageListener) ClientOption {
	return func(c *Client) { c.UsageListener = l }
}
