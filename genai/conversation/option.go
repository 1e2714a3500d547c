package conversation

import (
	"github.com/viant/aiperson/genai/llm"
	"github.com/viant/aiperson/genai/usage"
)

// Option allows to customise Session behaviour.
type Option func(*Session)

// WithIDGenerator overrides the default conversation-ID generator.
func WithIDGenerator(f func() string) Option {
	return func(s *Session) {
		if f != nil {
			s.idGen = f
		}
	}
}

// WithOptions sets the sampling options sent with every generation.
func WithOptions(options *llm.Options) Option {
	return func(s *Session) {
		if options != nil {
			s.options = options
		}
	}
}

// WithFallback overrides the reply returned when generation fails.
func WithFallback(text string) Option {
	return func(s *Session) {
		if text != "" {
			s.fallback = text
		}
	}
}

// WithUsage attaches the aggregator the model client reports token usage to.
func WithUsage(agg *usage.Aggregator) Option {
	return func(s *Session) {
		s.usage = agg
	}
}
