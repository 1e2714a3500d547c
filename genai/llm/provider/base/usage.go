package base

import "github.com/viant/aiperson/genai/llm"

// UsageListener receives token usage for a model call. Declared as a function
// type so callers can pass a plain closure.
type UsageListener func(model string, usage *llm.Usage)

// OnUsage invokes the listener when set.
func (f UsageListener) OnUsage(model string, usage *llm.Usage) {
	if f == nil {
		return
	}
	f(model, usage)
}
