package usage

import (
	"sort"
	"sync"

	"github.com/viant/aiperson/genai/llm"
)

// Stat accumulates token numbers for a single model.
type Stat struct {
	PromptTokens     int `json:"prompt_tokens" yaml:"promptTokens"`
	CompletionTokens int `json:"completion_tokens" yaml:"completionTokens"`
	Calls            int `json:"calls" yaml:"calls"`
}

// Aggregator collects usage grouped by model name.
type Aggregator struct {
	mux      sync.RWMutex
	PerModel map[string]*Stat
}

// OnUsage matches the provider usage listener signature so the aggregator
// can be passed to provider clients as agg.OnUsage.
func (a *Aggregator) OnUsage(model string, u *llm.Usage) {
	if u == nil {
		return
	}
	a.Add(model, u.PromptTokens, u.CompletionTokens)
}

// Add records token counts of one call for a specific model.
func (a *Aggregator) Add(model string, prompt, completion int) {
	a.mux.Lock()
	defer a.mux.Unlock()
	if a.PerModel == nil {
		a.PerModel = map[string]*Stat{}
	}
	stat, ok := a.PerModel[model]
	if !ok {
		stat = &Stat{}
		a.PerModel[model] = stat
	}
	stat.PromptTokens += prompt
	stat.CompletionTokens += completion
	stat.Calls++
}

// Totals returns accumulated usage across all tracked models.
func (a *Aggregator) Totals() *Stat {
	a.mux.RLock()
	defer a.mux.RUnlock()
	total := &Stat{}
	for _, stat := range a.PerModel {
		total.PromptTokens += stat.PromptTokens
		total.CompletionTokens += stat.CompletionTokens
		total.Calls += stat.Calls
	}
	return total
}

// Keys returns sorted list of model names.
func (a *Aggregator) Keys() []string {
	a.mux.RLock()
	defer a.mux.RUnlock()
	keys := make([]string, 0, len(a.PerModel))
	for k := range a.PerModel {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
