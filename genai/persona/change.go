package persona

import "strings"

// Change describes a modification. Empty fields keep the current value.
type Change struct {
	Name   string
	Prompt string
	Model  string
	// SaveLocally, when set, requests that the model be cached (true) or
	// evicted (false). It is a request for the cache manager; Apply only
	// reports it.
	SaveLocally *bool
}

// Effect reports what Apply changed.
type Effect struct {
	RenamedFrom   string
	PromptChanged bool
	ModelSwitched bool
	// PreviousModelPath is the cache directory orphaned by a model switch.
	PreviousModelPath string
}

// Renamed reports whether the storage key changed.
func (e *Effect) Renamed() bool { return e.RenamedFrom != "" }

// Apply mutates p in place. Switching the model always clears the local
// cache association, whatever the prior state.
func (p *Persona) Apply(change *Change) (*Effect, error) {
	effect := &Effect{}
	if change == nil {
		return effect, nil
	}
	if name := strings.TrimSpace(change.Name); name != "" && name != p.Name {
		if err := ValidateName(name); err != nil {
			return nil, err
		}
		effect.RenamedFrom = p.Name
		p.Name = name
	}
	if change.Prompt != "" && change.Prompt != p.Prompt {
		p.Prompt = change.Prompt
		effect.PromptChanged = true
	}
	if model := strings.TrimSpace(change.Model); model != "" {
		effect.ModelSwitched = model != p.Model
		effect.PreviousModelPath = p.ModelPath
		p.Model = model
		p.ClearCache()
	}
	return effect, nil
}

// ClearCache drops the local model association.
func (p *Persona) ClearCache() {
	p.ModelSavedLocally = false
	p.ModelPath = ""
}
