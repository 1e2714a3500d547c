package persona

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when no record exists for a name.
	ErrNotFound = errors.New("persona not found")
	// ErrCorrupt is returned when a stored record lacks a required field or is malformed.
	ErrCorrupt = errors.New("corrupt persona record")
	// ErrInvalid is returned for records that cannot be stored.
	ErrInvalid = errors.New("invalid persona")
)

// Persona is a named chatbot identity: a system prompt bound to a model.
// The conversation transcript is deliberately not part of it.
type Persona struct {
	Name   string
	Prompt string
	Model  string
	// ModelSavedLocally reports whether the model weights were materialized
	// under ModelPath. ModelPath is non-empty iff this is true.
	ModelSavedLocally bool
	ModelPath         string
}

// New creates an uncached persona.
func New(name, prompt, model string) *Persona {
	return &Persona{
		Name:   strings.TrimSpace(name),
		Prompt: prompt,
		Model:  strings.TrimSpace(model),
	}
}

// Validate checks the record can be stored under its name.
func (p *Persona) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: persona was nil", ErrInvalid)
	}
	if err := ValidateName(p.Name); err != nil {
		return err
	}
	if strings.TrimSpace(p.Prompt) == "" {
		return fmt.Errorf("%w: %s: prompt was empty", ErrInvalid, p.Name)
	}
	if strings.TrimSpace(p.Model) == "" {
		return fmt.Errorf("%w: %s: model was empty", ErrInvalid, p.Name)
	}
	if p.ModelSavedLocally != (p.ModelPath != "") {
		return fmt.Errorf("%w: %s: local model flag and path disagree", ErrInvalid, p.Name)
	}
	return nil
}

// ValidateName rejects names that cannot serve as a filename stem.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return fmt.Errorf("%w: name was empty", ErrInvalid)
	case trimmed != name:
		return fmt.Errorf("%w: name %q has surrounding whitespace", ErrInvalid, name)
	case trimmed == "." || trimmed == "..":
		return fmt.Errorf("%w: name %q is reserved", ErrInvalid, name)
	case strings.ContainsAny(trimmed, `/\`):
		return fmt.Errorf("%w: name %q contains a path separator", ErrInvalid, name)
	}
	return nil
}

// ModelRef is the reference handed to the inference backend: the local copy
// when one exists, the model identifier otherwise.
func (p *Persona) ModelRef() string {
	if p.ModelSavedLocally && p.ModelPath != "" {
		return p.ModelPath
	}
	return p.Model
}

// Clone returns a copy of p.
func (p *Persona) Clone() *Persona {
	clone := *p
	return &clone
}
