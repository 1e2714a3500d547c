package modelcache

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/viant/afs/url"
	"github.com/viant/aiperson/genai/llm"
	"github.com/viant/aiperson/genai/persona"
	"github.com/viant/aiperson/internal/log"
)

// ErrCacheRemoval is returned when cached weights could not be removed; the
// persona keeps its cache association.
var ErrCacheRemoval = errors.New("failed to remove cached model")

// Materializer fetches model weights into a directory and removes them.
type Materializer interface {
	Materialize(ctx context.Context, modelID, targetDir string) (string, error)
	Remove(ctx context.Context, location string) error
}

// Manager keeps a persona's local model association consistent with disk.
type Manager struct {
	dir          string
	materializer Materializer
}

// TargetPath returns the directory a model identifier is materialized into.
func (m *Manager) TargetPath(model string) string {
	return url.Join(m.dir, strings.ReplaceAll(strings.TrimSpace(model), "/", "_"))
}

// MarkCached records that p's model lives at location.
func MarkCached(p *persona.Persona, location string) error {
	if strings.TrimSpace(location) == "" {
		return fmt.Errorf("%w: %s: model path was empty", persona.ErrInvalid, p.Name)
	}
	p.ModelSavedLocally = true
	p.ModelPath = location
	return nil
}

// Materialize downloads p's model and marks p cached. On failure p is unchanged.
func (m *Manager) Materialize(ctx context.Context, p *persona.Persona) error {
	location, err := m.materializer.Materialize(ctx, p.Model, m.TargetPath(p.Model))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", llm.ErrModelLoad, p.Model, err)
	}
	return MarkCached(p, location)
}

// Evict removes p's cached weights and clears the association. Evicting an
// uncached persona is a no-op. When removal fails p is unchanged.
func (m *Manager) Evict(ctx context.Context, p *persona.Persona) error {
	if !p.ModelSavedLocally {
		return nil
	}
	if err := m.Remove(ctx, p.ModelPath); err != nil {
		return err
	}
	p.ClearCache()
	return nil
}

// Remove deletes cached weights at location.
func (m *Manager) Remove(ctx context.Context, location string) error {
	if location == "" {
		return nil
	}
	if err := m.materializer.Remove(ctx, location); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCacheRemoval, location, err)
	}
	log.Emit(log.ModelCache, map[string]string{"removed": location})
	return nil
}

// New creates a manager materializing models under dir.
func New(dir string, materializer Materializer) *Manager {
	return &Manager{dir: dir, materializer: materializer}
}
