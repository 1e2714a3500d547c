package persona

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/aiperson/genai/persona"
	"github.com/viant/aiperson/internal/log"
	"github.com/viant/aiperson/internal/workspace"
	baserepo "github.com/viant/aiperson/internal/workspace/repository/base"
)

const extension = ".json"

// Repository stores one JSON record per persona, keyed by name.
type Repository struct {
	*baserepo.Repository[persona.Persona]
}

// New returns a persona repository rooted at dir; an empty dir selects the
// workspace personas folder.
func New(fs afs.Service, dir string) *Repository {
	if dir == "" {
		return &Repository{Repository: baserepo.New[persona.Persona](fs, workspace.KindPersona, extension)}
	}
	return &Repository{Repository: baserepo.NewWithDir[persona.Persona](fs, dir, extension)}
}

// Save validates and writes p to <name>.json, overwriting any previous record.
func (r *Repository) Save(ctx context.Context, p *persona.Persona) error {
	data, err := persona.Encode(p)
	if err != nil {
		return err
	}
	if err := r.Add(ctx, p.Name, data); err != nil {
		return fmt.Errorf("failed to save persona %q: %w", p.Name, err)
	}
	log.Emit(log.PersonaSaved, map[string]string{"name": p.Name, "url": r.Filename(p.Name)})
	return nil
}

// Exists reports whether a record is stored under name.
func (r *Repository) Exists(ctx context.Context, name string) (bool, error) {
	if err := persona.ValidateName(name); err != nil {
		return false, err
	}
	return r.Repository.Exists(ctx, name)
}

// Load reads the record stored under name. A record whose name differs from
// its storage key is reported as corrupt.
func (r *Repository) Load(ctx context.Context, name string) (*persona.Persona, error) {
	ok, err := r.Exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("persona %q: %w", name, persona.ErrNotFound)
	}
	data, err := r.GetRaw(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read persona %q: %w", name, err)
	}
	ret, err := persona.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("persona %q: %w", name, err)
	}
	if ret.Name != name {
		return nil, fmt.Errorf("persona %q: %w: record names %q", name, persona.ErrCorrupt, ret.Name)
	}
	return ret, nil
}

// Delete removes the record stored under name; a missing record is not an error.
func (r *Repository) Delete(ctx context.Context, name string) error {
	ok, err := r.Exists(ctx, name)
	if err != nil || !ok {
		return err
	}
	if err := r.Repository.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete persona %q: %w", name, err)
	}
	log.Emit(log.PersonaDeleted, map[string]string{"name": name})
	return nil
}

// Rename stores p under its current name, then removes the record stored
// under oldName. A failed write leaves the old record untouched; a failed
// delete leaves both records in place.
func (r *Repository) Rename(ctx context.Context, oldName string, p *persona.Persona) error {
	if err := r.Save(ctx, p); err != nil {
		return err
	}
	if oldName == p.Name {
		return nil
	}
	return r.Delete(ctx, oldName)
}
