package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/aiperson/genai/conversation"
	"github.com/viant/aiperson/genai/llm"
	"github.com/viant/aiperson/genai/llm/hub"
	"github.com/viant/aiperson/genai/llm/provider"
	"github.com/viant/aiperson/genai/persona"
	"github.com/viant/aiperson/genai/usage"
	"github.com/viant/aiperson/internal/config"
	"github.com/viant/aiperson/internal/log"
	"github.com/viant/aiperson/internal/modelcache"
	convrepo "github.com/viant/aiperson/internal/workspace/repository/conversation"
	personarepo "github.com/viant/aiperson/internal/workspace/repository/persona"
)

// ErrExists is returned when creating or renaming onto a name already in use.
var ErrExists = errors.New("persona already exists")

// ErrModelInUse is returned when removing cached weights another persona
// still refers to.
var ErrModelInUse = errors.New("cached model is used by another persona")

// ModelLoader creates a model client and verifies the model can be served.
type ModelLoader interface {
	LoadModel(ctx context.Context, options *provider.Options) (llm.Model, error)
}

var (
	_ ModelLoader             = (*provider.Factory)(nil)
	_ modelcache.Materializer = (*hub.Service)(nil)
)

// Service exposes persona management and chat decoupled from any particular
// user-interface.
type Service struct {
	config       *config.Config
	fs           afs.Service
	loader       ModelLoader
	materializer modelcache.Materializer

	once          sync.Once
	personas      *personarepo.Repository
	conversations *convrepo.Repository
	cache         *modelcache.Manager
}

// CreateInput describes a new persona.
type CreateInput struct {
	Name        string
	Prompt      string
	Model       string
	SaveLocally bool
	// Overwrite replaces an existing persona with the same name.
	Overwrite bool
}

// ModifyOutput reports the stored persona and what changed.
type ModifyOutput struct {
	Persona *persona.Persona
	Effect  *persona.Effect
	// SharedWith lists personas still using weights this change released;
	// those weights were kept on disk.
	SharedWith []string
}

// lazy init repos
func (s *Service) initRepos() {
	s.once.Do(func() {
		s.personas = personarepo.New(s.fs, s.config.PersonasURL)
		s.conversations = convrepo.New(s.fs, s.config.Conversations.URL)
		s.cache = modelcache.New(s.config.ModelsURL, s.materializer)
	})
}

// Config returns the effective configuration.
func (s *Service) Config() *config.Config { return s.config }

// Exists reports whether a persona is stored under name.
func (s *Service) Exists(ctx context.Context, name string) (bool, error) {
	s.initRepos()
	return s.personas.Exists(ctx, name)
}

// Create checks the model loads, then stores a new persona, optionally
// materializing its weights. A failed model check stores nothing. A failed
// materialization leaves the persona stored uncached and returns the error.
func (s *Service) Create(ctx context.Context, input *CreateInput) (*persona.Persona, error) {
	s.initRepos()
	p := persona.New(input.Name, input.Prompt, input.Model)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	exists, err := s.personas.Exists(ctx, p.Name)
	if err != nil {
		return nil, err
	}
	if exists && !input.Overwrite {
		return nil, fmt.Errorf("%w: %s", ErrExists, p.Name)
	}
	if err := s.checkModel(ctx, p.Model); err != nil {
		return nil, err
	}
	if err := s.personas.Save(ctx, p); err != nil {
		return nil, err
	}
	if !input.SaveLocally {
		return p, nil
	}
	if err := s.cache.Materialize(ctx, p); err != nil {
		return p, err
	}
	return p, s.personas.Save(ctx, p)
}

// List returns the sorted names of stored personas.
func (s *Service) List(ctx context.Context) ([]string, error) {
	s.initRepos()
	return s.personas.List(ctx)
}

// Get loads a persona.
func (s *Service) Get(ctx context.Context, name string) (*persona.Persona, error) {
	s.initRepos()
	return s.personas.Load(ctx, name)
}

// Modify applies change to the persona stored under name. A new model is
// checked before anything is stored; a cache request is carried out before
// the record is written, so a failure leaves the stored record unchanged.
// When the write fails after weights were removed, the old record is saved
// again without its cache association.
func (s *Service) Modify(ctx context.Context, name string, change *persona.Change) (*ModifyOutput, error) {
	s.initRepos()
	p, err := s.personas.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	effect, err := p.Apply(change)
	if err != nil {
		return nil, err
	}
	if effect.Renamed() {
		exists, err := s.personas.Exists(ctx, p.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: %s", ErrExists, p.Name)
		}
	}
	if effect.ModelSwitched {
		if err := s.checkModel(ctx, p.Model); err != nil {
			return nil, err
		}
	}
	out := &ModifyOutput{Persona: p, Effect: effect}
	removed := ""
	if change != nil && change.SaveLocally != nil {
		switch {
		case *change.SaveLocally && !p.ModelSavedLocally:
			err = s.cache.Materialize(ctx, p)
		case !*change.SaveLocally && p.ModelSavedLocally:
			location := p.ModelPath
			if out.SharedWith, err = s.release(ctx, p, name); err == nil && len(out.SharedWith) == 0 {
				removed = location
			}
		}
		if err != nil {
			return nil, err
		}
	}
	if err := s.personas.Rename(ctx, name, p); err != nil {
		if removed != "" {
			err = s.reconcileRemoved(ctx, name, removed, err)
		}
		return nil, err
	}
	return out, nil
}

// reconcileRemoved clears the cache association still stored under name after
// its weights at location were removed but the modified record was not
// written. It returns cause annotated with the resulting state.
func (s *Service) reconcileRemoved(ctx context.Context, name, location string, cause error) error {
	stored, err := s.personas.Load(ctx, name)
	if err != nil {
		return fmt.Errorf("%w; cached model at %s was removed and %q could not be reloaded: %v", cause, location, name, err)
	}
	if !stored.ModelSavedLocally || stored.ModelPath != location {
		return cause
	}
	stored.ClearCache()
	if err := s.personas.Save(ctx, stored); err != nil {
		return fmt.Errorf("%w; cached model at %s was removed but %q still refers to it: %v", cause, location, name, err)
	}
	return fmt.Errorf("%w; cached model at %s was removed and %q no longer refers to it", cause, location, name)
}

// Delete removes the persona stored under name and returns it. Cached weights
// are left in place.
func (s *Service) Delete(ctx context.Context, name string) (*persona.Persona, error) {
	s.initRepos()
	p, err := s.personas.Load(ctx, name)
	if err != nil && !errors.Is(err, persona.ErrCorrupt) {
		return nil, err
	}
	if err := s.personas.Delete(ctx, name); err != nil {
		return nil, err
	}
	return p, nil
}

// Cache materializes the model weights of the persona stored under name.
func (s *Service) Cache(ctx context.Context, name string) (*persona.Persona, error) {
	s.initRepos()
	p, err := s.personas.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Materialize(ctx, p); err != nil {
		return nil, err
	}
	return p, s.personas.Save(ctx, p)
}

// Evict drops the cache association of the persona stored under name. The
// weights are removed unless another stored persona still uses them.
func (s *Service) Evict(ctx context.Context, name string) (*persona.Persona, error) {
	s.initRepos()
	p, err := s.personas.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	if !p.ModelSavedLocally {
		return p, nil
	}
	if _, err := s.release(ctx, p, name); err != nil {
		return nil, err
	}
	return p, s.personas.Save(ctx, p)
}

// RemoveModel deletes cached weights no stored persona refers to any more.
// Weights still in use are kept and ErrModelInUse is returned.
func (s *Service) RemoveModel(ctx context.Context, location string) error {
	s.initRepos()
	users, err := s.ModelUsers(ctx, location, "")
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return fmt.Errorf("%w: %s: %s", ErrModelInUse, location, strings.Join(users, ", "))
	}
	return s.cache.Remove(ctx, location)
}

// ModelUsers returns the stored personas, other than exclude, whose cached
// weights live at location. Unreadable records are skipped.
func (s *Service) ModelUsers(ctx context.Context, location, exclude string) ([]string, error) {
	s.initRepos()
	if location == "" {
		return nil, nil
	}
	names, err := s.personas.List(ctx)
	if err != nil {
		return nil, err
	}
	var ret []string
	for _, name := range names {
		if name == exclude {
			continue
		}
		p, err := s.personas.Load(ctx, name)
		if err != nil {
			if errors.Is(err, persona.ErrCorrupt) || errors.Is(err, persona.ErrNotFound) || errors.Is(err, persona.ErrInvalid) {
				continue
			}
			return nil, err
		}
		if p.ModelSavedLocally && p.ModelPath == location {
			ret = append(ret, name)
		}
	}
	return ret, nil
}

// release clears p's cache association, removing the weights unless another
// persona (other than the one stored under self) still uses them. It returns
// the personas the weights were kept for.
func (s *Service) release(ctx context.Context, p *persona.Persona, self string) ([]string, error) {
	users, err := s.ModelUsers(ctx, p.ModelPath, self)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, s.cache.Evict(ctx, p)
	}
	log.Emit(log.ModelCache, map[string]string{"kept": p.ModelPath, "usedBy": strings.Join(users, ",")})
	p.ClearCache()
	return users, nil
}

// StartChat loads the persona's model and opens a session.
func (s *Service) StartChat(ctx context.Context, name string, opts ...conversation.Option) (*conversation.Session, error) {
	s.initRepos()
	p, err := s.personas.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	ref := p.Model
	if s.config.Provider.LocalPath {
		ref = p.ModelRef()
	}
	agg := &usage.Aggregator{}
	options := s.config.Provider.WithModel(ref)
	options.UsageListener = agg.OnUsage
	model, err := s.loadModel(ctx, options)
	if err != nil {
		return nil, err
	}
	opts = append([]conversation.Option{conversation.WithOptions(s.config.Sampling), conversation.WithUsage(agg)}, opts...)
	return conversation.New(p, model, opts...)
}

// Archive stores a finished session when archiving is enabled. It reports
// whether the session was written.
func (s *Service) Archive(ctx context.Context, session *conversation.Session) (bool, error) {
	s.initRepos()
	if !s.config.Conversations.Archive || session == nil || len(session.Turns()) == 0 {
		return false, nil
	}
	if err := s.conversations.Archive(ctx, session.Record()); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) checkModel(ctx context.Context, model string) error {
	_, err := s.loadModel(ctx, s.config.Provider.WithModel(model))
	return err
}

func (s *Service) loadModel(ctx context.Context, options *provider.Options) (llm.Model, error) {
	log.Emit(log.ModelLoad, map[string]string{"provider": options.Provider, "model": options.Model})
	ret, err := s.loader.LoadModel(ctx, options)
	if err != nil {
		if !errors.Is(err, llm.ErrModelLoad) {
			err = fmt.Errorf("%w: %s: %v", llm.ErrModelLoad, options.Model, err)
		}
		return nil, err
	}
	return ret, nil
}

// New returns a Service for cfg. Unless overridden, models are served by the
// provider factory and weights fetched from the configured hub.
func New(cfg *config.Config, opts ...Option) *Service {
	ret := &Service{config: cfg}
	for _, o := range opts {
		o(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.loader == nil {
		ret.loader = provider.New()
	}
	if ret.materializer == nil {
		ret.materializer = hub.New(ret.fs, cfg.Hub)
	}
	return ret
}
