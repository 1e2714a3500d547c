package config

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/aiperson/genai/llm"
	"github.com/viant/aiperson/genai/llm/hub"
	"github.com/viant/aiperson/genai/llm/provider"
	"github.com/viant/aiperson/internal/workspace"
	"gopkg.in/yaml.v3"
)

// Conversations controls the transcript archive.
type Conversations struct {
	Archive bool   `yaml:"archive" json:"archive"`
	URL     string `yaml:"url,omitempty" json:"url,omitempty"`
}

// Config is the workspace configuration document.
type Config struct {
	Provider      *provider.Options `yaml:"provider" json:"provider"`
	Sampling      *llm.Options      `yaml:"sampling" json:"sampling"`
	Hub           *hub.Config       `yaml:"hub" json:"hub"`
	PersonasURL   string            `yaml:"personasURL,omitempty" json:"personasURL,omitempty"`
	ModelsURL     string            `yaml:"modelsURL,omitempty" json:"modelsURL,omitempty"`
	Conversations *Conversations    `yaml:"conversations,omitempty" json:"conversations,omitempty"`
}

// Init fills missing sections with defaults and resolves storage locations
// against the workspace.
func (c *Config) Init() error {
	if c.Provider == nil {
		c.Provider = &provider.Options{}
	}
	if c.Provider.Provider == "" {
		c.Provider.Provider = provider.ProviderOllama
	}
	if host := os.Getenv("OLLAMA_HOST"); host != "" && c.Provider.URL == "" && c.Provider.Provider == provider.ProviderOllama {
		if !strings.Contains(host, "://") {
			host = "http://" + host
		}
		c.Provider.URL = host
	}
	c.Sampling = c.Sampling.Merge(llm.DefaultOptions())
	device, err := llm.ParseDevice(string(c.Sampling.Device))
	if err != nil {
		return fmt.Errorf("invalid sampling config: %w", err)
	}
	c.Sampling.Device = device
	c.Provider.Sampling = c.Sampling
	if c.Hub == nil {
		c.Hub = &hub.Config{}
	}
	c.Hub.Init()
	if c.Conversations == nil {
		c.Conversations = &Conversations{}
	}
	c.PersonasURL = workspace.Resolve(c.PersonasURL, workspace.KindPersona)
	c.ModelsURL = workspace.Resolve(c.ModelsURL, workspace.KindModel)
	c.Conversations.URL = workspace.Resolve(c.Conversations.URL, workspace.KindConversation)
	return nil
}

// DefaultPath returns the workspace configuration file location.
func DefaultPath() string {
	return filepath.Join(workspace.Root(), workspace.ConfigFile)
}

// Load reads and initialises the config at location.
func Load(ctx context.Context, fs afs.Service, location string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", location, err)
	}
	return parse(location, data)
}

// LoadOrCreate loads the config at location, writing the default document
// there first when it does not exist. An empty location selects DefaultPath.
func LoadOrCreate(ctx context.Context, fs afs.Service, location string) (*Config, error) {
	if location == "" {
		location = DefaultPath()
	}
	// 1. File already exists: load and return.
	if ok, _ := fs.Exists(ctx, location); ok {
		return Load(ctx, fs, location)
	}

	// 2. Standard workspace config: let the workspace bootstrap create it.
	if location == DefaultPath() {
		workspace.EnsureDefaults(fs)
		if ok, _ := fs.Exists(ctx, location); ok {
			return Load(ctx, fs, location)
		}
	}

	// 3. Custom location: write the embedded template there.
	data := workspace.DefaultConfig()
	if err := fs.Upload(ctx, location, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to create config %v: %w", location, err)
	}
	return parse(location, data)
}

func parse(location string, data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", location, err)
	}
	if err := cfg.Init(); err != nil {
		return nil, err
	}
	return cfg, nil
}
