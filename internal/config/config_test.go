package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/aiperson/genai/llm"
	"github.com/viant/aiperson/genai/llm/hub"
	"github.com/viant/aiperson/internal/workspace"
)

func TestLoadOrCreate_Default(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "")
	root := t.TempDir()
	workspace.SetRoot(root)

	cfg, err := LoadOrCreate(context.Background(), afs.New(), "")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, workspace.ConfigFile))

	assert.Equal(t, "ollama", cfg.Provider.Provider)
	assert.Equal(t, "http://localhost:11434", cfg.Provider.URL)
	assert.Equal(t, 120, cfg.Provider.TimeoutSec)
	assert.EqualValues(t, llm.DefaultOptions(), cfg.Sampling)
	assert.Same(t, cfg.Sampling, cfg.Provider.Sampling)
	assert.Equal(t, hub.DefaultURL, cfg.Hub.URL)
	assert.Equal(t, filepath.Join(root, workspace.KindPersona), cfg.PersonasURL)
	assert.Equal(t, filepath.Join(root, workspace.KindModel), cfg.ModelsURL)
	assert.Equal(t, filepath.Join(root, workspace.KindConversation), cfg.Conversations.URL)
	assert.False(t, cfg.Conversations.Archive)
}

func TestLoadOrCreate_Custom(t *testing.T) {
	workspace.SetRoot(t.TempDir())
	location := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(location, []byte(`provider:
  name: openai
  url: http://localhost:8000/v1
sampling:
  maxTokens: 64
  device: GPU
personasURL: /data/personas
conversations:
  archive: true
`), 0644))

	cfg, err := LoadOrCreate(context.Background(), afs.New(), location)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Provider.Provider)
	assert.Equal(t, 64, cfg.Sampling.MaxTokens)
	assert.Equal(t, llm.DefaultTemperature, cfg.Sampling.Temperature)
	assert.Equal(t, llm.DeviceCUDA, cfg.Sampling.Device)
	assert.Equal(t, "/data/personas", cfg.PersonasURL)
	assert.True(t, cfg.Conversations.Archive)
}

func TestLoadOrCreate_WritesTemplate(t *testing.T) {
	workspace.SetRoot(t.TempDir())
	location := filepath.Join(t.TempDir(), "nested", "aiperson.yaml")
	cfg, err := LoadOrCreate(context.Background(), afs.New(), location)
	require.NoError(t, err)
	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, workspace.DefaultConfig(), data)
	assert.Equal(t, "ollama", cfg.Provider.Provider)
}

func TestConfig_Init_InvalidDevice(t *testing.T) {
	workspace.SetRoot(t.TempDir())
	cfg := &Config{Sampling: &llm.Options{Device: "tpu"}}
	assert.Error(t, cfg.Init())
}
