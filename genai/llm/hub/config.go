package hub

const (
	DefaultURL      = "https://huggingface.co"
	DefaultRevision = "main"
	DefaultTokenEnv = "HF_TOKEN"
)

// DefaultPatterns selects the files a text-generation checkpoint needs.
var DefaultPatterns = []string{"*.json", "*.txt", "*.model", "*.safetensors"}

// Config describes a Hugging Face compatible model hub.
type Config struct {
	URL      string `yaml:"url,omitempty" json:"url,omitempty"`
	Revision string `yaml:"revision,omitempty" json:"revision,omitempty"`
	// TokenEnv names the environment variable holding an optional bearer token.
	TokenEnv string   `yaml:"tokenEnv,omitempty" json:"tokenEnv,omitempty"`
	Patterns []string `yaml:"patterns,omitempty" json:"patterns,omitempty"`
}

// Init fills unset fields with defaults.
func (c *Config) Init() {
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if c.Revision == "" {
		c.Revision = DefaultRevision
	}
	if c.TokenEnv == "" {
		c.TokenEnv = DefaultTokenEnv
	}
	if len(c.Patterns) == 0 {
		c.Patterns = append([]string{}, DefaultPatterns...)
	}
}
