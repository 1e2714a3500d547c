package conversation

import (
	"time"

	"github.com/viant/aiperson/genai/transcript"
	"github.com/viant/aiperson/genai/usage"
)

// Record is the archived form of a finished session.
type Record struct {
	ID        string            `json:"id" yaml:"id"`
	Persona   string            `json:"persona" yaml:"persona"`
	Model     string            `json:"model" yaml:"model"`
	Turns     []transcript.Turn `json:"turns" yaml:"turns"`
	StartedAt time.Time         `json:"started_at" yaml:"startedAt"`
	EndedAt   time.Time         `json:"ended_at" yaml:"endedAt"`
	Usage     *usage.Stat       `json:"usage,omitempty" yaml:"usage,omitempty"`
}
