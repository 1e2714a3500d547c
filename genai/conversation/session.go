package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/viant/aiperson/genai/llm"
	"github.com/viant/aiperson/genai/persona"
	"github.com/viant/aiperson/genai/transcript"
	"github.com/viant/aiperson/genai/usage"
	"github.com/viant/aiperson/internal/log"
)

const (
	// QuitCommand ends a session; it is matched case-insensitively.
	QuitCommand = "quit"
	// FallbackReply is returned in place of a reply when generation fails.
	FallbackReply = "I'm sorry, I couldn't process that."
)

// Session is one interactive conversation with a persona. The transcript
// lives only as long as the session.
type Session struct {
	id         string
	persona    *persona.Persona
	model      llm.Model
	options    *llm.Options
	transcript transcript.Transcript
	fallback   string
	usage      *usage.Aggregator
	idGen      func() string
	started    time.Time
}

// New starts a session with a snapshot of p speaking through model.
func New(p *persona.Persona, model llm.Model, opts ...Option) (*Session, error) {
	if p == nil {
		return nil, errors.New("persona was nil")
	}
	if model == nil {
		return nil, fmt.Errorf("%w: %s: model was nil", llm.ErrModelLoad, p.Name)
	}
	s := &Session{
		persona:  p.Clone(),
		model:    model,
		fallback: FallbackReply,
		idGen:    uuid.NewString,
		started:  time.Now(),
	}
	for _, o := range opts {
		o(s)
	}
	s.id = s.idGen()
	return s, nil
}

// ID returns the conversation ID.
func (s *Session) ID() string { return s.id }

// Persona returns the persona snapshot the session speaks as.
func (s *Session) Persona() *persona.Persona { return s.persona }

// Turns returns a copy of the transcript so far.
func (s *Session) Turns() []transcript.Turn { return s.transcript.Turns() }

// Usage returns the token usage reported during the session, or nil when the
// model client does not report it.
func (s *Session) Usage() *usage.Aggregator { return s.usage }

// Rename changes the speaker tag used for new turns; recorded turns keep theirs.
func (s *Session) Rename(name string) error {
	if err := persona.ValidateName(name); err != nil {
		return err
	}
	s.persona.Name = name
	return nil
}

// Send records the user's text, asks the model for the persona's next line and
// records it. A generation failure yields the fallback reply, which is not
// recorded.
func (s *Session) Send(ctx context.Context, text string) (string, error) {
	s.transcript.Append(transcript.UserSpeaker, text)
	prompt := s.transcript.BuildContext(s.persona.Prompt, s.persona.Name)
	log.Emit(log.LLMInput, map[string]string{"conversation": s.id, "persona": s.persona.Name, "prompt": prompt})

	response, err := s.model.Generate(ctx, &llm.GenerateRequest{Prompt: prompt, Options: s.options})
	if err == nil && response == nil {
		err = fmt.Errorf("%w: empty response", llm.ErrInference)
	}
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		log.Emit(log.InferenceFailure, map[string]string{"conversation": s.id, "persona": s.persona.Name, "error": err.Error()})
		return s.fallback, nil
	}
	reply := transcript.ExtractReply(response.Text, prompt)
	log.Emit(log.LLMOutput, map[string]interface{}{"conversation": s.id, "persona": s.persona.Name, "reply": reply, "usage": response.Usage})
	s.transcript.Append(s.persona.Name, reply)
	return reply, nil
}

// Format renders a reply the way it is printed: "<name>: <reply>".
func (s *Session) Format(reply string) string {
	return s.persona.Name + ": " + reply
}

// IsQuit reports whether line asks to end the session.
func IsQuit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), QuitCommand)
}

// Record captures the session for archiving.
func (s *Session) Record() *Record {
	ret := &Record{
		ID:        s.id,
		Persona:   s.persona.Name,
		Model:     s.persona.Model,
		Turns:     s.Turns(),
		StartedAt: s.started,
		EndedAt:   time.Now(),
	}
	if s.usage != nil {
		ret.Usage = s.usage.Totals()
	}
	return ret
}
