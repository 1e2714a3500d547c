package transcript

import "strings"

// UserSpeaker tags turns typed by the user.
const UserSpeaker = "User"

// Turn is one utterance of a conversation.
type Turn struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// String renders the turn the way it appears in the model context.
func (t Turn) String() string {
	return t.Speaker + ": " + t.Text
}

// Transcript is the ordered turn history of one chat session. It only grows.
type Transcript struct {
	turns []Turn
}

// Append records a turn. The speaker tag is stored as given, so renaming a
// persona later does not relabel history.
func (t *Transcript) Append(speaker, text string) {
	t.turns = append(t.turns, Turn{Speaker: speaker, Text: text})
}

// Turns returns a copy of the recorded turns.
func (t *Transcript) Turns() []Turn {
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Len returns the number of turns.
func (t *Transcript) Len() int { return len(t.turns) }

// BuildContext renders prompt, every turn and a trailing "<name>:" cue, one
// per line.
func (t *Transcript) BuildContext(prompt, personaName string) string {
	lines := make([]string, 0, len(t.turns)+2)
	lines = append(lines, prompt)
	for _, turn := range t.turns {
		lines = append(lines, turn.String())
	}
	lines = append(lines, personaName+":")
	return strings.Join(lines, "\n")
}
