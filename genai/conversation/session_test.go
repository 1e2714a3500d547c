package conversation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/aiperson/genai/llm"
	"github.com/viant/aiperson/genai/persona"
	"github.com/viant/aiperson/genai/transcript"
)

type stubModel struct {
	prompts []string
	replies []string
	err     error
}

func (m *stubModel) Generate(ctx context.Context, request *llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.prompts = append(m.prompts, request.Prompt)
	if m.err != nil {
		return nil, m.err
	}
	text := m.replies[0]
	m.replies = m.replies[1:]
	return &llm.GenerateResponse{Text: request.Prompt + text}, nil
}

func TestSession_Send(t *testing.T) {
	model := &stubModel{replies: []string{" hello\nUser: more", " fine"}}
	session, err := New(persona.New("Eve", "Be concise.", "gpt2"), model, WithIDGenerator(func() string { return "c1" }))
	require.NoError(t, err)
	assert.Equal(t, "c1", session.ID())

	reply, err := session.Send(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "hello", reply)
	assert.Equal(t, "Be concise.\nUser: hi\nEve:", model.prompts[0])

	reply, err = session.Send(context.Background(), "how are you?")
	require.NoError(t, err)
	assert.Equal(t, "fine", reply)
	assert.Equal(t, "Be concise.\nUser: hi\nEve: hello\nUser: how are you?\nEve:", model.prompts[1])

	assert.EqualValues(t, []transcript.Turn{
		{Speaker: "User", Text: "hi"},
		{Speaker: "Eve", Text: "hello"},
		{Speaker: "User", Text: "how are you?"},
		{Speaker: "Eve", Text: "fine"},
	}, session.Turns())
	assert.Equal(t, "Eve: fine", session.Format(reply))
}

func TestSession_Send_Fallback(t *testing.T) {
	model := &stubModel{err: errors.New("backend down")}
	session, err := New(persona.New("Eve", "Be concise.", "gpt2"), model)
	require.NoError(t, err)

	reply, err := session.Send(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
	assert.EqualValues(t, []transcript.Turn{{Speaker: "User", Text: "hi"}}, session.Turns())
}

func TestSession_Send_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	session, err := New(persona.New("Eve", "p", "gpt2"), &stubModel{err: context.Canceled})
	require.NoError(t, err)
	_, err = session.Send(ctx, "hi")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSession_Rename(t *testing.T) {
	model := &stubModel{replies: []string{"one", "two"}}
	session, err := New(persona.New("Eve", "p", "gpt2"), model)
	require.NoError(t, err)
	_, _ = session.Send(context.Background(), "a")
	require.NoError(t, session.Rename("Ada"))
	_, _ = session.Send(context.Background(), "b")

	assert.Equal(t, "p\nUser: a\nEve: one\nUser: b\nAda:", model.prompts[1])
	record := session.Record()
	assert.Equal(t, "Ada", record.Persona)
	assert.Len(t, record.Turns, 4)
	assert.Equal(t, "Eve", record.Turns[1].Speaker)
}

func TestIsQuit(t *testing.T) {
	testCases := []struct {
		line     string
		expected bool
	}{
		{line: "quit", expected: true},
		{line: "QUIT", expected: true},
		{line: " Quit \n", expected: true},
		{line: "quit now", expected: false},
		{line: "exit", expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsQuit(tc.line))
		})
	}
}
