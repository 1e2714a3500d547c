package persona

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		description string
		data        string
		expected    *Persona
		version     int
		corrupt     bool
	}{
		{
			description: "schema 1 record defaults cache fields",
			data:        `{"name": "Eve", "prompt": "Be concise.", "model_name": "gpt2"}`,
			expected:    &Persona{Name: "Eve", Prompt: "Be concise.", Model: "gpt2"},
			version:     1,
		},
		{
			description: "schema 2 record with cache",
			data:        `{"name": "Eve", "prompt": "p", "model_name": "gpt2", "model_saved_locally": true, "model_path": "models/gpt2"}`,
			expected:    &Persona{Name: "Eve", Prompt: "p", Model: "gpt2", ModelSavedLocally: true, ModelPath: "models/gpt2"},
			version:     1,
		},
		{
			description: "null path and unknown keys",
			data:        `{"name": "Eve", "prompt": "p", "model_name": "gpt2", "model_saved_locally": false, "model_path": null, "color": "blue", "schema_version": 3}`,
			expected:    &Persona{Name: "Eve", Prompt: "p", Model: "gpt2"},
			version:     3,
		},
		{
			description: "flag without path is normalized",
			data:        `{"name": "Eve", "prompt": "p", "model_name": "gpt2", "model_saved_locally": true}`,
			expected:    &Persona{Name: "Eve", Prompt: "p", Model: "gpt2"},
			version:     1,
		},
		{description: "missing prompt", data: `{"name": "Eve", "model_name": "gpt2"}`, corrupt: true},
		{description: "null model", data: `{"name": "Eve", "prompt": "p", "model_name": null}`, corrupt: true},
		{description: "wrong type", data: `{"name": 7, "prompt": "p", "model_name": "gpt2"}`, corrupt: true},
		{description: "bad optional", data: `{"name": "Eve", "prompt": "p", "model_name": "gpt2", "model_saved_locally": "yes"}`, corrupt: true},
		{description: "not json", data: `name: Eve`, corrupt: true},
		{description: "newer schema", data: `{"name": "Eve", "prompt": "p", "model_name": "gpt2", "schema_version": 4}`, corrupt: true},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := Decode([]byte(tc.data))
			if tc.corrupt {
				assert.True(t, errors.Is(err, ErrCorrupt))
				return
			}
			assert.NoError(t, err)
			assert.EqualValues(t, tc.expected, actual)
			assert.Equal(t, tc.version, Version([]byte(tc.data)))
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	testCases := []*Persona{
		New("Eve", "Be concise.", "gpt2"),
		{Name: "Ada", Prompt: "Multi\nline", Model: "org/model", ModelSavedLocally: true, ModelPath: "models/org_model"},
	}
	for _, p := range testCases {
		t.Run(p.Name, func(t *testing.T) {
			data, err := Encode(p)
			assert.NoError(t, err)
			assert.Equal(t, SchemaVersion, Version(data))
			assert.NotContains(t, string(data), "transcript")
			actual, err := Decode(data)
			assert.NoError(t, err)
			assert.EqualValues(t, p, actual)
		})
	}
}

func TestEncode_Invalid(t *testing.T) {
	_, err := Encode(New("", "p", "m"))
	assert.True(t, errors.Is(err, ErrInvalid))
}
