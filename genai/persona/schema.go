package persona

import (
	"encoding/json"
	"fmt"
)

// SchemaVersion is written with every record.
//
//	1: name, prompt, model_name
//	2: + model_saved_locally (default false), model_path (default absent)
//	3: + schema_version (default 1 when missing)
const SchemaVersion = 3

// record is the persisted JSON form. Unknown keys are ignored on read.
type record struct {
	Name              string  `json:"name"`
	Prompt            string  `json:"prompt"`
	ModelName         string  `json:"model_name"`
	ModelSavedLocally bool    `json:"model_saved_locally"`
	ModelPath         *string `json:"model_path"`
	SchemaVersion     int     `json:"schema_version"`
}

var requiredFields = []string{"name", "prompt", "model_name"}

// Encode serializes p without any session state.
func Encode(p *Persona) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rec := &record{
		Name:              p.Name,
		Prompt:            p.Prompt,
		ModelName:         p.Model,
		ModelSavedLocally: p.ModelSavedLocally,
		SchemaVersion:     SchemaVersion,
	}
	if p.ModelSavedLocally {
		path := p.ModelPath
		rec.ModelPath = &path
	}
	return json.MarshalIndent(rec, "", "    ")
}

// Decode parses a stored record of any schema version. Missing optional
// fields take their defaults; a missing or mistyped required field, or a
// schema version newer than SchemaVersion, is ErrCorrupt.
func Decode(data []byte) (*Persona, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if version := Version(data); version > SchemaVersion {
		return nil, fmt.Errorf("%w: schema version %d is newer than %d", ErrCorrupt, version, SchemaVersion)
	}
	values := make(map[string]string, len(requiredFields))
	for _, key := range requiredFields {
		raw, ok := fields[key]
		if !ok {
			return nil, fmt.Errorf("%w: missing key %s", ErrCorrupt, key)
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil || string(raw) == "null" {
			return nil, fmt.Errorf("%w: key %s is not a string", ErrCorrupt, key)
		}
		values[key] = value
	}
	p := &Persona{Name: values["name"], Prompt: values["prompt"], Model: values["model_name"]}

	if raw, ok := fields["model_saved_locally"]; ok && string(raw) != "null" {
		if err := json.Unmarshal(raw, &p.ModelSavedLocally); err != nil {
			return nil, fmt.Errorf("%w: key model_saved_locally is not a bool", ErrCorrupt)
		}
	}
	if raw, ok := fields["model_path"]; ok && string(raw) != "null" {
		if err := json.Unmarshal(raw, &p.ModelPath); err != nil {
			return nil, fmt.Errorf("%w: key model_path is not a string", ErrCorrupt)
		}
	}
	if !p.ModelSavedLocally || p.ModelPath == "" {
		p.ClearCache()
	}
	return p, nil
}

// Version returns the schema version a stored record declares (1 when absent).
func Version(data []byte) int {
	var header struct {
		SchemaVersion *int `json:"schema_version"`
	}
	if err := json.Unmarshal(data, &header); err != nil || header.SchemaVersion == nil {
		return 1
	}
	return *header.SchemaVersion
}
