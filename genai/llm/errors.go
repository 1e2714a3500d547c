package llm

import "errors"

var (
	// ErrInference is returned when the backend fails while generating.
	ErrInference = errors.New("inference failure")
	// ErrModelLoad is returned when a model cannot be loaded or materialized.
	ErrModelLoad = errors.New("model load failure")
)
