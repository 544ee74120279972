package generation

import (
	"context"
	"errors"
)

// ErrEmptyResponse: el backend respondió sin texto.
var ErrEmptyResponse = errors.New("generation: empty response")

// Result es la respuesta cruda del modelo.
type Result struct {
	Text  string
	Model string
}

// Generator es el backend de texto generativo (caja negra: prompt -> texto).
type Generator interface {
	Generate(ctx context.Context, prompt string) (Result, error)
	Model() string
}
