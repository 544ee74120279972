package readings

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("reading not found")
	ErrGeneration   = errors.New("generation failed")
)

// MissingFieldError indica un campo obligatorio vacío. errors.Is(err, ErrInvalidInput) == true.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing required field: %s", e.Field)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrInvalidInput }
