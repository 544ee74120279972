package zodiac

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrUnknownSign = errors.New("unknown sign")
)

// InvalidDateError lo devuelve el clasificador cuando el texto no es una fecha
// DD-MM-YYYY válida o ningún rango la contiene.
type InvalidDateError struct {
	Input string
	Err   error
}

func (e *InvalidDateError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid date %q: expected DD-MM-YYYY", e.Input)
	}
	return fmt.Sprintf("invalid date %q: expected DD-MM-YYYY: %v", e.Input, e.Err)
}

func (e *InvalidDateError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrInvalidDate).
func (e *InvalidDateError) Is(target error) bool { return target == ErrInvalidDate }
