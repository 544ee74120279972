package zodiac

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout es el único formato aceptado (día-mes-año).
const DateLayout = "2-1-2006"

// ranges en orden de evaluación; el primero que coincide gana.
var ranges = []Range{
	{Aquarius, Boundary{time.January, 20}, Boundary{time.February, 18}},
	{Pisces, Boundary{time.February, 19}, Boundary{time.March, 20}},
	{Aries, Boundary{time.March, 21}, Boundary{time.April, 19}},
	{Taurus, Boundary{time.April, 20}, Boundary{time.May, 20}},
	{Gemini, Boundary{time.May, 21}, Boundary{time.June, 20}},
	{Cancer, Boundary{time.June, 21}, Boundary{time.July, 22}},
	{Leo, Boundary{time.July, 23}, Boundary{time.August, 22}},
	{Virgo, Boundary{time.August, 23}, Boundary{time.September, 22}},
	{Libra, Boundary{time.September, 23}, Boundary{time.October, 22}},
	{Scorpio, Boundary{time.October, 23}, Boundary{time.November, 21}},
	{Sagittarius, Boundary{time.November, 22}, Boundary{time.December, 21}},
	{Capricorn, Boundary{time.December, 22}, Boundary{time.January, 19}},
}

var errNoRange = errors.New("no sign range contains date")

// Ranges devuelve una copia de los doce rangos en orden de evaluación.
func Ranges() []Range {
	out := make([]Range, len(ranges))
	copy(out, ranges)
	return out
}

// Signs devuelve los doce signos en orden de evaluación.
func Signs() []Sign {
	out := make([]Sign, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, r.Sign)
	}
	return out
}

// RangeOf devuelve el rango de un signo.
func RangeOf(s Sign) (Range, bool) {
	for _, r := range ranges {
		if r.Sign == s {
			return r, true
		}
	}
	return Range{}, false
}

// ParseBirthDate normaliza separadores ("/", " ", ".") a "-" y parsea estricto DD-MM-YYYY.
func ParseBirthDate(text string) (BirthDate, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(text), func(r rune) bool {
		return r == '-' || r == '/' || r == ' ' || r == '.'
	})
	normalized := strings.Join(fields, "-")

	t, err := time.Parse(DateLayout, normalized)
	if err != nil {
		return BirthDate{}, &InvalidDateError{Input: text, Err: err}
	}
	return BirthDate{Day: t.Day(), Month: t.Month(), Year: t.Year()}, nil
}

// SignFor busca el signo de una fecha ya validada.
func SignFor(month time.Month, day int) (Sign, bool) {
	for _, r := range ranges {
		if r.Contains(month, day) {
			return r.Sign, true
		}
	}
	return "", false
}

// ClassifySign parsea el texto y devuelve el único signo cuyo rango contiene la fecha.
// Cualquier fallo es *InvalidDateError; nunca se devuelve un signo comodín.
func ClassifySign(text string) (Sign, error) {
	bd, err := ParseBirthDate(text)
	if err != nil {
		return "", err
	}
	s, ok := SignFor(bd.Month, bd.Day)
	if !ok {
		return "", &InvalidDateError{Input: text, Err: errNoRange}
	}
	return s, nil
}

// ParseSign acepta el nombre del signo sin importar mayúsculas ni espacios.
func ParseSign(name string) (Sign, error) {
	n := strings.TrimSpace(name)
	for _, r := range ranges {
		if strings.EqualFold(string(r.Sign), n) {
			return r.Sign, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSign, name)
}
