package zodiac

import (
	"fmt"
	"time"
)

// Sign es uno de los doce signos del zodiaco.
// @Enum Aries, Taurus, Gemini, Cancer, Leo, Virgo, Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces
type Sign string

const (
	Aries       Sign = "Aries"
	Taurus      Sign = "Taurus"
	Gemini      Sign = "Gemini"
	Cancer      Sign = "Cancer"
	Leo         Sign = "Leo"
	Virgo       Sign = "Virgo"
	Libra       Sign = "Libra"
	Scorpio     Sign = "Scorpio"
	Sagittarius Sign = "Sagittarius"
	Capricorn   Sign = "Capricorn"
	Aquarius    Sign = "Aquarius"
	Pisces      Sign = "Pisces"
)

func (s Sign) String() string { return string(s) }

// Boundary es un par (mes, día) que abre o cierra el rango de un signo.
type Boundary struct {
	Month time.Month
	Day   int
}

func (b Boundary) String() string {
	return fmt.Sprintf("%s %d", b.Month, b.Day)
}

// Range: Start y End inclusivos. Capricorn cruza el fin de año (Start.Month > End.Month).
type Range struct {
	Sign  Sign
	Start Boundary
	End   Boundary
}

// Contains evalúa "(month == start.month && day >= start.day) || (month == end.month && day <= end.day)".
func (r Range) Contains(month time.Month, day int) bool {
	return (month == r.Start.Month && day >= r.Start.Day) ||
		(month == r.End.Month && day <= r.End.Day)
}

// BirthDate es una fecha de calendario sin hora ni zona.
type BirthDate struct {
	Day   int
	Month time.Month
	Year  int
}

func (d BirthDate) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, int(d.Month), d.Year)
}
