package readings

import (
	"time"

	"soulbuddy/internal/domain/zodiac"
)

// Kind distingue el tipo de lectura.
// @Enum astrology, compatibility
type Kind string

const (
	KindAstrology     Kind = "astrology"
	KindCompatibility Kind = "compatibility"
)

// BirthDetails son los datos del formulario de lectura astrológica. Todos obligatorios.
type BirthDetails struct {
	Name        string
	DateOfBirth string // DD-MM-YYYY
	TimeOfBirth string
	Gender      string
	City        string
	State       string
}

// CompatibilityInput son los datos de la lectura de compatibilidad. Todos obligatorios.
type CompatibilityInput struct {
	YourName    string
	YourSign    string
	PartnerName string
	PartnerSign string
}

// Reading es una lectura generada y persistida.
type Reading struct {
	ID      string
	Kind    Kind
	Subject string // nombre (astrology) o "A & B" (compatibility)

	// Solo para KindAstrology.
	ZodiacSign zodiac.Sign

	Prompt string
	Raw    string // texto crudo del modelo
	HTML   string // Raw después de policy + Sanitize
	Model  string

	CreatedAt time.Time
}
