package signinfo

// FallbackDescription se devuelve para claves desconocidas.
const FallbackDescription = "I'm sorry, I don't have information on that sign."

// Entry es una fila del dataset de signos.
type Entry struct {
	Sign         string
	Element      string
	RulingPlanet string
	Description  string
}

// Lookup resuelve la descripción de un signo por nombre capitalizado.
// Nunca falla: claves desconocidas devuelven FallbackDescription.
type Lookup interface {
	Description(sign string) string
	Entry(sign string) (Entry, bool)
}
