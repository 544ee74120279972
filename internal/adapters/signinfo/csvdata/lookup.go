package csvdata

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"soulbuddy/internal/ports/signinfo"
)

//go:embed astrology_data.csv
var defaultData []byte

var ErrMissingColumn = errors.New("csvdata: missing required column")

// Table es el dataset de signos cargado una sola vez; solo lectura después de Load.
type Table struct {
	bySign map[string]signinfo.Entry
	order  []string
}

// LoadDefault carga el dataset embebido.
func LoadDefault() (*Table, error) {
	return Parse(bytes.NewReader(defaultData))
}

// LoadFile carga un CSV externo; path vacío => dataset embebido.
func LoadFile(path string) (*Table, error) {
	if strings.TrimSpace(path) == "" {
		return LoadDefault()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvdata: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse lee un CSV con header. Columnas obligatorias: sign, description.
// element y ruling_planet son opcionales.
func Parse(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("csvdata: read header: %w", err)
	}

	col := map[string]int{}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"sign", "description"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	t := &Table{bySign: map[string]signinfo.Entry{}}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvdata: read row: %w", err)
		}

		key := capitalize(field(rec, col, "sign"))
		if key == "" {
			continue
		}
		if _, dup := t.bySign[key]; !dup {
			t.order = append(t.order, key)
		}
		// la última fila con la misma clave gana
		t.bySign[key] = signinfo.Entry{
			Sign:         key,
			Element:      field(rec, col, "element"),
			RulingPlanet: field(rec, col, "ruling_planet"),
			Description:  field(rec, col, "description"),
		}
	}
	return t, nil
}

func (t *Table) Description(sign string) string {
	e, ok := t.Entry(sign)
	if !ok {
		return signinfo.FallbackDescription
	}
	return e.Description
}

func (t *Table) Entry(sign string) (signinfo.Entry, bool) {
	e, ok := t.bySign[capitalize(sign)]
	return e, ok
}

// Entries en el orden del archivo.
func (t *Table) Entries() []signinfo.Entry {
	out := make([]signinfo.Entry, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, t.bySign[k])
	}
	return out
}

func field(rec []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// cases.Caser no es seguro entre goroutines; se crea uno por llamada.
func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Title(language.English).String(s)
}
