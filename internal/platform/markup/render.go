package markup

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/microcosm-cc/bluemonday"
)

// Policy define qué limpieza se aplica al HTML crudo del modelo antes de Sanitize.
type Policy string

const (
	// PolicyUGC quita scripts, handlers y estilos inline; conserva class (la UI usa tailwind).
	PolicyUGC Policy = "ugc"
	// PolicyNone pasa el HTML tal cual a Sanitize.
	PolicyNone Policy = "none"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyUGC, "":
		return PolicyUGC, nil
	case PolicyNone:
		return PolicyNone, nil
	default:
		return "", fmt.Errorf("markup: unknown html policy %q", s)
	}
}

// Renderer produce las salidas HTML y Markdown de una respuesta del modelo.
// Es seguro para uso concurrente.
type Renderer struct {
	policy *bluemonday.Policy // nil = PolicyNone
	md     *converter.Converter
}

func NewRenderer(p Policy) *Renderer {
	r := &Renderer{
		md: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(
					commonmark.WithStrongDelimiter("**"),
					commonmark.WithEmDelimiter("_"),
				),
				table.NewTablePlugin(),
			),
		),
	}
	if p != PolicyNone {
		pol := bluemonday.UGCPolicy()
		pol.AllowAttrs("class").Globally()
		r.policy = pol
	}
	return r
}

func (r *Renderer) clean(raw string) string {
	if r.policy == nil {
		return raw
	}
	return r.policy.Sanitize(raw)
}

// HTML aplica la policy y luego Sanitize.
func (r *Renderer) HTML(raw string) string {
	return Sanitize(r.clean(raw))
}

// Markdown convierte el HTML limpio a Markdown con los mismos marcadores
// que Sanitize (** y _).
func (r *Renderer) Markdown(raw string) (string, error) {
	out, err := r.md.ConvertString(r.clean(raw))
	if err != nil {
		return "", fmt.Errorf("markup: markdown: %w", err)
	}
	return strings.TrimSpace(out), nil
}
