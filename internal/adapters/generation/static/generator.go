package static

import (
	"context"
	"strings"
	"sync"

	"soulbuddy/internal/ports/generation"
)

const ModelName = "static"

// DefaultReading es la respuesta fija en modo dev (sin GEMINI_API_KEY).
const DefaultReading = `<div class="p-4 rounded-lg"><h3>Your Reading</h3>` +
	`<p>The stars favour <strong>patience</strong> and <em>quiet confidence</em> this month.</p>` +
	`<ul><li>Gemstone: moonstone</li><li>Ritual: a short evening meditation</li></ul></div>`

// Generator devuelve un texto fijo y registra los prompts recibidos.
// Text vacío => DefaultReading. Err != nil => falla siempre.
type Generator struct {
	Text string
	Err  error

	mu      sync.Mutex
	prompts []string
}

var _ generation.Generator = (*Generator)(nil)

func New() *Generator { return &Generator{} }

func (g *Generator) Model() string { return ModelName }

func (g *Generator) Generate(ctx context.Context, prompt string) (generation.Result, error) {
	if err := ctx.Err(); err != nil {
		return generation.Result{}, err
	}

	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()

	if g.Err != nil {
		return generation.Result{}, g.Err
	}
	text := g.Text
	if strings.TrimSpace(text) == "" {
		text = DefaultReading
	}
	return generation.Result{Text: text, Model: ModelName}, nil
}

// Prompts devuelve una copia de los prompts recibidos.
func (g *Generator) Prompts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, len(g.prompts))
	copy(out, g.prompts)
	return out
}
