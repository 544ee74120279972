package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"soulbuddy/internal/platform/httpclient"
	"soulbuddy/internal/ports/generation"
)

const DefaultModel = "gemini-1.5-flash"

var (
	ErrGeminiNotConfigured = errors.New("gemini client not configured")
	ErrGeminiUpstream      = errors.New("gemini upstream error")
)

// Config del cliente Gemini. Se construye una vez al arrancar y se pasa explícitamente;
// no hay cliente global.
type Config struct {
	APIKey string
	Model  string

	// Opcionales. Temperature nil o MaxOutputTokens 0 => default del modelo.
	Temperature     *float32
	MaxOutputTokens int32

	Timeout time.Duration

	// BaseURL y HTTPClient solo para tests.
	BaseURL    string
	HTTPClient *http.Client
}

type Client struct {
	client *genai.Client
	model  string
	gen    *genai.GenerateContentConfig
}

var _ generation.Generator = (*Client)(nil)

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrGeminiNotConfigured
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = httpclient.New(cfg.Timeout)
	}

	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: hc,
	}
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: base}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}

	gen := &genai.GenerateContentConfig{}
	if cfg.Temperature != nil {
		gen.Temperature = genai.Ptr(*cfg.Temperature)
	}
	if cfg.MaxOutputTokens > 0 {
		gen.MaxOutputTokens = cfg.MaxOutputTokens
	}

	return &Client{client: client, model: model, gen: gen}, nil
}

func (c *Client) Model() string { return c.model }

// Generate envía el prompt como un único turno de usuario y devuelve el texto concatenado.
func (c *Client) Generate(ctx context.Context, prompt string) (generation.Result, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), c.gen)
	if err != nil {
		return generation.Result{}, fmt.Errorf("%w: %w", ErrGeminiUpstream, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return generation.Result{}, generation.ErrEmptyResponse
	}

	return generation.Result{Text: text, Model: c.model}, nil
}
