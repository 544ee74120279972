package readings

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"soulbuddy/internal/domain/zodiac"
	"soulbuddy/internal/platform/logger"
	"soulbuddy/internal/platform/markup"
	"soulbuddy/internal/ports/generation"
	"soulbuddy/internal/ports/signinfo"
)

const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100
)

// Format de salida de una lectura.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

type Deps struct {
	Repo      Repository
	Generator generation.Generator
	Signs     signinfo.Lookup

	// Opcionales.
	Renderer *markup.Renderer // default: PolicyUGC
	Cache    Cache
	Logger   logger.Logger
}

type Service struct {
	repo     Repository
	gen      generation.Generator
	signs    signinfo.Lookup
	renderer *markup.Renderer
	cache    Cache
	log      logger.Logger
	now      func() time.Time
}

func NewService(d Deps) *Service {
	s := &Service{
		repo:     d.Repo,
		gen:      d.Generator,
		signs:    d.Signs,
		renderer: d.Renderer,
		cache:    d.Cache,
		log:      d.Logger,
		now:      time.Now,
	}
	if s.renderer == nil {
		s.renderer = markup.NewRenderer(markup.PolicyUGC)
	}
	if s.log == nil {
		s.log = logger.NewNop()
	}
	return s
}

// Astrology valida, clasifica el signo, llama al modelo y guarda la lectura.
// Una fecha inválida devuelve *zodiac.InvalidDateError sin tocar el backend.
func (s *Service) Astrology(ctx context.Context, in BirthDetails) (Reading, error) {
	in = trimBirthDetails(in)
	if err := requireFields(
		"name", in.Name,
		"date_of_birth", in.DateOfBirth,
		"time_of_birth", in.TimeOfBirth,
		"gender", in.Gender,
		"state", in.State,
		"city", in.City,
	); err != nil {
		return Reading{}, err
	}

	sign, err := zodiac.ClassifySign(in.DateOfBirth)
	if err != nil {
		return Reading{}, err
	}

	prompt := BuildAstrologyPrompt(in, sign, s.signs.Description(string(sign)))

	r, err := s.generate(ctx, KindAstrology, in.Name, prompt)
	if err != nil {
		return Reading{}, err
	}
	r.ZodiacSign = sign

	if err := s.repo.Create(ctx, r); err != nil {
		return Reading{}, fmt.Errorf("save reading: %w", err)
	}

	s.log.Info("astrology reading generated", map[string]any{
		"reading_id":  r.ID,
		"zodiac_sign": string(sign),
		"model":       r.Model,
	})
	return r, nil
}

// Compatibility genera (o recupera del cache) la lectura de compatibilidad entre dos signos.
func (s *Service) Compatibility(ctx context.Context, in CompatibilityInput) (Reading, error) {
	in = trimCompatibility(in)
	if err := requireFields(
		"your_name", in.YourName,
		"your_sign", in.YourSign,
		"partner_name", in.PartnerName,
		"partner_sign", in.PartnerSign,
	); err != nil {
		return Reading{}, err
	}

	yours, err := zodiac.ParseSign(in.YourSign)
	if err != nil {
		return Reading{}, fmt.Errorf("%w: your_sign: %w", ErrInvalidInput, err)
	}
	partner, err := zodiac.ParseSign(in.PartnerSign)
	if err != nil {
		return Reading{}, fmt.Errorf("%w: partner_sign: %w", ErrInvalidInput, err)
	}

	key := compatibilityKey(in.YourName, yours, in.PartnerName, partner)
	if r, ok := s.cached(ctx, key); ok {
		return r, nil
	}

	prompt := BuildCompatibilityPrompt(in, yours, partner)
	subject := in.YourName + " & " + in.PartnerName

	r, err := s.generate(ctx, KindCompatibility, subject, prompt)
	if err != nil {
		return Reading{}, err
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return Reading{}, fmt.Errorf("save reading: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, r.ID); err != nil {
			s.log.Warn("cache set failed", map[string]any{"key": key, "err": err})
		}
	}

	s.log.Info("compatibility reading generated", map[string]any{
		"reading_id": r.ID,
		"signs":      string(yours) + "/" + string(partner),
		"model":      r.Model,
	})
	return r, nil
}

func (s *Service) Get(ctx context.Context, id string) (Reading, error) {
	if strings.TrimSpace(id) == "" {
		return Reading{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Recent(ctx context.Context, limit int) ([]Reading, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}
	return s.repo.ListRecent(ctx, limit)
}

// Render devuelve la lectura en el formato pedido ("" = html).
func (s *Service) Render(r Reading, f Format) (string, error) {
	switch Format(strings.ToLower(strings.TrimSpace(string(f)))) {
	case "", FormatHTML:
		return r.HTML, nil
	case FormatMarkdown:
		return s.renderer.Markdown(r.Raw)
	default:
		return "", fmt.Errorf("%w: unknown format %q", ErrInvalidInput, f)
	}
}

func (s *Service) generate(ctx context.Context, kind Kind, subject, prompt string) (Reading, error) {
	start := s.now()
	res, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.log.Error("generation failed", map[string]any{"kind": string(kind), "err": err})
		return Reading{}, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	model := res.Model
	if model == "" {
		model = s.gen.Model()
	}

	s.log.Debug("generation done", map[string]any{
		"kind":        string(kind),
		"duration_ms": s.now().Sub(start).Milliseconds(),
	})

	return Reading{
		ID:        uuid.NewString(),
		Kind:      kind,
		Subject:   subject,
		Prompt:    prompt,
		Raw:       res.Text,
		HTML:      s.renderer.HTML(res.Text),
		Model:     model,
		CreatedAt: s.now(),
	}, nil
}

// cached: cualquier fallo del cache o del repo cuenta como miss.
func (s *Service) cached(ctx context.Context, key string) (Reading, bool) {
	if s.cache == nil {
		return Reading{}, false
	}
	id, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn("cache get failed", map[string]any{"key": key, "err": err})
		return Reading{}, false
	}
	if !ok {
		return Reading{}, false
	}
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn("cached reading lookup failed", map[string]any{"reading_id": id, "err": err})
		}
		return Reading{}, false
	}
	return r, true
}

func compatibilityKey(yourName string, yours zodiac.Sign, partnerName string, partner zodiac.Sign) string {
	raw := strings.Join([]string{
		strings.ToLower(yourName), string(yours),
		strings.ToLower(partnerName), string(partner),
	}, "|")
	sum := sha256.Sum256([]byte(raw))
	return "compat:" + hex.EncodeToString(sum[:])
}

// requireFields recibe pares (nombre, valor) y falla en el primer valor vacío.
func requireFields(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return &MissingFieldError{Field: pairs[i]}
		}
	}
	return nil
}

func trimBirthDetails(in BirthDetails) BirthDetails {
	return BirthDetails{
		Name:        strings.TrimSpace(in.Name),
		DateOfBirth: strings.TrimSpace(in.DateOfBirth),
		TimeOfBirth: strings.TrimSpace(in.TimeOfBirth),
		Gender:      strings.TrimSpace(in.Gender),
		City:        strings.TrimSpace(in.City),
		State:       strings.TrimSpace(in.State),
	}
}

func trimCompatibility(in CompatibilityInput) CompatibilityInput {
	return CompatibilityInput{
		YourName:    strings.TrimSpace(in.YourName),
		YourSign:    strings.TrimSpace(in.YourSign),
		PartnerName: strings.TrimSpace(in.PartnerName),
		PartnerSign: strings.TrimSpace(in.PartnerSign),
	}
}
