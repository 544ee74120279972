package readings

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"soulbuddy/internal/domain/zodiac"
	"soulbuddy/internal/ports/generation"
	"soulbuddy/internal/ports/signinfo"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// -------------------------
// Fakes
// -------------------------

type testRepo struct {
	mu   sync.Mutex
	byID map[string]Reading
}

func newTestRepo() *testRepo { return &testRepo{byID: map[string]Reading{}} }

func (r *testRepo) Create(ctx context.Context, rd Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[rd.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[rd.ID] = rd
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Reading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rd, ok := r.byID[id]
	if !ok {
		return Reading{}, ErrNotFound
	}
	return rd, nil
}

func (r *testRepo) ListRecent(ctx context.Context, limit int) ([]Reading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Reading, 0, len(r.byID))
	for _, rd := range r.byID {
		out = append(out, rd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type testCache struct {
	m      map[string]string
	getErr error
}

func (c *testCache) Get(ctx context.Context, key string) (string, bool, error) {
	if c.getErr != nil {
		return "", false, c.getErr
	}
	v, ok := c.m[key]
	return v, ok, nil
}

func (c *testCache) Set(ctx context.Context, key, id string) error {
	c.m[key] = id
	return nil
}

type testGen struct {
	text    string
	err     error
	prompts []string
}

func (g *testGen) Model() string { return "test-model" }

func (g *testGen) Generate(ctx context.Context, prompt string) (generation.Result, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return generation.Result{}, g.err
	}
	return generation.Result{Text: g.text}, nil
}

type testSigns map[string]string

func (s testSigns) Description(sign string) string {
	if d, ok := s[sign]; ok {
		return d
	}
	return signinfo.FallbackDescription
}

func (s testSigns) Entry(sign string) (signinfo.Entry, bool) {
	d, ok := s[sign]
	return signinfo.Entry{Sign: sign, Description: d}, ok
}

func newTestService(gen *testGen, cache Cache) (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(Deps{
		Repo:      repo,
		Generator: gen,
		Signs:     testSigns{"Capricorn": "Disciplined goat."},
		Cache:     cache,
	})
	return svc, repo
}

func validBirthDetails() BirthDetails {
	return BirthDetails{
		Name:        "Asha",
		DateOfBirth: "22-12-1995",
		TimeOfBirth: "06:30",
		Gender:      "female",
		City:        "Pune",
		State:       "Maharashtra",
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_Astrology_Success(t *testing.T) {
	gen := &testGen{text: "<p>Hello <strong>Asha</strong>, <em>steady</em> times.</p><script>x()</script>"}
	svc, repo := newTestService(gen, nil)

	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	r, err := svc.Astrology(context.Background(), validBirthDetails())
	require.NoError(t, err)

	assert.Equal(t, zodiac.Capricorn, r.ZodiacSign)
	assert.Equal(t, KindAstrology, r.Kind)
	assert.Equal(t, "Asha", r.Subject)
	assert.Equal(t, "test-model", r.Model)
	assert.Equal(t, now, r.CreatedAt)
	assert.Equal(t, "<p>Hello **Asha**, _steady_ times.</p>", r.HTML)
	assert.NotEmpty(t, r.ID)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "- Zodiac Sign: Capricorn")
	assert.Contains(t, gen.prompts[0], "- Sign Profile: Disciplined goat.")
	assert.Contains(t, gen.prompts[0], "- City: Pune")

	stored, err := repo.GetByID(context.Background(), r.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(r, stored); diff != "" {
		t.Fatalf("stored reading mismatch (-want +got):\n%s", diff)
	}
}

func TestService_Astrology_MissingField(t *testing.T) {
	gen := &testGen{text: "x"}
	svc, _ := newTestService(gen, nil)

	in := validBirthDetails()
	in.Gender = "   "

	_, err := svc.Astrology(context.Background(), in)

	var mf *MissingFieldError
	require.True(t, errors.As(err, &mf))
	assert.Equal(t, "gender", mf.Field)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "Missing required field: gender", err.Error())
	assert.Empty(t, gen.prompts)
}

func TestService_Astrology_InvalidDate(t *testing.T) {
	gen := &testGen{text: "x"}
	svc, _ := newTestService(gen, nil)

	in := validBirthDetails()
	in.DateOfBirth = "31-02-2000"

	_, err := svc.Astrology(context.Background(), in)

	var ide *zodiac.InvalidDateError
	require.True(t, errors.As(err, &ide))
	assert.Equal(t, "31-02-2000", ide.Input)
	assert.Empty(t, gen.prompts)
}

func TestService_Astrology_GenerationFailure(t *testing.T) {
	gen := &testGen{err: context.DeadlineExceeded}
	svc, repo := newTestService(gen, nil)

	_, err := svc.Astrology(context.Background(), validBirthDetails())
	assert.ErrorIs(t, err, ErrGeneration)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, repo.byID)
}

func TestService_Compatibility_ValidatesSigns(t *testing.T) {
	gen := &testGen{text: "x"}
	svc, _ := newTestService(gen, nil)

	_, err := svc.Compatibility(context.Background(), CompatibilityInput{
		YourName: "A", YourSign: "Leo", PartnerName: "B", PartnerSign: "Dragon",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, zodiac.ErrUnknownSign)

	_, err = svc.Compatibility(context.Background(), CompatibilityInput{YourName: "A", YourSign: "Leo"})
	var mf *MissingFieldError
	require.True(t, errors.As(err, &mf))
	assert.Equal(t, "partner_name", mf.Field)
	assert.Empty(t, gen.prompts)
}

func TestService_Compatibility_CachesByNamesAndSigns(t *testing.T) {
	gen := &testGen{text: "<h3>Score</h3><p><strong>88%</strong></p>"}
	cache := &testCache{m: map[string]string{}}
	svc, _ := newTestService(gen, cache)

	first, err := svc.Compatibility(context.Background(), CompatibilityInput{
		YourName: "Ravi", YourSign: "leo", PartnerName: "Mira", PartnerSign: "ARIES",
	})
	require.NoError(t, err)
	assert.Equal(t, "<h3>Score</h3><p>**88%**</p>", first.HTML)
	assert.Equal(t, "Ravi & Mira", first.Subject)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "- Person 1: Ravi (Leo)")
	assert.Contains(t, gen.prompts[0], "- Person 2: Mira (Aries)")

	second, err := svc.Compatibility(context.Background(), CompatibilityInput{
		YourName: "ravi", YourSign: "Leo", PartnerName: "MIRA", PartnerSign: "aries",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, gen.prompts, 1)

	_, err = svc.Compatibility(context.Background(), CompatibilityInput{
		YourName: "Ravi", YourSign: "Leo", PartnerName: "Mira", PartnerSign: "Taurus",
	})
	require.NoError(t, err)
	assert.Len(t, gen.prompts, 2)
}

func TestService_Compatibility_CacheErrorIsMiss(t *testing.T) {
	gen := &testGen{text: "ok"}
	cache := &testCache{m: map[string]string{}, getErr: errors.New("redis down")}
	svc, _ := newTestService(gen, cache)

	in := CompatibilityInput{YourName: "A", YourSign: "Leo", PartnerName: "B", PartnerSign: "Leo"}
	_, err := svc.Compatibility(context.Background(), in)
	require.NoError(t, err)
	_, err = svc.Compatibility(context.Background(), in)
	require.NoError(t, err)
	assert.Len(t, gen.prompts, 2)
}

func TestService_Render(t *testing.T) {
	svc, _ := newTestService(&testGen{}, nil)
	r := Reading{Raw: "<h3>Career</h3><p>Go <strong>far</strong></p>", HTML: "<h3>Career</h3><p>Go **far**</p>"}

	out, err := svc.Render(r, "")
	require.NoError(t, err)
	assert.Equal(t, r.HTML, out)

	out, err = svc.Render(r, FormatMarkdown)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "### Career"), out)
	assert.Contains(t, out, "**far**")

	_, err = svc.Render(r, "pdf")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Recent_ClampsLimit(t *testing.T) {
	gen := &testGen{text: "ok"}
	svc, _ := newTestService(gen, nil)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		ts := base.Add(time.Duration(i) * time.Hour)
		svc.now = func() time.Time { return ts }
		_, err := svc.Astrology(context.Background(), validBirthDetails())
		require.NoError(t, err)
	}

	items, err := svc.Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].CreatedAt.After(items[1].CreatedAt))

	items, err = svc.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	_, err = svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompatibilityKey_Stable(t *testing.T) {
	a := compatibilityKey("ravi", zodiac.Leo, "mira", zodiac.Aries)
	b := compatibilityKey("RAVI", zodiac.Leo, "Mira", zodiac.Aries)
	c := compatibilityKey("mira", zodiac.Aries, "ravi", zodiac.Leo)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, strings.HasPrefix(a, "compat:"))
}
