package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soulbuddy/internal/domain/readings"
	"soulbuddy/internal/domain/zodiac"
)

var cols = []string{"id", "kind", "subject", "zodiac_sign", "prompt", "raw", "html", "model", "created_at"}

func newMock(t *testing.T) (*ReadingsRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewReadingsRepo(db), mock
}

func TestReadingsRepo_Create(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Date(2025, 3, 21, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO readings")).
		WithArgs("r-1", "astrology", "Asha", "Aries", "prompt", "<p>raw</p>", "<p>raw</p>", "static", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), readings.Reading{
		ID:         "r-1",
		Kind:       readings.KindAstrology,
		Subject:    "Asha",
		ZodiacSign: zodiac.Aries,
		Prompt:     "prompt",
		Raw:        "<p>raw</p>",
		HTML:       "<p>raw</p>",
		Model:      "static",
		CreatedAt:  now,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReadingsRepo_Create_CompatibilityStoresNullSign(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO readings")).
		WithArgs("r-2", "compatibility", "A & B", nil, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), readings.Reading{
		ID:        "r-2",
		Kind:      readings.KindCompatibility,
		Subject:   "A & B",
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReadingsRepo_GetByID(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM readings")).
		WithArgs("r-1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("r-1", "astrology", "Asha", "Capricorn", "p", "raw", "html", "gemini-1.5-flash", now))

	rd, err := repo.GetByID(context.Background(), "r-1")
	require.NoError(t, err)
	assert.Equal(t, zodiac.Capricorn, rd.ZodiacSign)
	assert.Equal(t, readings.KindAstrology, rd.Kind)
	assert.Equal(t, now, rd.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReadingsRepo_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM readings")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(cols))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, readings.ErrNotFound)

	_, err = repo.GetByID(context.Background(), "  ")
	assert.ErrorIs(t, err, readings.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReadingsRepo_ListRecent(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("b", "compatibility", "A & B", nil, "p", "raw", "html", "static", now).
			AddRow("a", "astrology", "A", "Leo", "p", "raw", "html", "static", now.Add(-time.Minute)))

	items, err := repo.ListRecent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, zodiac.Sign(""), items[0].ZodiacSign)
	assert.Equal(t, zodiac.Leo, items[1].ZodiacSign)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS readings")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX IF NOT EXISTS readings_created_at_idx")).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}
