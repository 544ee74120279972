package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"soulbuddy/internal/domain/readings"
	"soulbuddy/internal/domain/zodiac"
)

type ReadingsRepo struct {
	db *sql.DB
}

func NewReadingsRepo(db *sql.DB) *ReadingsRepo {
	return &ReadingsRepo{db: db}
}

const readingColumns = `
	id, kind, subject, zodiac_sign,
	prompt, raw, html, model,
	created_at`

func (r *ReadingsRepo) Create(ctx context.Context, rd readings.Reading) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO readings (`+readingColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		rd.ID,
		string(rd.Kind),
		rd.Subject,
		toNullString(string(rd.ZodiacSign)),
		rd.Prompt,
		rd.Raw,
		rd.HTML,
		rd.Model,
		rd.CreatedAt,
	)
	return err
}

func (r *ReadingsRepo) GetByID(ctx context.Context, id string) (readings.Reading, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return readings.Reading{}, readings.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT`+readingColumns+`
		FROM readings
		WHERE id = $1
	`, id)

	rd, err := scanReading(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return readings.Reading{}, readings.ErrNotFound
		}
		return readings.Reading{}, err
	}
	return rd, nil
}

func (r *ReadingsRepo) ListRecent(ctx context.Context, limit int) ([]readings.Reading, error) {
	if limit <= 0 {
		limit = readings.DefaultRecentLimit
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT`+readingColumns+`
		FROM readings
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]readings.Reading, 0)
	for rows.Next() {
		rd, err := scanReading(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReading(s scanner) (readings.Reading, error) {
	var (
		rd   readings.Reading
		kind string
		sign sql.NullString
	)
	if err := s.Scan(
		&rd.ID,
		&kind,
		&rd.Subject,
		&sign,
		&rd.Prompt,
		&rd.Raw,
		&rd.HTML,
		&rd.Model,
		&rd.CreatedAt,
	); err != nil {
		return readings.Reading{}, err
	}
	rd.Kind = readings.Kind(kind)
	if sign.Valid {
		rd.ZodiacSign = zodiac.Sign(sign.String)
	}
	return rd, nil
}

// zodiac_sign es NULL para lecturas de compatibilidad
func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
