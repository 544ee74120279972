package readings

import "context"

type Repository interface {
	Create(ctx context.Context, r Reading) error
	GetByID(ctx context.Context, id string) (Reading, error)
	// ListRecent ordena por created_at desc.
	ListRecent(ctx context.Context, limit int) ([]Reading, error)
}

// Cache guarda clave -> reading ID. Es opcional (nil = sin cache).
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, readingID string) error
}
