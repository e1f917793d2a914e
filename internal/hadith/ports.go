package hadith

import (
	"context"
)

// Repository defines the read-only contract for hadith storage.
type Repository interface {
	FindOne(ctx context.Context, book string, number int) (Record, error)
	Count(ctx context.Context, book string) (int, error)
	Page(ctx context.Context, book string, offset, limit int) ([]Record, error)
}
