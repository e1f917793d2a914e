package hadith

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) FindOne(ctx context.Context, book string, number int) (Record, error) {
	const query = `
		SELECT book, number, hadith_text, tafseel
		FROM hadiths
		WHERE book = $1 AND number = $2
		LIMIT 1
	`
	var rec Record
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, book, number).Scan(
		&rec.Book, &rec.Number, &rec.HadithText, &rec.Tafseel,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return rec, nil
}

func (r *PostgresRepo) Count(ctx context.Context, book string) (int, error) {
	const query = `SELECT COUNT(*) FROM hadiths WHERE book = $1`

	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, query, book).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PostgresRepo) Page(ctx context.Context, book string, offset, limit int) ([]Record, error) {
	const query = `
		SELECT book, number, hadith_text, tafseel
		FROM hadiths
		WHERE book = $1
		ORDER BY number ASC
		LIMIT $2 OFFSET $3
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, book, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Book, &rec.Number, &rec.HadithText, &rec.Tafseel); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
