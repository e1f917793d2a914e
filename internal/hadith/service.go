package hadith

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"hadithapi/internal/catalog"
	"hadithapi/internal/random"
)

// DefaultBookID is used by GetRandom when no book id is supplied.
const DefaultBookID = "bukhari"

// Service validates inputs, resolves book ids against the catalog and
// shapes store results into response DTOs.
type Service struct {
	repo        Repository
	rand        random.Source
	log         *zap.Logger
	maxPageSize int
}

func NewService(repo Repository, rand random.Source, log *zap.Logger, maxPageSize int) *Service {
	return &Service{repo: repo, rand: rand, log: log, maxPageSize: maxPageSize}
}

// Books returns the full catalog in fixed order.
func (s *Service) Books() []catalog.Book {
	s.log.Info("retrieving list of all books")
	return catalog.All()
}

// GetByNumber returns the hadith at the given position in a book.
func (s *Service) GetByNumber(ctx context.Context, bookID string, num int) (DTO, error) {
	book, ok := catalog.Find(bookID)
	if !ok {
		s.log.Warn("book not found", zap.String("bookId", bookID))
		return DTO{}, ErrUnknownBook
	}

	if num > book.HadithCount {
		s.log.Warn("hadith number exceeds maximum",
			zap.Int("num", num), zap.Int("max", book.HadithCount), zap.String("bookId", book.ID))
		return DTO{}, &RangeError{Field: "hadith number", Max: book.HadithCount}
	}

	s.log.Info("retrieving hadith", zap.Int("num", num), zap.String("bookId", book.ID))
	rec, err := s.repo.FindOne(ctx, book.ID, num)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Warn("hadith not found", zap.Int("num", num), zap.String("bookId", book.ID))
		}
		return DTO{}, err
	}
	return rec.DTO(), nil
}

// ListPage returns one page of a book's hadiths in ascending number order.
// A start below 1 clamps to 1; a size outside (0, maxPageSize] silently
// falls back to the configured ceiling. The fallback is intentional API
// behavior, not validation.
func (s *Service) ListPage(ctx context.Context, bookID string, start, size int) (PagedResult, error) {
	book, ok := catalog.Find(bookID)
	if !ok {
		s.log.Warn("book not found", zap.String("bookId", bookID))
		return PagedResult{}, ErrUnknownBook
	}

	if start > book.HadithCount {
		s.log.Warn("start position exceeds maximum",
			zap.Int("start", start), zap.Int("max", book.HadithCount), zap.String("bookId", book.ID))
		return PagedResult{}, &RangeError{Field: "start position", Max: book.HadithCount}
	}

	if start <= 0 {
		start = 1
	}
	if size <= 0 || size > s.maxPageSize {
		size = s.maxPageSize
	}

	s.log.Info("retrieving hadith page",
		zap.Int("start", start), zap.Int("size", size), zap.String("bookId", book.ID))

	total, err := s.repo.Count(ctx, book.ID)
	if err != nil {
		return PagedResult{}, err
	}

	recs, err := s.repo.Page(ctx, book.ID, start-1, size)
	if err != nil {
		return PagedResult{}, err
	}

	data := make([]DTO, 0, len(recs))
	for _, rec := range recs {
		data = append(data, rec.DTO())
	}

	return PagedResult{
		Data:       data,
		TotalCount: total,
		Start:      start,
		Size:       len(data),
		HasMore:    start+len(data)-1 < total,
	}, nil
}

// GetRandom returns a uniformly chosen hadith from a book. An empty book
// id falls back to DefaultBookID; an unknown one is still an error.
func (s *Service) GetRandom(ctx context.Context, bookID string) (DTO, error) {
	if bookID == "" {
		bookID = DefaultBookID
	}

	book, ok := catalog.Find(bookID)
	if !ok {
		s.log.Warn("book not found for random hadith", zap.String("bookId", bookID))
		return DTO{}, ErrUnknownBook
	}

	num := s.rand.Positive(book.HadithCount)
	s.log.Info("retrieving random hadith", zap.Int("num", num), zap.String("bookId", book.ID))

	rec, err := s.repo.FindOne(ctx, book.ID, num)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Warn("random hadith not found", zap.Int("num", num), zap.String("bookId", book.ID))
		}
		return DTO{}, err
	}
	return rec.DTO(), nil
}
