package hadith

import (
	"errors"
	"fmt"
)

// ErrUnknownBook is returned when a book id does not match any catalog
// entry. The message is deliberately generic.
var ErrUnknownBook = errors.New("invalid bookId")

// ErrNotFound is returned when a record is absent despite a number within
// the book's valid range.
var ErrNotFound = errors.New("hadith not found")

// RangeError reports a requested position beyond a book's hadith count.
// The maximum is included so the caller can self-correct.
type RangeError struct {
	Field string
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s exceeds maximum of %d", e.Field, e.Max)
}

// Record is a single hadith row as stored. The text fields are nullable in
// the store.
type Record struct {
	Book       string
	Number     int
	HadithText *string
	Tafseel    *string
}

// DTO is the wire shape of a single hadith. Absent text fields collapse to
// empty strings.
type DTO struct {
	Number  int    `json:"number"`
	Hadith  string `json:"hadith"`
	Tafseel string `json:"tafseel"`
	Book    string `json:"book"`
}

func (r Record) DTO() DTO {
	d := DTO{Number: r.Number, Book: r.Book}
	if r.HadithText != nil {
		d.Hadith = *r.HadithText
	}
	if r.Tafseel != nil {
		d.Tafseel = *r.Tafseel
	}
	return d
}

// PagedResult wraps one ascending page of records. Size reflects the count
// actually returned, not the requested size.
type PagedResult struct {
	Data       []DTO `json:"data"`
	TotalCount int   `json:"totalCount"`
	Start      int   `json:"start"`
	Size       int   `json:"size"`
	HasMore    bool  `json:"hasMore"`
}
