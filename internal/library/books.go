package library

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mrlokans/mybooks/internal/entities"
)

// BookInput carries the fields needed to add a book to the shelf.
type BookInput struct {
	Title         string `json:"title" validate:"required,max=512"`
	Author        string `json:"author" validate:"required,max=256"`
	Synopsis      string `json:"synopsis"`
	Rating        *int   `json:"rating" validate:"omitempty,min=1,max=5"`
	RecommendedBy string `json:"recommended_by" validate:"max=256"`
	GenreIDs      []uint `json:"genre_ids"`
}

func (in *BookInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.Synopsis = strings.TrimSpace(in.Synopsis)
	in.RecommendedBy = strings.TrimSpace(in.RecommendedBy)
}

// Stats summarises the collection by reading status.
type Stats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

// CreateBook adds an on-shelf book dated now and attaches the given genres.
func (l *Library) CreateBook(input BookInput) (*entities.Book, error) {
	input.normalize()
	if err := l.validator.validate(input); err != nil {
		return nil, err
	}

	book := entities.NewBook(input.Title, input.Author)
	book.DateAdded = l.now()
	book.Synopsis = input.Synopsis
	book.Rating = input.Rating
	book.RecommendedBy = input.RecommendedBy

	err := l.transaction(func(r repositories) error {
		if err := r.books.CreateBook(book); err != nil {
			return err
		}
		for _, genreID := range input.GenreIDs {
			if _, err := r.genres.GetGenreByID(genreID); err != nil {
				return fmt.Errorf("genre %d: %w", genreID, err)
			}
			if err := r.genres.AddBook(genreID, book.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return l.repos.books.GetBookByID(book.ID)
}

// GetBook returns the book with its genres and quotes.
func (l *Library) GetBook(id uint) (*entities.Book, error) {
	return l.repos.books.GetBookByID(id)
}

// DeleteBook removes the book together with its quotes and genre
// memberships. Deleting an unknown book is a no-op.
func (l *Library) DeleteBook(id uint) error {
	book, err := l.repos.books.GetBookByID(id)
	if errors.Is(err, entities.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	err = l.repos.books.DeleteBook(id)
	l.logDelete("book", id, fmt.Sprintf("'%s' by %s", book.Title, book.Author), err)
	return err
}

// Stats counts books per status.
func (l *Library) Stats() (Stats, error) {
	counts, err := l.repos.books.CountByStatus()
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{ByStatus: make(map[string]int64, len(counts))}
	for status, count := range counts {
		stats.ByStatus[status.String()] = count
		stats.Total += count
	}
	return stats, nil
}
