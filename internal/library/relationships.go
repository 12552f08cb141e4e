package library

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mrlokans/mybooks/internal/entities"
	"github.com/mrlokans/mybooks/internal/utils"
)

// GenreInput carries the fields needed to create or rename a genre.
type GenreInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color" validate:"required"`
}

func (l *Library) normalizeGenre(input GenreInput) (GenreInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Color = strings.TrimSpace(input.Color)
	if err := l.validator.validate(input); err != nil {
		return input, err
	}
	color, err := utils.NormalizeHexColor(input.Color)
	if err != nil {
		return input, entities.InvalidArgument("color %v", err)
	}
	input.Color = color
	return input, nil
}

// CreateGenre adds a genre with a normalized "#RRGGBB" color.
func (l *Library) CreateGenre(input GenreInput) (*entities.Genre, error) {
	input, err := l.normalizeGenre(input)
	if err != nil {
		return nil, err
	}

	genre := entities.NewGenre(input.Name, input.Color)
	if err := l.repos.genres.CreateGenre(genre); err != nil {
		return nil, err
	}
	return genre, nil
}

// UpdateGenre renames or recolors an existing genre.
func (l *Library) UpdateGenre(id uint, input GenreInput) (*entities.Genre, error) {
	input, err := l.normalizeGenre(input)
	if err != nil {
		return nil, err
	}

	genre := &entities.Genre{ID: id, Name: input.Name, Color: input.Color}
	if err := l.repos.genres.UpdateGenre(genre); err != nil {
		return nil, err
	}
	return l.repos.genres.GetGenreByID(id)
}

// ListGenres returns all genres sorted by name.
func (l *Library) ListGenres() ([]entities.Genre, error) {
	return l.repos.genres.GetAllGenres()
}

// BooksInGenre returns the books that belong to the genre.
func (l *Library) BooksInGenre(genreID uint) ([]entities.Book, error) {
	if _, err := l.repos.genres.GetGenreByID(genreID); err != nil {
		return nil, err
	}
	return l.repos.genres.GetBooksForGenre(genreID)
}

// ToggleGenre adds the genre to the book if absent, or removes it if present.
// Both sides of the relationship change together. It returns the book as
// stored after the change.
func (l *Library) ToggleGenre(bookID, genreID uint) (*entities.Book, error) {
	err := l.transaction(func(r repositories) error {
		if _, err := r.books.GetBookByID(bookID); err != nil {
			return fmt.Errorf("book %d: %w", bookID, err)
		}
		if _, err := r.genres.GetGenreByID(genreID); err != nil {
			return fmt.Errorf("genre %d: %w", genreID, err)
		}

		member, err := r.genres.HasBook(genreID, bookID)
		if err != nil {
			return err
		}
		if member {
			return r.genres.RemoveBook(genreID, bookID)
		}
		return r.genres.AddBook(genreID, bookID)
	})
	if err != nil {
		return nil, err
	}
	return l.repos.books.GetBookByID(bookID)
}

// DeleteGenre detaches the genre from every book and then deletes it.
// Deleting an unknown genre is a no-op.
func (l *Library) DeleteGenre(genreID uint) error {
	genre, err := l.repos.genres.GetGenreByID(genreID)
	if errors.Is(err, entities.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	var detached int64
	err = l.transaction(func(r repositories) error {
		n, err := r.genres.DetachAllBooks(genreID)
		if err != nil {
			return err
		}
		detached = n
		return r.genres.DeleteGenre(genreID)
	})
	l.logDelete("genre", genreID, fmt.Sprintf("%s (detached from %d books)", genre.Name, detached), err)
	return err
}

// QuotesForBook returns the book's quotes, oldest first.
func (l *Library) QuotesForBook(bookID uint) ([]entities.Quote, error) {
	if _, err := l.repos.books.GetBookByID(bookID); err != nil {
		return nil, err
	}
	return l.repos.quotes.GetQuotesForBook(bookID)
}

func normalizeQuote(text string, page *string) (string, *string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil, entities.InvalidArgument("quote text is required")
	}
	if page != nil {
		trimmed := strings.TrimSpace(*page)
		if trimmed == "" {
			page = nil
		} else {
			page = &trimmed
		}
	}
	return text, page, nil
}

// AddQuote attaches a new quote, dated now, to the book.
func (l *Library) AddQuote(bookID uint, text string, page *string) (*entities.Quote, error) {
	text, page, err := normalizeQuote(text, page)
	if err != nil {
		return nil, err
	}

	quote := entities.NewQuote(text, page)
	quote.BookID = bookID
	quote.CreationDate = l.now()

	err = l.transaction(func(r repositories) error {
		if _, err := r.books.GetBookByID(bookID); err != nil {
			return fmt.Errorf("book %d: %w", bookID, err)
		}
		return r.quotes.CreateQuote(quote)
	})
	if err != nil {
		return nil, err
	}
	return quote, nil
}

// UpdateQuote replaces the text and page of an existing quote.
func (l *Library) UpdateQuote(quoteID uint, text string, page *string) (*entities.Quote, error) {
	text, page, err := normalizeQuote(text, page)
	if err != nil {
		return nil, err
	}

	if err := l.repos.quotes.UpdateQuote(&entities.Quote{ID: quoteID, Text: text, Page: page}); err != nil {
		return nil, err
	}
	return l.repos.quotes.GetQuoteByID(quoteID)
}

// DeleteQuote removes the quote from its book. Unknown ids are a no-op.
func (l *Library) DeleteQuote(quoteID uint) error {
	quote, err := l.repos.quotes.GetQuoteByID(quoteID)
	if errors.Is(err, entities.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	err = l.repos.quotes.DeleteQuote(quoteID)
	l.logDelete("quote", quoteID, quote.Text, err)
	return err
}
